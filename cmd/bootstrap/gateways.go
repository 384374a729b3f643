package bootstrap

import (
	"github.com/philmade/gather-shop/internal/infra/blockchair"
	"github.com/philmade/gather-shop/internal/infra/coingecko"
	"github.com/philmade/gather-shop/internal/infra/gelato"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/usecase"

	"go.uber.org/fx"
)

// GatewayModule wires the HTTP clients for every upstream collaborator.
var GatewayModule = fx.Module("gateways",
	fx.Provide(
		func(cfg config.Config) usecase.CatalogGateway {
			return gelato.NewCatalogClient(cfg.Gelato)
		},
		func(cfg config.Config) usecase.FulfillmentGateway {
			return gelato.NewOrdersClient(cfg.Gelato)
		},
		func(cfg config.Config) usecase.LedgerGateway {
			return blockchair.NewClient(cfg.Ledger)
		},
		func(cfg config.Config) usecase.RateGateway {
			return coingecko.NewClient(cfg.Rates)
		},
	),
)
