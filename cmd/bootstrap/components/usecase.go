package components

import (
	"github.com/philmade/gather-shop/internal/infra/store"
	"github.com/philmade/gather-shop/internal/pkg/cache"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func(gateway usecase.CatalogGateway, cacheStore *cache.Store, cfg config.Config) usecase.CatalogUseCase {
			return usecase.NewCatalogUseCase(gateway, cacheStore, cfg.Cache)
		},
		func(catalogUC usecase.CatalogUseCase, gateway usecase.CatalogGateway, rates usecase.RateGateway, cacheStore *cache.Store, cfg config.Config) usecase.PricingUseCase {
			return usecase.NewPricingUseCase(catalogUC, gateway, rates, cacheStore, cfg.Cache)
		},
		func(ledger usecase.LedgerGateway, cfg config.Config) usecase.PaymentVerifier {
			return usecase.NewPaymentVerifier(ledger, cfg.Shop.BCHAddress)
		},
		func(orders *store.OrderStore, catalogUC usecase.CatalogUseCase, pricing usecase.PricingUseCase, verifier usecase.PaymentVerifier, fulfillment usecase.FulfillmentGateway, cfg config.Config) usecase.OrderUseCase {
			return usecase.NewOrderUseCase(orders, catalogUC, pricing, verifier, fulfillment, cfg.Shop.BCHAddress)
		},
		func(pricing usecase.PricingUseCase, catalogUC usecase.CatalogUseCase, cfg config.Config) usecase.MenuUseCase {
			return usecase.NewMenuUseCase(pricing, catalogUC, cfg.Gelato.APIKey)
		},
		usecase.NewFeedbackUseCase,
	),
)
