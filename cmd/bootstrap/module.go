package bootstrap

import (
	"github.com/philmade/gather-shop/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	GatewayModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
