package components

import (
	"github.com/philmade/gather-shop/internal/handler"
	"github.com/philmade/gather-shop/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHelpHandler,
		api.NewMenuHandler,
		api.NewOrderHandler,
		api.NewFeedbackHandler,
	),
	fx.Invoke(handler.NewRouter),
)
