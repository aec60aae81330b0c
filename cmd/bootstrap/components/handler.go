package components

import (
	"hotel-pricing/internal/handler"
	"hotel-pricing/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
