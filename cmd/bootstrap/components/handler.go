package components

import (
	"checkout-service/internal/handler"
	"checkout-service/internal/handler/api"
	"checkout-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		api.NewCronHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
