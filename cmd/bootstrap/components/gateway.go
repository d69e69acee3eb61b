package components

import (
	"checkout-service/internal/infra/notifier"
	"checkout-service/internal/infra/pagbank"
	"checkout-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			pagbank.NewClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			notifier.NewBookingNotifier,
			fx.As(new(commands.BookingNotifier)),
		),
	),
)
