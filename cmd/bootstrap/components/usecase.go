package components

import (
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutCommands,
		commands.NewPaymentCommands,
		commands.NewDepositCommands,
		commands.NewWebhookCommands,
		commands.NewSettingsCommands,
		commands.NewSweeperCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDepositQueries,
		queries.NewSettingsQueries,
	),
)
