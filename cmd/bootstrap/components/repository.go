package components

import (
	"checkout-service/internal/infra/db"
	"checkout-service/internal/infra/readstore"
	repo_impl "checkout-service/internal/infra/repository"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
		),
		fx.Annotate(
			repo_impl.NewTransactionRepository,
			fx.As(new(commands.TransactionRepository)),
		),
		fx.Annotate(
			repo_impl.NewDepositRepository,
			fx.As(new(commands.DepositRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentLogRepository,
			fx.As(new(commands.PaymentLogRepository)),
		),
		// Settings serve both the write port and the strict read store
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
			fx.As(new(queries.SettingsReadStore)),
		),
		// Read-side store for the admin deposit list
		fx.Annotate(
			readstore.NewDepositReadStore,
			fx.As(new(queries.DepositReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
