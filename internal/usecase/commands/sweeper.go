package commands

import (
	"context"
	"log/slog"

	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SweepResult struct {
	ExpiredCount int
}

type SweeperCommands interface {
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type sweeperCommandsImpl struct {
	sessionRepo SessionRepository
	logRepo     PaymentLogRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewSweeperCommands(
	sessionRepo SessionRepository,
	logRepo PaymentLogRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) SweeperCommands {
	return &sweeperCommandsImpl{
		sessionRepo: sessionRepo,
		logRepo:     logRepo,
		db:          db,
		clock:       clock,
	}
}

// SweepExpired batch-expires every PENDING session past its deadline and
// writes one audit entry per session. Lazy expiry during validation already
// guarantees correctness; the sweep only keeps the table tidy, so running
// it twice in a row is a harmless no-op.
func (s *sweeperCommandsImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	now := s.clock.Now()

	expired, err := shared.RunInTx(ctx, s.db, func(tx db.DBTX) ([]ExpiredSession, error) {
		sessions, txErr := s.sessionRepo.ExpireStale(ctx, tx, now)
		if txErr != nil {
			return nil, txErr
		}
		for _, session := range sessions {
			if logErr := s.logRepo.Append(ctx, tx, session.BookingID, eventCheckoutExpired, map[string]any{
				"token":  session.Token,
				"reason": "sweep",
			}); logErr != nil {
				return nil, logErr
			}
		}
		return sessions, nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if len(expired) > 0 {
		slog.Info("expired stale checkout sessions", "count", len(expired))
	}
	return &SweepResult{ExpiredCount: len(expired)}, nil
}
