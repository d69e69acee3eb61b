package commands

import (
	"context"
	"errors"

	"checkout-service/internal/domain/deposit"
	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDepositNotFound     = errs.New("deposit hold not found")
	ErrGatewayActionFailed = errs.New("gateway rejected the deposit action")
)

const (
	eventDepositReleased = "deposit_released"
	eventDepositCaptured = "deposit_captured"
)

type CaptureDepositResult struct {
	DepositID        uuid.UUID
	Status           deposit.Status
	CapturedCents    int64
	RemainingCents   int64
	IsPartialCapture bool
}

type ReleaseDepositResult struct {
	DepositID uuid.UUID
	Status    deposit.Status
}

type DepositCommands interface {
	ReleaseDeposit(ctx context.Context, depositID uuid.UUID) (*ReleaseDepositResult, error)
	CaptureDeposit(ctx context.Context, depositID uuid.UUID, requestedCents *int64) (*CaptureDepositResult, error)
}

type depositCommandsImpl struct {
	depositRepo DepositRepository
	logRepo     PaymentLogRepository
	gateway     PaymentGateway
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewDepositCommands(
	depositRepo DepositRepository,
	logRepo PaymentLogRepository,
	gateway PaymentGateway,
	db *pgxpool.Pool,
	clock clock.Clock,
) DepositCommands {
	return &depositCommandsImpl{
		depositRepo: depositRepo,
		logRepo:     logRepo,
		gateway:     gateway,
		db:          db,
		clock:       clock,
	}
}

// ReleaseDeposit voids an AUTHORIZED hold. The gateway call happens before
// any local mutation so that a gateway failure leaves the hold untouched.
func (d *depositCommandsImpl) ReleaseDeposit(ctx context.Context, depositID uuid.UUID) (*ReleaseDepositResult, error) {
	hold, err := d.findActionable(ctx, depositID)
	if err != nil {
		return nil, err
	}

	if err := d.gateway.CancelCharge(ctx, *hold.ChargeID(), hold.Amount()); err != nil {
		return nil, errs.Mark(err, ErrGatewayActionFailed)
	}

	now := d.clock.Now()
	if _, err := shared.RunInTx(ctx, d.db, func(tx db.DBTX) (struct{}, error) {
		released, txErr := d.depositRepo.Release(ctx, tx, depositID, now)
		if txErr != nil {
			return struct{}{}, txErr
		}
		if !released {
			// Webhook or another admin got there first.
			return struct{}{}, deposit.ErrWrongState
		}
		return struct{}{}, d.logRepo.Append(ctx, tx, hold.BookingID(), eventDepositReleased, map[string]any{
			"deposit_id": depositID,
			"charge_id":  hold.ChargeID(),
			"amount":     hold.Amount(),
		})
	}); err != nil {
		if errors.Is(err, deposit.ErrWrongState) {
			return nil, deposit.ErrWrongState
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ReleaseDepositResult{DepositID: depositID, Status: deposit.StatusReleased}, nil
}

// CaptureDeposit settles an AUTHORIZED hold for the requested amount, or
// the full held amount when none is given. Partial capture is terminal: the
// uncaptured remainder is economically released but the record stays
// CAPTURED.
func (d *depositCommandsImpl) CaptureDeposit(ctx context.Context, depositID uuid.UUID, requestedCents *int64) (*CaptureDepositResult, error) {
	hold, err := d.findActionable(ctx, depositID)
	if err != nil {
		return nil, err
	}

	amount, err := hold.ResolveCaptureAmount(requestedCents)
	if err != nil {
		return nil, err
	}

	if err := d.gateway.CaptureCharge(ctx, *hold.ChargeID(), amount); err != nil {
		return nil, errs.Mark(err, ErrGatewayActionFailed)
	}

	now := d.clock.Now()
	if _, err := shared.RunInTx(ctx, d.db, func(tx db.DBTX) (struct{}, error) {
		captured, txErr := d.depositRepo.Capture(ctx, tx, depositID, amount, now)
		if txErr != nil {
			return struct{}{}, txErr
		}
		if !captured {
			return struct{}{}, deposit.ErrWrongState
		}
		return struct{}{}, d.logRepo.Append(ctx, tx, hold.BookingID(), eventDepositCaptured, map[string]any{
			"deposit_id":      depositID,
			"charge_id":       hold.ChargeID(),
			"captured_amount": amount,
			"held_amount":     hold.Amount(),
		})
	}); err != nil {
		if errors.Is(err, deposit.ErrWrongState) {
			return nil, deposit.ErrWrongState
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CaptureDepositResult{
		DepositID:        depositID,
		Status:           deposit.StatusCaptured,
		CapturedCents:    amount,
		RemainingCents:   hold.Amount() - amount,
		IsPartialCapture: amount < hold.Amount(),
	}, nil
}

func (d *depositCommandsImpl) findActionable(ctx context.Context, depositID uuid.UUID) (*deposit.Hold, error) {
	hold, err := d.depositRepo.FindByID(ctx, depositID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDepositNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !hold.Status().Actionable() || hold.ChargeID() == nil {
		return nil, deposit.ErrWrongState
	}
	return hold, nil
}
