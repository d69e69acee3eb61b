package repository

import (
	"context"
	"time"

	"checkout-service/internal/domain/deposit"
	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DepositRepository struct {
	db db.DBTX
}

func NewDepositRepository(pool db.DBTX) *DepositRepository {
	return &DepositRepository{db: pool}
}

func (r *DepositRepository) Create(ctx context.Context, tx db.DBTX, hold *deposit.Hold) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO deposit_holds (id, booking_id, charge_id, house_name, amount_cents, status, authorized_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`,
		pgconv.UUIDToPgtype(hold.ID()),
		hold.BookingID(),
		pgconv.StringPtrToPgtype(hold.ChargeID()),
		hold.HouseName(),
		hold.Amount(),
		string(hold.Status()),
		pgconv.TimePtrToPgtype(hold.AuthorizedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create deposit hold", err)
	}
	return id, nil
}

const selectHoldSQL = `
SELECT id, booking_id, charge_id, house_name, amount_cents, status,
       authorized_at, released_at, captured_at, captured_amount_cents, updated_at
FROM deposit_holds`

func (r *DepositRepository) FindByID(ctx context.Context, id uuid.UUID) (*deposit.Hold, error) {
	row := r.db.QueryRow(ctx, selectHoldSQL+` WHERE id = $1`, pgconv.UUIDToPgtype(id))
	return r.scanHold(row, "deposit hold not found")
}

func (r *DepositRepository) FindByChargeID(ctx context.Context, chargeID string) (*deposit.Hold, error) {
	row := r.db.QueryRow(ctx, selectHoldSQL+` WHERE charge_id = $1`, chargeID)
	return r.scanHold(row, "deposit hold not found for charge")
}

func (r *DepositRepository) FindByBookingID(ctx context.Context, bookingID string) (*deposit.Hold, error) {
	row := r.db.QueryRow(ctx, selectHoldSQL+`
 WHERE booking_id = $1
 ORDER BY created_at DESC
 LIMIT 1`, bookingID)
	return r.scanHold(row, "deposit hold not found for booking")
}

func (r *DepositRepository) Release(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
UPDATE deposit_holds
SET status = 'RELEASED', released_at = $2, updated_at = $2
WHERE id = $1 AND status = 'AUTHORIZED'`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(now))
	if err != nil {
		return false, infra.WrapRepoErr("failed to release deposit hold", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DepositRepository) Capture(ctx context.Context, tx db.DBTX, id uuid.UUID, capturedCents int64, now time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
UPDATE deposit_holds
SET status = 'CAPTURED', captured_at = $2, captured_amount_cents = $3, updated_at = $2
WHERE id = $1 AND status = 'AUTHORIZED'`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(now), capturedCents)
	if err != nil {
		return false, infra.WrapRepoErr("failed to capture deposit hold", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DepositRepository) SetStatusFrom(ctx context.Context, tx db.DBTX, id uuid.UUID, to deposit.Status, now time.Time, from ...deposit.Status) (bool, error) {
	query := `
UPDATE deposit_holds
SET status = $2, updated_at = $3
WHERE id = $1`
	args := []any{pgconv.UUIDToPgtype(id), string(to), pgconv.TimeToPgtype(now)}
	if len(from) > 0 {
		states := make([]string, len(from))
		for i, s := range from {
			states[i] = string(s)
		}
		query += ` AND status = ANY($4)`
		args = append(args, states)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update deposit status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DepositRepository) scanHold(row pgxRowScanner, notFoundMsg string) (*deposit.Hold, error) {
	var (
		id             pgtype.UUID
		bookingID      string
		chargeID       pgtype.Text
		houseName      string
		amount         int64
		status         string
		authorizedAt   pgtype.Timestamptz
		releasedAt     pgtype.Timestamptz
		capturedAt     pgtype.Timestamptz
		capturedAmount pgtype.Int8
		updatedAt      pgtype.Timestamptz
	)
	if err := row.Scan(&id, &bookingID, &chargeID, &houseName, &amount, &status,
		&authorizedAt, &releasedAt, &capturedAt, &capturedAmount, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan deposit hold", err)
	}

	return deposit.ReconstructHold(
		uuid.UUID(id.Bytes),
		bookingID,
		pgconv.StringPtrFromPgtype(chargeID),
		houseName,
		amount,
		deposit.Status(status),
		pgconv.TimePtrFromPgtype(authorizedAt),
		pgconv.TimePtrFromPgtype(releasedAt),
		pgconv.TimePtrFromPgtype(capturedAt),
		pgconv.Int64PtrFromPgtype(capturedAmount),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
