package repository

import (
	"context"
	"time"

	"checkout-service/internal/domain/payment"
	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(pool db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: pool}
}

func (r *TransactionRepository) Create(ctx context.Context, tx db.DBTX, txn *payment.Transaction) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO payment_transactions (id, booking_id, charge_id, amount_cents, method, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`,
		pgconv.UUIDToPgtype(txn.ID()),
		txn.BookingID(),
		pgconv.StringPtrToPgtype(txn.ChargeID()),
		txn.Amount(),
		string(txn.Method()),
		string(txn.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create transaction", err)
	}
	return id, nil
}

func (r *TransactionRepository) FindByChargeID(ctx context.Context, chargeID string) (*payment.Transaction, error) {
	row := r.db.QueryRow(ctx, `
SELECT id, booking_id, charge_id, amount_cents, method, status, created_at, updated_at
FROM payment_transactions
WHERE charge_id = $1`, chargeID)

	var (
		id        pgtype.UUID
		bookingID string
		charge    pgtype.Text
		amount    int64
		method    string
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &bookingID, &charge, &amount, &method, &status, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}

	return payment.ReconstructTransaction(
		uuid.UUID(id.Bytes),
		bookingID,
		pgconv.StringPtrFromPgtype(charge),
		amount,
		payment.Method(method),
		payment.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *TransactionRepository) SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status payment.Status, now time.Time) error {
	_, err := tx.Exec(ctx, `
UPDATE payment_transactions
SET status = $2, updated_at = $3
WHERE id = $1`,
		pgconv.UUIDToPgtype(id), string(status), pgconv.TimeToPgtype(now))
	if err != nil {
		return infra.WrapRepoErr("failed to update transaction status", err)
	}
	return nil
}
