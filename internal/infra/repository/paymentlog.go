package repository

import (
	"context"
	"encoding/json"

	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
)

// PaymentLogRepository is append-only; rows are never read back except for
// manual debugging.
type PaymentLogRepository struct {
	db db.DBTX
}

func NewPaymentLogRepository(pool db.DBTX) *PaymentLogRepository {
	return &PaymentLogRepository{db: pool}
}

func (r *PaymentLogRepository) Append(ctx context.Context, tx db.DBTX, bookingID, event string, details any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return infra.WrapRepoErr("failed to encode log details", err)
	}
	if _, err := tx.Exec(ctx, `
INSERT INTO payment_logs (booking_id, event, details)
VALUES ($1, $2, $3)`, bookingID, event, payload); err != nil {
		return infra.WrapRepoErr("failed to append payment log", err)
	}
	return nil
}
