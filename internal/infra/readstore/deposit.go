package readstore

import (
	"context"

	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/pgconv"
	"checkout-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DepositReadStore struct {
	db db.DBTX
}

func NewDepositReadStore(pool db.DBTX) *DepositReadStore {
	return &DepositReadStore{db: pool}
}

// FindAllOrdered lists holds newest-authorization-first for the admin
// dashboard. The guest name comes from the session snapshot sharing the
// booking id; holds are not foreign-keyed to sessions.
func (s *DepositReadStore) FindAllOrdered(ctx context.Context) ([]*queries.DepositListItem, error) {
	rows, err := s.db.Query(ctx, `
SELECT d.id, d.booking_id,
       COALESCE(c.snapshot->>'guest_name', '') AS guest_name,
       d.charge_id, d.status, d.amount_cents, d.captured_amount_cents,
       d.authorized_at, COALESCE(d.released_at, d.captured_at) AS resolved_at,
       d.created_at
FROM deposit_holds d
LEFT JOIN LATERAL (
    SELECT snapshot
    FROM checkout_sessions
    WHERE booking_id = d.booking_id
    ORDER BY created_at DESC
    LIMIT 1
) c ON true
ORDER BY d.authorized_at DESC NULLS LAST, d.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deposit holds", err)
	}
	defer rows.Close()

	var items []*queries.DepositListItem
	for rows.Next() {
		var (
			id             pgtype.UUID
			bookingID      string
			guestName      string
			chargeID       pgtype.Text
			status         string
			amount         int64
			capturedAmount pgtype.Int8
			authorizedAt   pgtype.Timestamptz
			resolvedAt     pgtype.Timestamptz
			createdAt      pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &bookingID, &guestName, &chargeID, &status, &amount,
			&capturedAmount, &authorizedAt, &resolvedAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deposit hold row", err)
		}
		items = append(items, &queries.DepositListItem{
			ID:            uuid.UUID(id.Bytes),
			BookingID:     bookingID,
			GuestName:     guestName,
			ChargeID:      pgconv.StringPtrFromPgtype(chargeID),
			Status:        status,
			AmountCents:   amount,
			CapturedCents: pgconv.Int64PtrFromPgtype(capturedAmount),
			AuthorizedAt:  pgconv.TimePtrFromPgtype(authorizedAt),
			ResolvedAt:    pgconv.TimePtrFromPgtype(resolvedAt),
			CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read deposit hold rows", err)
	}
	return items, nil
}
