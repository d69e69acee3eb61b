package repository

import (
	"context"
	"encoding/json"
	"time"

	"checkout-service/internal/domain/checkout"
	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/pgconv"
	"checkout-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionRepository struct {
	db db.DBTX
}

func NewSessionRepository(pool db.DBTX) *SessionRepository {
	return &SessionRepository{db: pool}
}

const insertSessionSQL = `
INSERT INTO checkout_sessions (
    id, token, booking_id, stay_amount_cents, deposit_amount_cents,
    total_amount_cents, snapshot, status, expires_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *SessionRepository) Create(ctx context.Context, tx db.DBTX, session *checkout.Session) (uuid.UUID, error) {
	snapshot, err := json.Marshal(session.Snapshot())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode booking snapshot", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, insertSessionSQL,
		pgconv.UUIDToPgtype(session.ID()),
		session.Token(),
		session.BookingID(),
		session.StayAmount(),
		session.DepositAmount(),
		session.TotalAmount(),
		snapshot,
		string(session.Status()),
		pgconv.TimeToPgtype(session.ExpiresAt()),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("session token already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create checkout session", err)
	}
	return id, nil
}

const selectSessionSQL = `
SELECT id, token, booking_id, stay_amount_cents, deposit_amount_cents,
       total_amount_cents, snapshot, status, expires_at, completed_at,
       created_at, updated_at
FROM checkout_sessions`

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*checkout.Session, error) {
	row := r.db.QueryRow(ctx, selectSessionSQL+` WHERE token = $1`, token)
	session, err := scanSession(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find checkout session", err)
	}
	return session, nil
}

func (r *SessionRepository) FindPendingByBooking(ctx context.Context, bookingID string) (*checkout.Session, error) {
	row := r.db.QueryRow(ctx, selectSessionSQL+`
 WHERE booking_id = $1 AND status = 'PENDING'
 ORDER BY created_at DESC
 LIMIT 1`, bookingID)
	session, err := scanSession(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending session for booking", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending session", err)
	}
	return session, nil
}

func (r *SessionRepository) ExpireIfPending(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
UPDATE checkout_sessions
SET status = 'EXPIRED', updated_at = $2
WHERE id = $1 AND status = 'PENDING'`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(now))
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire session", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SessionRepository) CompleteIfPending(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
UPDATE checkout_sessions
SET status = 'COMPLETED', completed_at = $2, updated_at = $2
WHERE id = $1 AND status = 'PENDING'`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(now))
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete session", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SessionRepository) ExpireStale(ctx context.Context, tx db.DBTX, now time.Time) ([]commands.ExpiredSession, error) {
	rows, err := tx.Query(ctx, `
UPDATE checkout_sessions
SET status = 'EXPIRED', updated_at = $1
WHERE status = 'PENDING' AND expires_at < $1
RETURNING id, booking_id, token, expires_at`,
		pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire stale sessions", err)
	}
	defer rows.Close()

	var expired []commands.ExpiredSession
	for rows.Next() {
		var (
			id        pgtype.UUID
			bookingID string
			token     string
			expiresAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &bookingID, &token, &expiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired session", err)
		}
		expired = append(expired, commands.ExpiredSession{
			ID:        uuid.UUID(id.Bytes),
			BookingID: bookingID,
			Token:     token,
			ExpiredAt: pgconv.TimeFromPgtype(expiresAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired sessions", err)
	}
	return expired, nil
}

func scanSession(row pgxRowScanner) (*checkout.Session, error) {
	var (
		id            pgtype.UUID
		token         string
		bookingID     string
		stayAmount    int64
		depositAmount int64
		totalAmount   int64
		snapshotRaw   []byte
		status        string
		expiresAt     pgtype.Timestamptz
		completedAt   pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	if err := row.Scan(&id, &token, &bookingID, &stayAmount, &depositAmount,
		&totalAmount, &snapshotRaw, &status, &expiresAt, &completedAt,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var snapshot checkout.BookingSnapshot
	if err := json.Unmarshal(snapshotRaw, &snapshot); err != nil {
		return nil, err
	}

	return checkout.ReconstructSession(
		uuid.UUID(id.Bytes),
		token,
		bookingID,
		stayAmount,
		depositAmount,
		totalAmount,
		snapshot,
		checkout.Status(status),
		pgconv.TimeFromPgtype(expiresAt),
		pgconv.TimePtrFromPgtype(completedAt),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
