//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both pgxpool.Pool and pgx.Tx, so fixtures can
// run inside or outside a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const testSnapshotJSON = `{
	"guest_name": "Maria Silva",
	"guest_email": "maria@example.com",
	"guest_document": "123.456.789-09",
	"guest_phone": "(11) 99999-9999",
	"house_name": "Casa da Praia",
	"check_in": "2026-09-10",
	"check_out": "2026-09-15",
	"guests": 4,
	"total_price": 250000
}`

// CreateTestSession inserts a checkout session row directly, bypassing the
// usecase layer, so tests can stage sessions in arbitrary states.
func CreateTestSession(t *testing.T, db DBLike, token, bookingID, status string, stayCents, depositCents int64, expiresAt time.Time) uuid.UUID {
	t.Helper()

	sessionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO checkout_sessions (
			id, token, booking_id, stay_amount_cents, deposit_amount_cents,
			total_amount_cents, snapshot, status, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sessionID, token, bookingID, stayCents, depositCents,
		stayCents+depositCents, testSnapshotJSON, status, expiresAt)
	require.NoError(t, err)

	return sessionID
}

// CreateTestDepositHold inserts a deposit hold row so the admin endpoints can
// be exercised without driving a full payment through the gateway.
func CreateTestDepositHold(t *testing.T, db DBLike, bookingID, chargeID, status string, amountCents int64) uuid.UUID {
	t.Helper()

	depositID := uuid.New()
	ctx := context.Background()

	var authorizedAt *time.Time
	if status == "AUTHORIZED" {
		now := time.Now().UTC()
		authorizedAt = &now
	}

	_, err := db.Exec(ctx, `
		INSERT INTO deposit_holds (
			id, booking_id, charge_id, house_name, amount_cents, status, authorized_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		depositID, bookingID, chargeID, "Casa da Praia", amountCents, status, authorizedAt)
	require.NoError(t, err)

	return depositID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Default deposit amount; tests that change it go through the admin API.
	_, err := pool.Exec(ctx, `
		INSERT INTO system_settings (key, value) VALUES
		    ('deposit_amount', '{"amount_cents": 100000, "display": "R$ 1.000,00"}')
		ON CONFLICT (key) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
