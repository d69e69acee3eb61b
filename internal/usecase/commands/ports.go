package commands

import (
	"context"
	"time"

	"checkout-service/internal/domain/checkout"
	"checkout-service/internal/domain/deposit"
	"checkout-service/internal/domain/payment"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/infra/pagbank"

	"github.com/google/uuid"
)

// Reference id suffixes distinguish the two charges of one booking on the
// gateway side; the webhook reconciler routes on them.
const (
	RefSuffixStay    = "-STAY"
	RefSuffixDeposit = "-DEPOSIT"
)

type SessionRepository interface {
	Create(ctx context.Context, tx db.DBTX, session *checkout.Session) (uuid.UUID, error)
	FindByToken(ctx context.Context, token string) (*checkout.Session, error)
	FindPendingByBooking(ctx context.Context, bookingID string) (*checkout.Session, error)
	// ExpireIfPending flips a PENDING session to EXPIRED; reports whether
	// this caller performed the transition.
	ExpireIfPending(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (bool, error)
	// CompleteIfPending is the compare-and-swap the orchestrator relies on:
	// exactly one concurrent caller observes true.
	CompleteIfPending(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (bool, error)
	// ExpireStale batch-transitions every PENDING session past its deadline
	// and returns the affected sessions for auditing.
	ExpireStale(ctx context.Context, tx db.DBTX, now time.Time) ([]ExpiredSession, error)
}

type ExpiredSession struct {
	ID        uuid.UUID
	BookingID string
	Token     string
	ExpiredAt time.Time
}

type TransactionRepository interface {
	Create(ctx context.Context, tx db.DBTX, txn *payment.Transaction) (uuid.UUID, error)
	FindByChargeID(ctx context.Context, chargeID string) (*payment.Transaction, error)
	// SetStatus is a single atomic field-set keyed by id, never a
	// read-modify-write.
	SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status payment.Status, now time.Time) error
}

type DepositRepository interface {
	Create(ctx context.Context, tx db.DBTX, hold *deposit.Hold) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*deposit.Hold, error)
	FindByChargeID(ctx context.Context, chargeID string) (*deposit.Hold, error)
	FindByBookingID(ctx context.Context, bookingID string) (*deposit.Hold, error)
	// Release and Capture transition only from AUTHORIZED; a false return
	// means another writer got there first.
	Release(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (bool, error)
	Capture(ctx context.Context, tx db.DBTX, id uuid.UUID, capturedCents int64, now time.Time) (bool, error)
	// SetStatusFrom writes the status as a single atomic field-set. When
	// from states are given the update only applies if the row is still in
	// one of them.
	SetStatusFrom(ctx context.Context, tx db.DBTX, id uuid.UUID, to deposit.Status, now time.Time, from ...deposit.Status) (bool, error)
}

type PaymentLogRepository interface {
	Append(ctx context.Context, tx db.DBTX, bookingID, event string, details any) error
}

type SettingsRepository interface {
	SetDepositAmount(ctx context.Context, cents int64, display string) error
}

type PaymentGateway interface {
	CreatePixOrder(ctx context.Context, referenceID string, cust pagbank.Customer, description string, amountCents int64, idempotencyKey string) (*pagbank.PixOrder, error)
	CreateCardCharge(ctx context.Context, referenceID string, cust pagbank.Customer, description string, amountCents int64, encryptedCard string, capture bool, idempotencyKey string) (*pagbank.CardCharge, error)
	CaptureCharge(ctx context.Context, chargeID string, amountCents int64) error
	CancelCharge(ctx context.Context, chargeID string, amountCents int64) error
	Sandbox() bool
}

// PaymentNotification is the payload pushed to the booking system after a
// stay payment settles or completes checkout.
type PaymentNotification struct {
	BookingID          string  `json:"bookingId"`
	StayChargeID       *string `json:"stayChargeId"`
	DepositChargeID    *string `json:"depositChargeId"`
	StayStatus         string  `json:"stayStatus"`
	DepositStatus      string  `json:"depositStatus"`
	TotalAmountCents   int64   `json:"totalAmount"`
	DepositAmountCents int64   `json:"depositAmount"`
}

type BookingNotifier interface {
	PaymentConfirmed(ctx context.Context, n PaymentNotification) error
}
