package queries

import (
	"time"

	"checkout-service/internal/domain/checkout"

	"github.com/google/uuid"
)

// SessionView represents read-optimized checkout session data
type SessionView struct {
	ID                 uuid.UUID                `json:"id"`
	BookingID          string                   `json:"booking_id"`
	Token              string                   `json:"token"`
	Status             string                   `json:"status"`
	StayAmountCents    int64                    `json:"stay_amount_cents"`
	DepositAmountCents int64                    `json:"deposit_amount_cents"`
	Snapshot           checkout.BookingSnapshot `json:"snapshot"`
	ExpiresAt          time.Time                `json:"expires_at"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// DepositListItem represents read-optimized deposit hold data for the admin list
type DepositListItem struct {
	ID             uuid.UUID  `json:"id"`
	BookingID      string     `json:"booking_id"`
	GuestName      string     `json:"guest_name"`
	ChargeID       *string    `json:"charge_id,omitempty"`
	Status         string     `json:"status"`
	AmountCents    int64      `json:"amount_cents"`
	CapturedCents  *int64     `json:"captured_cents,omitempty"`
	AuthorizedAt   *time.Time `json:"authorized_at,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SettingsView represents the publicly visible checkout settings
type SettingsView struct {
	DepositAmountCents int64 `json:"deposit_amount_cents"`
}
