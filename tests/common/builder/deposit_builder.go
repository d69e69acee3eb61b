//go:build unit || e2e

package builder

import (
	"time"

	domdeposit "checkout-service/internal/domain/deposit"
	"checkout-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type DepositBuilder struct {
	ID           uuid.UUID
	BookingID    string
	GuestName    string
	ChargeID     *string
	HouseName    string
	AmountCents  int64
	Status       domdeposit.Status
	AuthorizedAt *time.Time
	Now          time.Time
}

func NewDepositBuilder() *DepositBuilder {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	chargeID := "CHAR_DEP_123456"
	return &DepositBuilder{
		ID:           uuid.New(),
		BookingID:    "BK-2026-0042",
		GuestName:    "Maria Silva",
		ChargeID:     &chargeID,
		HouseName:    "Casa da Praia",
		AmountCents:  100000,
		Status:       domdeposit.StatusAuthorized,
		AuthorizedAt: &now,
		Now:          now,
	}
}

func (b *DepositBuilder) BuildDomain() *domdeposit.Hold {
	return domdeposit.ReconstructHold(
		b.ID,
		b.BookingID,
		b.ChargeID,
		b.HouseName,
		b.AmountCents,
		b.Status,
		b.AuthorizedAt,
		nil,
		nil,
		nil,
		b.Now,
	)
}

func (b *DepositBuilder) BuildListItem() *queries.DepositListItem {
	return &queries.DepositListItem{
		ID:           b.ID,
		BookingID:    b.BookingID,
		GuestName:    b.GuestName,
		ChargeID:     b.ChargeID,
		Status:       string(b.Status),
		AmountCents:  b.AmountCents,
		AuthorizedAt: b.AuthorizedAt,
		CreatedAt:    b.Now,
	}
}

// Fluent builder methods
func (b *DepositBuilder) WithStatus(status domdeposit.Status) *DepositBuilder {
	b.Status = status
	if status != domdeposit.StatusAuthorized {
		b.AuthorizedAt = nil
	}
	return b
}

func (b *DepositBuilder) WithChargeID(chargeID *string) *DepositBuilder {
	b.ChargeID = chargeID
	return b
}

func (b *DepositBuilder) WithAmount(cents int64) *DepositBuilder {
	b.AmountCents = cents
	return b
}
