//go:build unit || e2e

package builder

import (
	"time"

	domcheckout "checkout-service/internal/domain/checkout"
	reqdto "checkout-service/internal/handler/dto/request"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	BookingID          string
	GuestName          string
	GuestEmail         string
	GuestDocument      string
	GuestPhone         string
	HouseName          string
	CheckIn            string
	CheckOut           string
	Guests             int
	TotalPrice         int64
	StayAmountCents    *int64
	DepositAmountCents *int64
	Now                time.Time
	Window             time.Duration
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		BookingID:     "BK-2026-0042",
		GuestName:     "Maria Silva",
		GuestEmail:    "maria.silva@example.com",
		GuestDocument: "12345678909",
		GuestPhone:    "+55 11 98765-4321",
		HouseName:     "Casa da Praia",
		CheckIn:       "2026-09-10",
		CheckOut:      "2026-09-15",
		Guests:        4,
		TotalPrice:    250000,
		Now:           time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Window:        12 * time.Hour,
	}
}

func (b *CheckoutBuilder) BuildSnapshot() domcheckout.BookingSnapshot {
	return domcheckout.BookingSnapshot{
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestDocument: b.GuestDocument,
		GuestPhone:    b.GuestPhone,
		HouseName:     b.HouseName,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
	}
}

func (b *CheckoutBuilder) BuildDomain() (*domcheckout.Session, error) {
	stay := b.TotalPrice
	if b.StayAmountCents != nil {
		stay = *b.StayAmountCents
	}
	var deposit int64
	if b.DepositAmountCents != nil {
		deposit = *b.DepositAmountCents
	}
	return domcheckout.NewSession(b.BookingID, b.BuildSnapshot(), stay, deposit, b.Now, b.Window)
}

func (b *CheckoutBuilder) BuildGenerateRequestDTO() reqdto.GenerateCheckoutRequest {
	return reqdto.GenerateCheckoutRequest{
		BookingID: b.BookingID,
		Booking: reqdto.BookingData{
			GuestName:     b.GuestName,
			GuestEmail:    b.GuestEmail,
			GuestDocument: b.GuestDocument,
			GuestPhone:    b.GuestPhone,
			HouseName:     b.HouseName,
			CheckIn:       b.CheckIn,
			CheckOut:      b.CheckOut,
			Guests:        b.Guests,
			TotalPrice:    b.TotalPrice,
		},
		StayAmountCents:    b.StayAmountCents,
		DepositAmountCents: b.DepositAmountCents,
	}
}

func (b *CheckoutBuilder) BuildCreateResult(token string) *commands.CreateCheckoutResult {
	stay := b.TotalPrice
	if b.StayAmountCents != nil {
		stay = *b.StayAmountCents
	}
	var deposit int64
	if b.DepositAmountCents != nil {
		deposit = *b.DepositAmountCents
	}
	return &commands.CreateCheckoutResult{
		Token:              token,
		URL:                "https://pay.example.com/checkout/" + token,
		StayAmountCents:    stay,
		DepositAmountCents: deposit,
		TotalAmountCents:   stay + deposit,
		ExpiresAt:          b.Now.Add(b.Window),
	}
}

func (b *CheckoutBuilder) BuildSessionView(token string) *queries.SessionView {
	stay := b.TotalPrice
	if b.StayAmountCents != nil {
		stay = *b.StayAmountCents
	}
	var deposit int64
	if b.DepositAmountCents != nil {
		deposit = *b.DepositAmountCents
	}
	return &queries.SessionView{
		ID:                 uuid.New(),
		BookingID:          b.BookingID,
		Token:              token,
		Status:             string(domcheckout.StatusPending),
		StayAmountCents:    stay,
		DepositAmountCents: deposit,
		Snapshot:           b.BuildSnapshot(),
		ExpiresAt:          b.Now.Add(b.Window),
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
}

// Fluent builder methods
func (b *CheckoutBuilder) WithBookingID(id string) *CheckoutBuilder {
	b.BookingID = id
	return b
}

func (b *CheckoutBuilder) WithTotalPrice(cents int64) *CheckoutBuilder {
	b.TotalPrice = cents
	return b
}

func (b *CheckoutBuilder) WithStayAmount(cents int64) *CheckoutBuilder {
	b.StayAmountCents = &cents
	return b
}

func (b *CheckoutBuilder) WithDepositAmount(cents int64) *CheckoutBuilder {
	b.DepositAmountCents = &cents
	return b
}

func (b *CheckoutBuilder) WithNow(now time.Time) *CheckoutBuilder {
	b.Now = now
	return b
}

func (b *CheckoutBuilder) WithWindow(window time.Duration) *CheckoutBuilder {
	b.Window = window
	return b
}
