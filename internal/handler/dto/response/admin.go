package response

import (
	"time"

	"checkout-service/internal/pkg/money"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

type DepositItemResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     string     `json:"bookingId"`
	GuestName     string     `json:"guestName"`
	ChargeID      *string    `json:"chargeId,omitempty"`
	Status        string     `json:"status"`
	AmountCents   int64      `json:"amountCents"`
	AmountDisplay string     `json:"amountDisplay"`
	CapturedCents *int64     `json:"capturedCents,omitempty"`
	AuthorizedAt  *time.Time `json:"authorizedAt,omitempty"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromDepositListItem(item *queries.DepositListItem) *DepositItemResponse {
	return &DepositItemResponse{
		ID:            item.ID,
		BookingID:     item.BookingID,
		GuestName:     item.GuestName,
		ChargeID:      item.ChargeID,
		Status:        item.Status,
		AmountCents:   item.AmountCents,
		AmountDisplay: money.FormatBRL(item.AmountCents),
		CapturedCents: item.CapturedCents,
		AuthorizedAt:  item.AuthorizedAt,
		ResolvedAt:    item.ResolvedAt,
		CreatedAt:     item.CreatedAt,
	}
}

type ReleaseDepositResponse struct {
	DepositID uuid.UUID `json:"depositId"`
	Status    string    `json:"status"`
}

type CaptureDepositResponse struct {
	DepositID        uuid.UUID `json:"depositId"`
	Status           string    `json:"status"`
	CapturedCents    int64     `json:"capturedAmount"`
	RemainingCents   int64     `json:"remainingAmount"`
	IsPartialCapture bool      `json:"isPartialCapture"`
}

func FromCaptureResult(r *commands.CaptureDepositResult) *CaptureDepositResponse {
	return &CaptureDepositResponse{
		DepositID:        r.DepositID,
		Status:           string(r.Status),
		CapturedCents:    r.CapturedCents,
		RemainingCents:   r.RemainingCents,
		IsPartialCapture: r.IsPartialCapture,
	}
}

type SettingsResponse struct {
	DepositAmountCents int64  `json:"depositAmountCents"`
	DepositDisplay     string `json:"depositDisplay"`
}

func FromSettingsView(v *queries.SettingsView) *SettingsResponse {
	return &SettingsResponse{
		DepositAmountCents: v.DepositAmountCents,
		DepositDisplay:     money.FormatBRL(v.DepositAmountCents),
	}
}

type SweepResponse struct {
	ExpiredCount int `json:"expiredCount"`
}
