package response

import (
	"time"

	"checkout-service/internal/pkg/money"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"
)

type GenerateCheckoutResponse struct {
	Token              string    `json:"token"`
	URL                string    `json:"url"`
	StayAmountCents    int64     `json:"stayAmountCents"`
	DepositAmountCents int64     `json:"depositAmountCents"`
	TotalAmountCents   int64     `json:"totalAmountCents"`
	TotalDisplay       string    `json:"totalDisplay"`
	ExpiresAt          time.Time `json:"expiresAt"`
	Reused             bool      `json:"reused"`
}

func FromCreateCheckoutResult(r *commands.CreateCheckoutResult) *GenerateCheckoutResponse {
	return &GenerateCheckoutResponse{
		Token:              r.Token,
		URL:                r.URL,
		StayAmountCents:    r.StayAmountCents,
		DepositAmountCents: r.DepositAmountCents,
		TotalAmountCents:   r.TotalAmountCents,
		TotalDisplay:       money.FormatBRL(r.TotalAmountCents),
		ExpiresAt:          r.ExpiresAt,
		Reused:             r.Reused,
	}
}

type SessionResponse struct {
	BookingID          string          `json:"bookingId"`
	Status             string          `json:"status"`
	StayAmountCents    int64           `json:"stayAmountCents"`
	DepositAmountCents int64           `json:"depositAmountCents"`
	StayDisplay        string          `json:"stayDisplay"`
	DepositDisplay     string          `json:"depositDisplay"`
	Booking            BookingResponse `json:"booking"`
	ExpiresAt          time.Time       `json:"expiresAt"`
}

type BookingResponse struct {
	GuestName string `json:"guestName"`
	HouseName string `json:"houseName"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Guests    int    `json:"guests"`
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		BookingID:          v.BookingID,
		Status:             v.Status,
		StayAmountCents:    v.StayAmountCents,
		DepositAmountCents: v.DepositAmountCents,
		StayDisplay:        money.FormatBRL(v.StayAmountCents),
		DepositDisplay:     money.FormatBRL(v.DepositAmountCents),
		Booking: BookingResponse{
			GuestName: v.Snapshot.GuestName,
			HouseName: v.Snapshot.HouseName,
			CheckIn:   v.Snapshot.CheckIn,
			CheckOut:  v.Snapshot.CheckOut,
			Guests:    v.Snapshot.Guests,
		},
		ExpiresAt: v.ExpiresAt,
	}
}
