package request

import (
	"checkout-service/internal/domain/checkout"
	"checkout-service/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type BookingData struct {
	GuestName     string `json:"guest_name" binding:"required"`
	GuestEmail    string `json:"guest_email"`
	GuestDocument string `json:"guest_document"`
	GuestPhone    string `json:"guest_phone"`
	HouseName     string `json:"house_name" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut      string `json:"check_out" binding:"required,datetime=2006-01-02"`
	Guests        int    `json:"guests" binding:"required,min=1"`
	TotalPrice    int64  `json:"total_price" binding:"required,min=1"`
}

type GenerateCheckoutRequest struct {
	BookingID          string      `json:"booking_id" binding:"required"`
	Booking            BookingData `json:"booking" binding:"required"`
	StayAmountCents    *int64      `json:"stay_amount_cents,omitempty"`
	DepositAmountCents *int64      `json:"deposit_amount_cents,omitempty"`
}

func (r GenerateCheckoutRequest) ToSnapshot() (checkout.BookingSnapshot, error) {
	var snapshot checkout.BookingSnapshot
	if err := copier.Copy(&snapshot, &r.Booking); err != nil {
		return checkout.BookingSnapshot{}, errs.Wrap(err, "failed to map booking data")
	}
	return snapshot, nil
}

type ValidateCheckoutRequest struct {
	Token string `json:"token" binding:"required"`
}
