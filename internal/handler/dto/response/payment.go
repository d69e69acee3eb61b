package response

import (
	"time"

	"checkout-service/internal/usecase/commands"
)

type PixResponse struct {
	QRCode         string    `json:"qrCode"`
	QRCodeImageURL string    `json:"qrCodeImageUrl,omitempty"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

type ProcessPaymentResponse struct {
	BookingID       string       `json:"bookingId"`
	StayStatus      string       `json:"stayStatus"`
	DepositStatus   string       `json:"depositStatus"`
	StayChargeID    *string      `json:"stayChargeId,omitempty"`
	DepositChargeID *string      `json:"depositChargeId,omitempty"`
	TotalAmount     int64        `json:"totalAmount"`
	DepositAmount   int64        `json:"depositAmount"`
	Pix             *PixResponse `json:"pix,omitempty"`
}

func FromProcessPaymentResult(r *commands.ProcessPaymentResult) *ProcessPaymentResponse {
	resp := &ProcessPaymentResponse{
		BookingID:       r.BookingID,
		StayStatus:      string(r.StayStatus),
		DepositStatus:   string(r.DepositStatus),
		StayChargeID:    r.StayChargeID,
		DepositChargeID: r.DepositChargeID,
		TotalAmount:     r.TotalAmountCents,
		DepositAmount:   r.DepositAmountCents,
	}
	if r.Pix != nil {
		resp.Pix = &PixResponse{
			QRCode:         r.Pix.QRCodeText,
			QRCodeImageURL: r.Pix.QRCodeImageURL,
			ExpiresAt:      r.Pix.ExpiresAt,
		}
	}
	return resp
}
