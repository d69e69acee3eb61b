package request

import "strings"

type CardData struct {
	Encrypted string `json:"encrypted" binding:"required"`
}

type ProcessPaymentRequest struct {
	Token       string    `json:"token" binding:"required"`
	BookingID   string    `json:"booking_id" binding:"required"`
	StayMethod  string    `json:"stay_method" binding:"required"`
	StayCard    *CardData `json:"stay_card,omitempty"`
	DepositCard *CardData `json:"deposit_card,omitempty"`
}

func (r ProcessPaymentRequest) NormalizedMethod() string {
	return strings.ToUpper(strings.TrimSpace(r.StayMethod))
}

// DepositCardEncrypted returns the deposit card payload when one was
// actually supplied, treating a blank string as absent.
func (r ProcessPaymentRequest) DepositCardEncrypted() *string {
	if r.DepositCard == nil {
		return nil
	}
	trimmed := strings.TrimSpace(r.DepositCard.Encrypted)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
