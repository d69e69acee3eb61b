package pagbank

import "time"

// Wire types for the PagBank orders/charges API. Only the fields the service
// reads are declared; the raw body is kept on errors for diagnostics.

type orderRequest struct {
	ReferenceID      string        `json:"reference_id"`
	Customer         customer      `json:"customer"`
	Items            []item        `json:"items"`
	QRCodes          []qrCodeReq   `json:"qr_codes,omitempty"`
	Charges          []chargeReq   `json:"charges,omitempty"`
	NotificationURLs []string      `json:"notification_urls,omitempty"`
}

type customer struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	TaxID  string  `json:"tax_id"`
	Phones []phone `json:"phones,omitempty"`
}

type phone struct {
	Country string `json:"country"`
	Area    string `json:"area"`
	Number  string `json:"number"`
	Type    string `json:"type"`
}

type item struct {
	ReferenceID string `json:"reference_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	UnitAmount  int64  `json:"unit_amount"`
}

type qrCodeReq struct {
	Amount         amount `json:"amount"`
	ExpirationDate string `json:"expiration_date"`
}

type amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency,omitempty"`
}

type chargeReq struct {
	ReferenceID   string        `json:"reference_id"`
	Description   string        `json:"description"`
	Amount        amount        `json:"amount"`
	PaymentMethod paymentMethod `json:"payment_method"`
}

type paymentMethod struct {
	Type         string `json:"type"`
	Installments int    `json:"installments"`
	Capture      bool   `json:"capture"`
	Card         card   `json:"card"`
}

type card struct {
	Encrypted string `json:"encrypted"`
}

type orderResponse struct {
	ID      string       `json:"id"`
	QRCodes []qrCodeResp `json:"qr_codes"`
	Charges []chargeResp `json:"charges"`
}

type qrCodeResp struct {
	Text           string `json:"text"`
	ExpirationDate string `json:"expiration_date"`
	Links          []link `json:"links"`
}

type link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type chargeResp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type captureRequest struct {
	Amount amount `json:"amount"`
}

// PixOrder is the result of a PIX order creation.
type PixOrder struct {
	ChargeID       string
	QRCodeText     string
	QRCodeImageURL string
	ExpiresAt      time.Time
}

// CardCharge is the result of a card order creation (settled or pre-auth).
type CardCharge struct {
	ChargeID string
	Status   string
}

// Customer is the identity attached to a gateway charge, already resolved by
// ResolveCustomer (see identity.go).
type Customer struct {
	Name      string
	Email     string
	TaxID     string
	PhoneArea string
	PhoneNum  string
}
