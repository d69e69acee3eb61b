package pagbank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/errs"
)

// GatewayError carries the HTTP status and raw body of a rejected gateway
// call so callers can log the payload without parsing it.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Body)
}

// Client talks to the PagBank orders/charges REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	sandbox    bool
	webhookURL string
	pixExpiry  time.Duration
	clk        clock.Clock
}

func NewClient(cfg config.GatewayConfig, clk clock.Clock) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.ResolveBaseURL(),
		token:      cfg.Token,
		sandbox:    cfg.Sandbox,
		webhookURL: cfg.WebhookURL,
		pixExpiry:  cfg.PixExpiry,
		clk:        clk,
	}
}

func (c *Client) Sandbox() bool {
	return c.sandbox
}

// CreatePixOrder opens a PIX order and returns the QR code payload. The
// charge id only becomes known when the payer scans the code, so the order
// id stands in as the reference until the webhook arrives.
func (c *Client) CreatePixOrder(ctx context.Context, referenceID string, cust Customer, description string, amountCents int64, idempotencyKey string) (*PixOrder, error) {
	expiresAt := c.clk.Now().Add(c.pixExpiry)
	req := orderRequest{
		ReferenceID: referenceID,
		Customer:    c.wireCustomer(cust),
		Items: []item{{
			ReferenceID: referenceID,
			Name:        description,
			Quantity:    1,
			UnitAmount:  amountCents,
		}},
		QRCodes: []qrCodeReq{{
			Amount:         amount{Value: amountCents},
			ExpirationDate: expiresAt.Format(time.RFC3339),
		}},
	}
	if c.webhookURL != "" {
		req.NotificationURLs = []string{c.webhookURL}
	}

	var resp orderResponse
	if err := c.post(ctx, "/orders", idempotencyKey, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.QRCodes) == 0 {
		return nil, errs.New("pix order response carried no qr code")
	}

	out := &PixOrder{
		ChargeID:   resp.ID,
		QRCodeText: resp.QRCodes[0].Text,
		ExpiresAt:  expiresAt,
	}
	for _, l := range resp.QRCodes[0].Links {
		if l.Rel == "QRCODE.PNG" {
			out.QRCodeImageURL = l.Href
			break
		}
	}
	if len(resp.Charges) > 0 {
		out.ChargeID = resp.Charges[0].ID
	}
	return out, nil
}

// CreateCardCharge opens a card order. With capture true the charge settles
// immediately; with capture false the amount is only pre-authorized and must
// later be captured or cancelled.
func (c *Client) CreateCardCharge(ctx context.Context, referenceID string, cust Customer, description string, amountCents int64, encryptedCard string, capture bool, idempotencyKey string) (*CardCharge, error) {
	req := orderRequest{
		ReferenceID: referenceID,
		Customer:    c.wireCustomer(cust),
		Items: []item{{
			ReferenceID: referenceID,
			Name:        description,
			Quantity:    1,
			UnitAmount:  amountCents,
		}},
		Charges: []chargeReq{{
			ReferenceID: referenceID,
			Description: description,
			Amount:      amount{Value: amountCents, Currency: "BRL"},
			PaymentMethod: paymentMethod{
				Type:         "CREDIT_CARD",
				Installments: 1,
				Capture:      capture,
				Card:         card{Encrypted: encryptedCard},
			},
		}},
	}
	if c.webhookURL != "" {
		req.NotificationURLs = []string{c.webhookURL}
	}

	var resp orderResponse
	if err := c.post(ctx, "/orders", idempotencyKey, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Charges) == 0 {
		return nil, errs.New("card order response carried no charge")
	}
	return &CardCharge{ChargeID: resp.Charges[0].ID, Status: resp.Charges[0].Status}, nil
}

// CaptureCharge settles a pre-authorized charge, optionally for less than
// the authorized amount.
func (c *Client) CaptureCharge(ctx context.Context, chargeID string, amountCents int64) error {
	req := captureRequest{Amount: amount{Value: amountCents}}
	return c.post(ctx, "/charges/"+chargeID+"/capture", "", req, nil)
}

// CancelCharge voids a pre-authorized charge, releasing the hold.
func (c *Client) CancelCharge(ctx context.Context, chargeID string, amountCents int64) error {
	req := captureRequest{Amount: amount{Value: amountCents}}
	return c.post(ctx, "/charges/"+chargeID+"/cancel", "", req, nil)
}

func (c *Client) wireCustomer(cust Customer) customer {
	return customer{
		Name:  cust.Name,
		Email: cust.Email,
		TaxID: cust.TaxID,
		Phones: []phone{{
			Country: "55",
			Area:    cust.PhoneArea,
			Number:  cust.PhoneNum,
			Type:    "MOBILE",
		}},
	}
}

func (c *Client) post(ctx context.Context, path, idempotencyKey string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("x-idempotency-key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "gateway request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "failed to read gateway response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Wrap(&GatewayError{StatusCode: resp.StatusCode, Body: string(raw)}, "gateway call rejected")
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrap(err, "failed to decode gateway response")
	}
	return nil
}
