package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/commands"
)

// BookingNotifier pushes payment outcomes to the booking system. Delivery
// is best-effort; callers swallow the error after logging it.
type BookingNotifier struct {
	httpClient *http.Client
	url        string
}

func NewBookingNotifier(cfg config.NotifyConfig) *BookingNotifier {
	return &BookingNotifier{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.MainAppURL + "/api/webhooks/payment-confirmed",
	}
}

func (n *BookingNotifier) PaymentConfirmed(ctx context.Context, notification commands.PaymentNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "notification request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Newf("booking system returned %d", resp.StatusCode)
	}
	return nil
}
