// Package deposit models the card pre-authorization held against a guest for
// the duration of a stay.
package deposit

import (
	"time"

	"checkout-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrWrongState        = errs.New("deposit is not in AUTHORIZED state")
	ErrAmountNotPositive = errs.New("capture amount must be greater than zero")
	ErrAmountOverLimit   = errs.New("capture amount exceeds the authorized amount")
)

type Hold struct {
	id             uuid.UUID
	bookingID      string
	chargeID       *string
	houseName      string
	amount         int64
	status         Status
	authorizedAt   *time.Time
	releasedAt     *time.Time
	capturedAt     *time.Time
	capturedAmount *int64
	updatedAt      time.Time
}

// NewHold records the deposit outcome of an orchestration run. A hold row is
// written even when the guest supplied no deposit card (SKIPPED) so every
// booking has an auditable deposit record.
func NewHold(bookingID string, chargeID *string, houseName string, amountCents int64, status Status, now time.Time) *Hold {
	h := &Hold{
		id:        uuid.New(),
		bookingID: bookingID,
		chargeID:  chargeID,
		houseName: houseName,
		amount:    amountCents,
		status:    status,
	}
	if status == StatusAuthorized {
		t := now
		h.authorizedAt = &t
	}
	return h
}

func ReconstructHold(
	id uuid.UUID,
	bookingID string,
	chargeID *string,
	houseName string,
	amount int64,
	status Status,
	authorizedAt, releasedAt, capturedAt *time.Time,
	capturedAmount *int64,
	updatedAt time.Time,
) *Hold {
	return &Hold{
		id:             id,
		bookingID:      bookingID,
		chargeID:       chargeID,
		houseName:      houseName,
		amount:         amount,
		status:         status,
		authorizedAt:   authorizedAt,
		releasedAt:     releasedAt,
		capturedAt:     capturedAt,
		capturedAmount: capturedAmount,
		updatedAt:      updatedAt,
	}
}

// Release voids the hold. Only an AUTHORIZED hold can be released.
func (h *Hold) Release(now time.Time) error {
	if !h.status.Actionable() {
		return ErrWrongState
	}
	h.status = StatusReleased
	t := now
	h.releasedAt = &t
	return nil
}

// ResolveCaptureAmount validates the requested amount (nil means full) before
// any gateway call is made.
func (h *Hold) ResolveCaptureAmount(requested *int64) (int64, error) {
	if !h.status.Actionable() {
		return 0, ErrWrongState
	}
	amount := h.amount
	if requested != nil {
		amount = *requested
	}
	if amount <= 0 {
		return 0, ErrAmountNotPositive
	}
	if amount > h.amount {
		return 0, ErrAmountOverLimit
	}
	return amount, nil
}

// Capture settles the hold for amountCents, which must already have passed
// ResolveCaptureAmount. A partial capture is terminal: the remainder is
// economically released to the cardholder with no further action possible.
func (h *Hold) Capture(amountCents int64, now time.Time) error {
	if !h.status.Actionable() {
		return ErrWrongState
	}
	if amountCents <= 0 {
		return ErrAmountNotPositive
	}
	if amountCents > h.amount {
		return ErrAmountOverLimit
	}
	h.status = StatusCaptured
	t := now
	h.capturedAt = &t
	captured := amountCents
	h.capturedAmount = &captured
	return nil
}

func (h *Hold) IsPartialCapture() bool {
	return h.capturedAmount != nil && *h.capturedAmount < h.amount
}

func (h *Hold) RemainingAmount() int64 {
	if h.capturedAmount == nil {
		return h.amount
	}
	return h.amount - *h.capturedAmount
}

func (h *Hold) ID() uuid.UUID           { return h.id }
func (h *Hold) BookingID() string       { return h.bookingID }
func (h *Hold) ChargeID() *string       { return h.chargeID }
func (h *Hold) HouseName() string       { return h.houseName }
func (h *Hold) Amount() int64           { return h.amount }
func (h *Hold) Status() Status          { return h.status }
func (h *Hold) AuthorizedAt() *time.Time { return h.authorizedAt }
func (h *Hold) ReleasedAt() *time.Time  { return h.releasedAt }
func (h *Hold) CapturedAt() *time.Time  { return h.capturedAt }
func (h *Hold) CapturedAmount() *int64  { return h.capturedAmount }
func (h *Hold) UpdatedAt() time.Time    { return h.updatedAt }

// MapGatewayStatus translates the gateway's charge-status vocabulary for a
// deposit into the local enum. Unknown values keep the current status.
func MapGatewayStatus(gatewayStatus string, current Status) Status {
	switch gatewayStatus {
	case "AUTHORIZED":
		return StatusAuthorized
	case "PAID":
		return StatusCaptured
	case "DECLINED", "CANCELED":
		return StatusFailed
	default:
		return current
	}
}
