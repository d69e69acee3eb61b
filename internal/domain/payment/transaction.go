// Package payment models the stay-payment transaction recorded after a
// successful orchestration attempt.
package payment

import (
	"time"

	"checkout-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type Method string

const (
	MethodPix        Method = "PIX"
	MethodCreditCard Method = "CREDIT_CARD"
)

func (m Method) IsValid() bool {
	return m == MethodPix || m == MethodCreditCard
}

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusWaitingPix Status = "WAITING_PIX"
	StatusAuthorized Status = "AUTHORIZED"
	StatusPaid       Status = "PAID"
	StatusFailed     Status = "FAILED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusWaitingPix, StatusAuthorized, StatusPaid, StatusFailed:
		return true
	default:
		return false
	}
}

var ErrInvalidMethod = errs.New("invalid payment method")

type Transaction struct {
	id        uuid.UUID
	bookingID string
	chargeID  *string
	amount    int64
	method    Method
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewTransaction(bookingID string, chargeID *string, amountCents int64, method Method, status Status) (*Transaction, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &Transaction{
		id:        uuid.New(),
		bookingID: bookingID,
		chargeID:  chargeID,
		amount:    amountCents,
		method:    method,
		status:    status,
	}, nil
}

func ReconstructTransaction(
	id uuid.UUID,
	bookingID string,
	chargeID *string,
	amount int64,
	method Method,
	status Status,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		id:        id,
		bookingID: bookingID,
		chargeID:  chargeID,
		amount:    amount,
		method:    method,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID        { return t.id }
func (t *Transaction) BookingID() string    { return t.bookingID }
func (t *Transaction) ChargeID() *string    { return t.chargeID }
func (t *Transaction) Amount() int64        { return t.amount }
func (t *Transaction) Method() Method       { return t.method }
func (t *Transaction) Status() Status       { return t.status }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time { return t.updatedAt }

// MapGatewayStatus translates the gateway's charge-status vocabulary for a
// stay payment into the local enum. Unknown values keep the current status.
func MapGatewayStatus(gatewayStatus string, current Status) Status {
	switch gatewayStatus {
	case "PAID":
		return StatusPaid
	case "AUTHORIZED":
		return StatusAuthorized
	case "WAITING":
		return StatusWaitingPix
	case "DECLINED", "CANCELED":
		return StatusFailed
	default:
		return current
	}
}
