package checkout

import (
	"time"

	"checkout-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount = errs.New("amount cannot be negative")
	ErrExpired        = errs.New("session has expired")
	ErrAlreadyUsed    = errs.New("session already completed")
	ErrNotAvailable   = errs.New("session no longer available")
	ErrNotPending     = errs.New("session is not pending")
)

type Session struct {
	id            uuid.UUID
	token         string
	bookingID     string
	stayAmount    int64
	depositAmount int64
	totalAmount   int64
	snapshot      BookingSnapshot
	status        Status
	expiresAt     time.Time
	completedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewSession(
	bookingID string,
	snapshot BookingSnapshot,
	stayAmountCents, depositAmountCents int64,
	now time.Time,
	window time.Duration,
) (*Session, error) {
	if stayAmountCents < 0 || depositAmountCents < 0 {
		return nil, ErrNegativeAmount
	}

	return &Session{
		id:            uuid.New(),
		token:         GenerateToken(bookingID, now),
		bookingID:     bookingID,
		stayAmount:    stayAmountCents,
		depositAmount: depositAmountCents,
		totalAmount:   stayAmountCents + depositAmountCents,
		snapshot:      snapshot,
		status:        StatusPending,
		expiresAt:     now.Add(window),
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	token, bookingID string,
	stayAmount, depositAmount, totalAmount int64,
	snapshot BookingSnapshot,
	status Status,
	expiresAt time.Time,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:            id,
		token:         token,
		bookingID:     bookingID,
		stayAmount:    stayAmount,
		depositAmount: depositAmount,
		totalAmount:   totalAmount,
		snapshot:      snapshot,
		status:        status,
		expiresAt:     expiresAt,
		completedAt:   completedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// CheckUsable decides whether the session may still proceed to payment at the
// given instant. A PENDING session past its deadline reports ErrExpired and
// flips to EXPIRED in memory; the caller is responsible for persisting that
// transition (lazy expiry).
func (s *Session) CheckUsable(now time.Time) error {
	if now.After(s.expiresAt) {
		if s.status == StatusPending {
			s.status = StatusExpired
		}
		if s.status == StatusExpired {
			return ErrExpired
		}
	}

	switch s.status {
	case StatusPending:
		return nil
	case StatusCompleted:
		return ErrAlreadyUsed
	default:
		return ErrNotAvailable
	}
}

// Complete marks the session COMPLETED. Concurrent completion is resolved at
// the store with a conditional update; this only guards the in-memory entity.
func (s *Session) Complete(now time.Time) error {
	if s.status != StatusPending {
		return ErrNotPending
	}
	s.status = StatusCompleted
	completedAt := now
	s.completedAt = &completedAt
	return nil
}

func (s *Session) HasExpired(now time.Time) bool {
	return now.After(s.expiresAt)
}

func (s *Session) ID() uuid.UUID             { return s.id }
func (s *Session) Token() string             { return s.token }
func (s *Session) BookingID() string         { return s.bookingID }
func (s *Session) StayAmount() int64         { return s.stayAmount }
func (s *Session) DepositAmount() int64      { return s.depositAmount }
func (s *Session) TotalAmount() int64        { return s.totalAmount }
func (s *Session) Snapshot() BookingSnapshot { return s.snapshot }
func (s *Session) Status() Status            { return s.status }
func (s *Session) ExpiresAt() time.Time      { return s.expiresAt }
func (s *Session) CompletedAt() *time.Time   { return s.completedAt }
func (s *Session) CreatedAt() time.Time      { return s.createdAt }
func (s *Session) UpdatedAt() time.Time      { return s.updatedAt }
