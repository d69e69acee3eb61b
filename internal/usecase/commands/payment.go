package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"checkout-service/internal/domain/checkout"
	"checkout-service/internal/domain/deposit"
	"checkout-service/internal/domain/payment"
	reqdto "checkout-service/internal/handler/dto/request"
	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/infra/pagbank"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMissingCardData   = errs.New("encrypted card data is required for this method")
	ErrBookingMismatch   = errs.New("booking id does not match the checkout session")
	ErrStayPaymentFailed = errs.New("stay payment was rejected by the gateway")
	errCompletionLost    = errs.New("session completed by a concurrent request")
)

const eventPaymentProcessed = "payment_processed"

type PixPayload struct {
	QRCodeText     string
	QRCodeImageURL string
	ExpiresAt      time.Time
}

type ProcessPaymentResult struct {
	BookingID          string
	StayStatus         payment.Status
	DepositStatus      deposit.Status
	StayChargeID       *string
	DepositChargeID    *string
	StayAmountCents    int64
	DepositAmountCents int64
	TotalAmountCents   int64
	Pix                *PixPayload
}

type PaymentCommands interface {
	ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest) (*ProcessPaymentResult, error)
}

type paymentCommandsImpl struct {
	sessionRepo SessionRepository
	txnRepo     TransactionRepository
	depositRepo DepositRepository
	logRepo     PaymentLogRepository
	gateway     PaymentGateway
	notifier    BookingNotifier
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewPaymentCommands(
	sessionRepo SessionRepository,
	txnRepo TransactionRepository,
	depositRepo DepositRepository,
	logRepo PaymentLogRepository,
	gateway PaymentGateway,
	notifier BookingNotifier,
	db *pgxpool.Pool,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		sessionRepo: sessionRepo,
		txnRepo:     txnRepo,
		depositRepo: depositRepo,
		logRepo:     logRepo,
		gateway:     gateway,
		notifier:    notifier,
		db:          db,
		clock:       clock,
	}
}

// ProcessPayment runs the checkout state machine: validate the session,
// settle the stay, optionally pre-authorize the deposit, persist both
// records, complete the session, then notify the booking system.
//
// The failure contract is asymmetric. A stay-payment failure aborts the
// whole request with nothing persisted, since no money moved. A deposit
// failure after the stay settled must NOT roll anything back: the hold is
// recorded as FAILED and the request still succeeds.
func (p *paymentCommandsImpl) ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest) (*ProcessPaymentResult, error) {
	session, err := p.validateSession(ctx, req)
	if err != nil {
		return nil, err
	}

	method := payment.Method(req.NormalizedMethod())
	if !method.IsValid() {
		return nil, payment.ErrInvalidMethod
	}
	if method == payment.MethodCreditCard && req.StayCard == nil {
		return nil, ErrMissingCardData
	}

	stayStatus, stayChargeID, pix, err := p.chargeStay(ctx, session, method, req)
	if err != nil {
		return nil, err
	}

	depositStatus, depositChargeID := p.authorizeDeposit(ctx, session, req.DepositCardEncrypted())

	now := p.clock.Now()
	txn, err := payment.NewTransaction(session.BookingID(), stayChargeID, session.StayAmount(), method, stayStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	hold := deposit.NewHold(session.BookingID(), depositChargeID, session.Snapshot().HouseName, session.DepositAmount(), depositStatus, now)

	if _, err := shared.RunInTx(ctx, p.db, func(tx db.DBTX) (struct{}, error) {
		// Completion is the compare-and-swap that resolves double submits:
		// the loser aborts here and its gateway calls were deduplicated by
		// the idempotency key, so no second charge exists.
		won, casErr := p.sessionRepo.CompleteIfPending(ctx, tx, session.ID(), now)
		if casErr != nil {
			return struct{}{}, casErr
		}
		if !won {
			return struct{}{}, errCompletionLost
		}
		if _, createErr := p.txnRepo.Create(ctx, tx, txn); createErr != nil {
			return struct{}{}, createErr
		}
		if _, createErr := p.depositRepo.Create(ctx, tx, hold); createErr != nil {
			return struct{}{}, createErr
		}
		return struct{}{}, p.logRepo.Append(ctx, tx, session.BookingID(), eventPaymentProcessed, map[string]any{
			"method":         string(method),
			"stay_status":    string(stayStatus),
			"deposit_status": string(depositStatus),
			"stay_charge":    stayChargeID,
			"deposit_charge": depositChargeID,
		})
	}); err != nil {
		if errors.Is(err, errCompletionLost) {
			return nil, checkout.ErrAlreadyUsed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	p.notify(ctx, session, stayStatus, depositStatus, stayChargeID, depositChargeID)

	return &ProcessPaymentResult{
		BookingID:          session.BookingID(),
		StayStatus:         stayStatus,
		DepositStatus:      depositStatus,
		StayChargeID:       stayChargeID,
		DepositChargeID:    depositChargeID,
		StayAmountCents:    session.StayAmount(),
		DepositAmountCents: session.DepositAmount(),
		TotalAmountCents:   session.TotalAmount(),
		Pix:                pix,
	}, nil
}

func (p *paymentCommandsImpl) validateSession(ctx context.Context, req reqdto.ProcessPaymentRequest) (*checkout.Session, error) {
	token, err := checkout.ParseToken(req.Token)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	session, err := p.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if session.BookingID() != req.BookingID {
		return nil, ErrBookingMismatch
	}

	now := p.clock.Now()
	if usableErr := session.CheckUsable(now); usableErr != nil {
		if errors.Is(usableErr, checkout.ErrExpired) {
			if _, txErr := shared.RunInTx(ctx, p.db, func(tx db.DBTX) (struct{}, error) {
				_, expireErr := p.sessionRepo.ExpireIfPending(ctx, tx, session.ID(), now)
				return struct{}{}, expireErr
			}); txErr != nil {
				return nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
			}
		}
		return nil, usableErr
	}
	return session, nil
}

func (p *paymentCommandsImpl) chargeStay(ctx context.Context, session *checkout.Session, method payment.Method, req reqdto.ProcessPaymentRequest) (payment.Status, *string, *PixPayload, error) {
	referenceID := session.BookingID() + RefSuffixStay
	idemKey := idempotencyKey(session.Token(), RefSuffixStay)
	snapshot := session.Snapshot()
	cust := pagbank.ResolveCustomer("stay", snapshot.GuestName, snapshot.GuestEmail, snapshot.GuestDocument, snapshot.GuestPhone, p.gateway.Sandbox())
	description := "Estadia - " + snapshot.HouseName

	if method == payment.MethodPix {
		order, err := p.gateway.CreatePixOrder(ctx, referenceID, cust, description, session.StayAmount(), idemKey)
		if err != nil {
			return "", nil, nil, errs.Mark(err, ErrStayPaymentFailed)
		}
		chargeID := order.ChargeID
		// PIX never settles synchronously; the webhook moves it to PAID.
		return payment.StatusWaitingPix, &chargeID, &PixPayload{
			QRCodeText:     order.QRCodeText,
			QRCodeImageURL: order.QRCodeImageURL,
			ExpiresAt:      order.ExpiresAt,
		}, nil
	}

	charge, err := p.gateway.CreateCardCharge(ctx, referenceID, cust, description, session.StayAmount(), req.StayCard.Encrypted, true, idemKey)
	if err != nil {
		return "", nil, nil, errs.Mark(err, ErrStayPaymentFailed)
	}
	status := payment.StatusPending
	if charge.Status == "PAID" {
		status = payment.StatusPaid
	}
	return status, &charge.ChargeID, nil, nil
}

// authorizeDeposit never returns an error: a failed pre-authorization
// degrades to a FAILED hold instead of failing the already-settled stay.
func (p *paymentCommandsImpl) authorizeDeposit(ctx context.Context, session *checkout.Session, encryptedCard *string) (deposit.Status, *string) {
	if encryptedCard == nil {
		return deposit.StatusSkipped, nil
	}

	referenceID := session.BookingID() + RefSuffixDeposit
	idemKey := idempotencyKey(session.Token(), RefSuffixDeposit)
	snapshot := session.Snapshot()
	cust := pagbank.ResolveCustomer("deposit", snapshot.GuestName, snapshot.GuestEmail, snapshot.GuestDocument, snapshot.GuestPhone, p.gateway.Sandbox())
	description := "Caução - " + snapshot.HouseName

	charge, err := p.gateway.CreateCardCharge(ctx, referenceID, cust, description, session.DepositAmount(), *encryptedCard, false, idemKey)
	if err != nil {
		slog.Warn("deposit pre-authorization failed",
			"booking_id", session.BookingID(),
			"error", err)
		return deposit.StatusFailed, nil
	}
	if charge.Status != "AUTHORIZED" {
		slog.Warn("deposit pre-authorization not authorized",
			"booking_id", session.BookingID(),
			"gateway_status", charge.Status)
		return deposit.StatusFailed, &charge.ChargeID
	}
	return deposit.StatusAuthorized, &charge.ChargeID
}

func (p *paymentCommandsImpl) notify(ctx context.Context, session *checkout.Session, stayStatus payment.Status, depositStatus deposit.Status, stayChargeID, depositChargeID *string) {
	err := p.notifier.PaymentConfirmed(ctx, PaymentNotification{
		BookingID:          session.BookingID(),
		StayChargeID:       stayChargeID,
		DepositChargeID:    depositChargeID,
		StayStatus:         string(stayStatus),
		DepositStatus:      string(depositStatus),
		TotalAmountCents:   session.TotalAmount(),
		DepositAmountCents: session.DepositAmount(),
	})
	if err != nil {
		slog.Warn("booking system notification failed",
			"booking_id", session.BookingID(),
			"error", err)
	}
}

// idempotencyKey derives a stable per-charge key from the session token so
// that a retried or concurrently duplicated gateway call deduplicates on
// the gateway side.
func idempotencyKey(token, suffix string) string {
	sum := sha256.Sum256([]byte(token + suffix))
	return hex.EncodeToString(sum[:])[:32]
}
