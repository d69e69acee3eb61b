package commands

import (
	"context"
	"errors"
	"time"

	"checkout-service/internal/domain/checkout"
	reqdto "checkout-service/internal/handler/dto/request"
	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/queries"
	"checkout-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSessionNotFound         = errs.New("checkout session not found")
	ErrInvalidAmount           = errs.New("amount must be a positive number of cents")
	ErrDepositAmountUnset      = errs.New("deposit amount is not configured")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	eventCheckoutCreated = "checkout_created"
	eventCheckoutExpired = "checkout_expired"
)

type CreateCheckoutResult struct {
	Token              string
	URL                string
	StayAmountCents    int64
	DepositAmountCents int64
	TotalAmountCents   int64
	ExpiresAt          time.Time
	Reused             bool
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, req reqdto.GenerateCheckoutRequest) (*CreateCheckoutResult, error)
	ValidateSession(ctx context.Context, token string) (*queries.SessionView, error)
}

type checkoutCommandsImpl struct {
	sessionRepo  SessionRepository
	logRepo      PaymentLogRepository
	settingsRead queries.SettingsReadStore
	cfg          config.CheckoutConfig
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewCheckoutCommands(
	sessionRepo SessionRepository,
	logRepo PaymentLogRepository,
	settingsRead queries.SettingsReadStore,
	cfg config.CheckoutConfig,
	db *pgxpool.Pool,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		sessionRepo:  sessionRepo,
		logRepo:      logRepo,
		settingsRead: settingsRead,
		cfg:          cfg,
		db:           db,
		clock:        clock,
	}
}

// CreateCheckout opens a payment link for a booking. Creation is idempotent
// per booking: an unexpired PENDING session is returned as-is, so repeated
// link requests never fork a second live checkout.
func (c *checkoutCommandsImpl) CreateCheckout(ctx context.Context, req reqdto.GenerateCheckoutRequest) (*CreateCheckoutResult, error) {
	now := c.clock.Now()

	snapshot, err := req.ToSnapshot()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stayAmount := snapshot.TotalPrice
	if req.StayAmountCents != nil {
		stayAmount = *req.StayAmountCents
	}
	if stayAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	depositAmount, err := c.resolveDepositAmount(ctx, req.DepositAmountCents)
	if err != nil {
		return nil, err
	}

	existing, err := c.sessionRepo.FindPendingByBooking(ctx, req.BookingID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil && !existing.HasExpired(now) {
		return c.result(existing, true), nil
	}
	if existing != nil {
		// Stale PENDING session found before the sweeper got to it.
		if _, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
			_, expireErr := c.sessionRepo.ExpireIfPending(ctx, tx, existing.ID(), now)
			return struct{}{}, expireErr
		}); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	session, err := checkout.NewSession(req.BookingID, snapshot, stayAmount, depositAmount, now, c.cfg.SessionWindow)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		if _, createErr := c.sessionRepo.Create(ctx, tx, session); createErr != nil {
			return struct{}{}, createErr
		}
		logErr := c.logRepo.Append(ctx, tx, req.BookingID, eventCheckoutCreated, map[string]any{
			"token":          session.Token(),
			"stay_amount":    stayAmount,
			"deposit_amount": depositAmount,
			"expires_at":     session.ExpiresAt(),
		})
		return struct{}{}, logErr
	}); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.result(session, false), nil
}

// ValidateSession is the read path the checkout UI hits before rendering
// payment forms. It also performs the lazy expiry transition: a PENDING
// session past its deadline is flipped to EXPIRED here even if the sweeper
// has not run yet.
func (c *checkoutCommandsImpl) ValidateSession(ctx context.Context, token string) (*queries.SessionView, error) {
	normalized, err := checkout.ParseToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	session, err := c.sessionRepo.FindByToken(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if usableErr := session.CheckUsable(now); usableErr != nil {
		if errors.Is(usableErr, checkout.ErrExpired) {
			if _, txErr := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
				flipped, expireErr := c.sessionRepo.ExpireIfPending(ctx, tx, session.ID(), now)
				if expireErr != nil {
					return struct{}{}, expireErr
				}
				if flipped {
					return struct{}{}, c.logRepo.Append(ctx, tx, session.BookingID(), eventCheckoutExpired, map[string]any{
						"token":  session.Token(),
						"reason": "lazy_expiry",
					})
				}
				return struct{}{}, nil
			}); txErr != nil {
				return nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
			}
		}
		return nil, usableErr
	}

	return SessionView(session), nil
}

func (c *checkoutCommandsImpl) resolveDepositAmount(ctx context.Context, explicit *int64) (int64, error) {
	if explicit != nil {
		if *explicit <= 0 {
			return 0, ErrInvalidAmount
		}
		return *explicit, nil
	}
	cents, err := c.settingsRead.GetDepositAmountCents(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrDepositAmountUnset
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if cents <= 0 {
		return 0, ErrDepositAmountUnset
	}
	return cents, nil
}

func (c *checkoutCommandsImpl) result(session *checkout.Session, reused bool) *CreateCheckoutResult {
	return &CreateCheckoutResult{
		Token:              session.Token(),
		URL:                c.cfg.BaseURL + "/checkout/" + session.Token(),
		StayAmountCents:    session.StayAmount(),
		DepositAmountCents: session.DepositAmount(),
		TotalAmountCents:   session.TotalAmount(),
		ExpiresAt:          session.ExpiresAt(),
		Reused:             reused,
	}
}

// SessionView projects a session entity into its read model.
func SessionView(s *checkout.Session) *queries.SessionView {
	return &queries.SessionView{
		ID:                 s.ID(),
		BookingID:          s.BookingID(),
		Token:              s.Token(),
		Status:             string(s.Status()),
		StayAmountCents:    s.StayAmount(),
		DepositAmountCents: s.DepositAmount(),
		Snapshot:           s.Snapshot(),
		ExpiresAt:          s.ExpiresAt(),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}
}
