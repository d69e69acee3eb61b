package commands

import (
	"context"
	"log/slog"
	"strings"

	"checkout-service/internal/domain/deposit"
	"checkout-service/internal/domain/payment"
	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/clock"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const eventWebhookReceived = "webhook_received"

type WebhookEvent struct {
	ChargeID    string
	ReferenceID string
	Status      string
}

type ReconcileResult struct {
	Matched   bool
	Kind      string
	NewStatus string
}

type WebhookCommands interface {
	Reconcile(ctx context.Context, event WebhookEvent) (*ReconcileResult, error)
}

type webhookCommandsImpl struct {
	txnRepo     TransactionRepository
	depositRepo DepositRepository
	logRepo     PaymentLogRepository
	notifier    BookingNotifier
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewWebhookCommands(
	txnRepo TransactionRepository,
	depositRepo DepositRepository,
	logRepo PaymentLogRepository,
	notifier BookingNotifier,
	db *pgxpool.Pool,
	clock clock.Clock,
) WebhookCommands {
	return &webhookCommandsImpl{
		txnRepo:     txnRepo,
		depositRepo: depositRepo,
		logRepo:     logRepo,
		notifier:    notifier,
		db:          db,
		clock:       clock,
	}
}

// Reconcile applies a gateway status push to the matching local record,
// routed by the reference id suffix. An unknown charge id is logged and
// acknowledged without error: requesting redelivery from the gateway would
// just loop forever on stale or test charges.
func (w *webhookCommandsImpl) Reconcile(ctx context.Context, event WebhookEvent) (*ReconcileResult, error) {
	if strings.HasSuffix(event.ReferenceID, RefSuffixDeposit) {
		return w.reconcileDeposit(ctx, event)
	}
	return w.reconcileStay(ctx, event)
}

func (w *webhookCommandsImpl) reconcileDeposit(ctx context.Context, event WebhookEvent) (*ReconcileResult, error) {
	hold, err := w.depositRepo.FindByChargeID(ctx, event.ChargeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("webhook for unknown deposit charge acknowledged",
				"charge_id", event.ChargeID,
				"status", event.Status)
			return &ReconcileResult{Matched: false, Kind: "deposit"}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newStatus := deposit.MapGatewayStatus(event.Status, hold.Status())
	if newStatus == hold.Status() {
		return &ReconcileResult{Matched: true, Kind: "deposit", NewStatus: string(newStatus)}, nil
	}

	now := w.clock.Now()
	if _, err := shared.RunInTx(ctx, w.db, func(tx db.DBTX) (struct{}, error) {
		// Terminal transitions race with admin release/capture; both start
		// from AUTHORIZED and only one writer wins.
		var from []deposit.Status
		if newStatus == deposit.StatusCaptured || newStatus == deposit.StatusFailed {
			from = []deposit.Status{deposit.StatusAuthorized}
		}
		applied, txErr := w.depositRepo.SetStatusFrom(ctx, tx, hold.ID(), newStatus, now, from...)
		if txErr != nil {
			return struct{}{}, txErr
		}
		if !applied {
			slog.Info("deposit webhook lost transition race",
				"deposit_id", hold.ID(),
				"target_status", string(newStatus))
			return struct{}{}, nil
		}
		return struct{}{}, w.logRepo.Append(ctx, tx, hold.BookingID(), eventWebhookReceived, map[string]any{
			"charge_id":      event.ChargeID,
			"reference_id":   event.ReferenceID,
			"gateway_status": event.Status,
			"new_status":     string(newStatus),
		})
	}); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ReconcileResult{Matched: true, Kind: "deposit", NewStatus: string(newStatus)}, nil
}

func (w *webhookCommandsImpl) reconcileStay(ctx context.Context, event WebhookEvent) (*ReconcileResult, error) {
	txn, err := w.txnRepo.FindByChargeID(ctx, event.ChargeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("webhook for unknown stay charge acknowledged",
				"charge_id", event.ChargeID,
				"status", event.Status)
			return &ReconcileResult{Matched: false, Kind: "stay"}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newStatus := payment.MapGatewayStatus(event.Status, txn.Status())
	if newStatus == txn.Status() {
		return &ReconcileResult{Matched: true, Kind: "stay", NewStatus: string(newStatus)}, nil
	}

	now := w.clock.Now()
	if _, err := shared.RunInTx(ctx, w.db, func(tx db.DBTX) (struct{}, error) {
		if txErr := w.txnRepo.SetStatus(ctx, tx, txn.ID(), newStatus, now); txErr != nil {
			return struct{}{}, txErr
		}
		return struct{}{}, w.logRepo.Append(ctx, tx, txn.BookingID(), eventWebhookReceived, map[string]any{
			"charge_id":      event.ChargeID,
			"reference_id":   event.ReferenceID,
			"gateway_status": event.Status,
			"new_status":     string(newStatus),
		})
	}); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if newStatus == payment.StatusPaid {
		w.notifyPaid(ctx, txn)
	}

	return &ReconcileResult{Matched: true, Kind: "stay", NewStatus: string(newStatus)}, nil
}

// notifyPaid mirrors the orchestrator's completion notification for PIX
// payments that settle asynchronously.
func (w *webhookCommandsImpl) notifyPaid(ctx context.Context, txn *payment.Transaction) {
	n := PaymentNotification{
		BookingID:        txn.BookingID(),
		StayChargeID:     txn.ChargeID(),
		StayStatus:       string(payment.StatusPaid),
		DepositStatus:    string(deposit.StatusSkipped),
		TotalAmountCents: txn.Amount(),
	}
	if hold, err := w.depositRepo.FindByBookingID(ctx, txn.BookingID()); err == nil {
		n.DepositChargeID = hold.ChargeID()
		n.DepositStatus = string(hold.Status())
		n.DepositAmountCents = hold.Amount()
		n.TotalAmountCents = txn.Amount() + hold.Amount()
	}

	if err := w.notifier.PaymentConfirmed(ctx, n); err != nil {
		slog.Warn("booking system notification failed",
			"booking_id", txn.BookingID(),
			"error", err)
	}
}
