package queries

import (
	"context"

	"checkout-service/internal/infra"
	"checkout-service/internal/pkg/errs"
)

var ErrDepositAmountUnset = errs.New("deposit amount setting is not configured")

type SettingsQueries interface {
	GetCheckoutSettings(ctx context.Context) (*SettingsView, error)
}

type SettingsReadStore interface {
	GetDepositAmountCents(ctx context.Context) (int64, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
}

func NewSettingsQueries(readStore SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore}
}

// GetCheckoutSettings reads the configured deposit amount. A missing row is
// surfaced as an error rather than silently defaulted, so misconfiguration
// is caught before any pre-authorization is attempted.
func (q *settingsQueriesImpl) GetCheckoutSettings(ctx context.Context) (*SettingsView, error) {
	cents, err := q.readStore.GetDepositAmountCents(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDepositAmountUnset
		}
		return nil, err
	}
	return &SettingsView{DepositAmountCents: cents}, nil
}
