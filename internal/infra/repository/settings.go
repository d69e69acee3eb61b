package repository

import (
	"context"
	"encoding/json"

	"checkout-service/internal/infra"
	"checkout-service/internal/infra/db"
	"checkout-service/internal/pkg/pgconv"
)

const depositAmountKey = "deposit_amount"

type depositAmountValue struct {
	AmountCents int64  `json:"amount_cents"`
	Display     string `json:"display"`
}

// SettingsRepository stores checkout settings as key/JSON rows, serving
// both the write port and the strict read store: a missing or malformed
// deposit amount is an error, never a silent default.
type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(pool db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: pool}
}

func (r *SettingsRepository) SetDepositAmount(ctx context.Context, cents int64, display string) error {
	value, err := json.Marshal(depositAmountValue{AmountCents: cents, Display: display})
	if err != nil {
		return infra.WrapRepoErr("failed to encode setting value", err)
	}
	if _, err := r.db.Exec(ctx, `
INSERT INTO system_settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		depositAmountKey, value); err != nil {
		return infra.WrapRepoErr("failed to store deposit amount setting", err)
	}
	return nil
}

func (r *SettingsRepository) GetDepositAmountCents(ctx context.Context) (int64, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `
SELECT value FROM system_settings WHERE key = $1`, depositAmountKey).Scan(&raw)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("deposit amount setting not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read deposit amount setting", err)
	}

	var value depositAmountValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, infra.WrapRepoErr("malformed deposit amount setting", err)
	}
	if value.AmountCents <= 0 {
		return 0, infra.WrapRepoErr("deposit amount setting is not positive", nil, infra.KindConflict)
	}
	return value.AmountCents, nil
}
