package commands

import (
	"context"

	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/pkg/money"
)

var ErrInvalidDepositAmount = errs.New("deposit amount must be a positive number of cents")

type SettingsCommands interface {
	UpdateDepositAmount(ctx context.Context, cents int64) error
}

type settingsCommandsImpl struct {
	settingsRepo SettingsRepository
}

func NewSettingsCommands(settingsRepo SettingsRepository) SettingsCommands {
	return &settingsCommandsImpl{settingsRepo: settingsRepo}
}

// UpdateDepositAmount stores the default deposit amount together with its
// display string, so the checkout UI never re-derives formatting.
func (s *settingsCommandsImpl) UpdateDepositAmount(ctx context.Context, cents int64) error {
	if cents <= 0 {
		return ErrInvalidDepositAmount
	}
	if err := s.settingsRepo.SetDepositAmount(ctx, cents, money.FormatBRL(cents)); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
