package request

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type ReleaseDepositRequest struct {
	DepositID uuid.UUID `json:"deposit_id" binding:"required"`
}

type CaptureDepositRequest struct {
	DepositID   uuid.UUID `json:"deposit_id" binding:"required"`
	AmountCents *int64    `json:"amount_cents,omitempty"`
}

type UpdateDepositSettingRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,min=1"`
}
