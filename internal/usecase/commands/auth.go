package commands

import (
	"context"

	reqdto "checkout-service/internal/handler/dto/request"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/pkg/jwt"
	"checkout-service/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
	Email       string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

// The service has a single operator account configured through the
// environment; there is no user table.
type authCommandsImpl struct {
	cfg        config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(cfg config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	if req.Email != a.cfg.Email {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(a.cfg.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(req.Email, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{AccessToken: token, Email: req.Email}, nil
}
