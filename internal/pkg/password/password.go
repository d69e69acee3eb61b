package password

import (
	"golang.org/x/crypto/bcrypt"

	"checkout-service/internal/pkg/errs"
)

var ErrMismatch = errs.New("password mismatch")

// Hash produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errs.New("empty password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(b), nil
}

// Verify checks plain against the stored hash. Returns ErrMismatch on
// a wrong password so callers can map it without string matching.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return errs.Mark(err, ErrMismatch)
	}
	return nil
}
