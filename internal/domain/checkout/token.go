package checkout

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"checkout-service/internal/pkg/errs"
)

const (
	tokenPrefix  = "CHK-"
	tokenHexLen  = 16
	tokenFullLen = len(tokenPrefix) + tokenHexLen
)

var ErrInvalidToken = errs.New("invalid checkout token")

// GenerateToken derives a public checkout token from the booking id, the
// current instant and random bytes. Collisions are possible only with
// negligible probability; the store's unique index is the backstop.
func GenerateToken(bookingID string, now time.Time) string {
	var nonce [16]byte
	_, _ = rand.Read(nonce[:])

	sum := sha256.Sum256(fmt.Appendf(nil, "%s-%d-%x", bookingID, now.UnixNano(), nonce))
	return tokenPrefix + strings.ToUpper(hex.EncodeToString(sum[:])[:tokenHexLen])
}

// ParseToken validates the CHK-<hex> shape of a caller-supplied token.
func ParseToken(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	if len(token) != tokenFullLen || !strings.HasPrefix(token, tokenPrefix) {
		return "", ErrInvalidToken
	}
	hexPart := strings.ToLower(token[len(tokenPrefix):])
	if _, err := hex.DecodeString(hexPart); err != nil {
		return "", ErrInvalidToken
	}
	return token, nil
}
