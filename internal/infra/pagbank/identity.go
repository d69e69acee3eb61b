package pagbank

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

const (
	fallbackTaxID     = "12345678909"
	fallbackPhoneArea = "11"
	fallbackPhoneNum  = "999999999"
)

var nonDigits = regexp.MustCompile(`\D`)

// ResolveCustomer builds the identity sent to the gateway for a charge.
// Sandbox accounts reject repeated buyer emails across orders, so each call
// gets a unique synthetic address there. In production the guest email is
// used as-is, falling back to a synthetic one only when the booking carries
// none. Document and phone fall back to gateway-accepted test values when
// absent or malformed.
func ResolveCustomer(kind, name, email, document, phoneRaw string, sandbox bool) Customer {
	c := Customer{
		Name:      name,
		TaxID:     normalizeTaxID(document),
		PhoneArea: fallbackPhoneArea,
		PhoneNum:  fallbackPhoneNum,
	}
	if c.Name == "" {
		c.Name = "Guest"
	}

	if sandbox {
		c.Email = strings.ToLower(kind) + "-" + randomHex(4) + "@sandbox.test"
	} else if email != "" {
		c.Email = email
	} else {
		c.Email = "buyer-" + randomHex(4) + "@test.com"
	}

	if area, num, ok := splitPhone(phoneRaw); ok {
		c.PhoneArea = area
		c.PhoneNum = num
	}
	return c
}

func normalizeTaxID(document string) string {
	digits := nonDigits.ReplaceAllString(document, "")
	if len(digits) == 11 || len(digits) == 14 {
		return digits
	}
	return fallbackTaxID
}

// splitPhone accepts Brazilian numbers with optional country code and
// returns the two-digit area code and the local number.
func splitPhone(raw string) (area, num string, ok bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if strings.HasPrefix(digits, "55") && len(digits) >= 12 {
		digits = digits[2:]
	}
	if len(digits) < 10 || len(digits) > 11 {
		return "", "", false
	}
	return digits[:2], digits[2:], true
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return strings.Repeat("0", n*2)
	}
	return hex.EncodeToString(buf)
}
