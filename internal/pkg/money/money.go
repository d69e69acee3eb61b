// Package money handles BRL amounts. Everything internal is integer cents;
// reais only ever appear at display boundaries.
package money

import (
	"strconv"
	"strings"

	"checkout-service/internal/pkg/errs"
)

var ErrInvalidAmount = errs.New("invalid BRL amount")

// FormatBRL renders cents as "R$ 1.000,00" (pt-BR grouping).
func FormatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	reais := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(reais, 10)
	var b strings.Builder
	b.WriteString("R$ ")
	if neg {
		b.WriteString("-")
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// ParseBRL is the inverse of FormatBRL. It accepts "R$ 1.000,00", "1.000,00"
// and "1000,00"; the fractional part must have exactly two digits.
func ParseBRL(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole := s
	frac := "00"
	if idx := strings.LastIndexByte(s, ','); idx >= 0 {
		whole = s[:idx]
		frac = s[idx+1:]
	}
	if len(frac) != 2 {
		return 0, ErrInvalidAmount
	}
	whole = strings.ReplaceAll(whole, ".", "")
	if whole == "" {
		return 0, ErrInvalidAmount
	}

	reais, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	fracV, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := reais*100 + fracV
	if neg {
		cents = -cents
	}
	return cents, nil
}
