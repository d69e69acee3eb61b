//go:build unit

package money_test

import (
	"testing"

	"checkout-service/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{0, "R$ 0,00"},
		{1, "R$ 0,01"},
		{99, "R$ 0,99"},
		{100, "R$ 1,00"},
		{150050, "R$ 1.500,50"},
		{100000, "R$ 1.000,00"},
		{123456789, "R$ 1.234.567,89"},
		{-250000, "R$ -2.500,00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, money.FormatBRL(tc.cents))
		})
	}
}

func TestParseBRL(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"R$ 1.000,00", 100000},
			{"1.000,00", 100000},
			{"1000,00", 100000},
			{"R$ 0,01", 1},
			{"R$ 1.234.567,89", 123456789},
			{" R$ 2.500,00 ", 250000},
			{"R$ -2.500,00", -250000},
			{"1000", 100000},
		}

		for _, tc := range testCases {
			cents, err := money.ParseBRL(tc.input)
			require.NoError(t, err, "input=%q", tc.input)
			assert.Equal(t, tc.expected, cents, "input=%q", tc.input)
		}
	})

	t.Run("rejected forms", func(t *testing.T) {
		for _, input := range []string{"", "R$", "R$ ,00", "1.000,0", "1.000,000", "abc,00"} {
			_, err := money.ParseBRL(input)
			assert.ErrorIs(t, err, money.ErrInvalidAmount, "input=%q", input)
		}
	})

	t.Run("round-trips through FormatBRL", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 99, 100, 100000, 123456789} {
			parsed, err := money.ParseBRL(money.FormatBRL(cents))
			require.NoError(t, err)
			assert.Equal(t, cents, parsed)
		}
	})
}
