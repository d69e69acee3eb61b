//go:build unit

package pagbank_test

import (
	"strings"
	"testing"

	"checkout-service/internal/infra/pagbank"

	"github.com/stretchr/testify/assert"
)

func TestResolveCustomer(t *testing.T) {
	t.Run("sandbox always synthesizes a unique email", func(t *testing.T) {
		a := pagbank.ResolveCustomer("STAY", "Maria Silva", "maria@example.com", "123.456.789-09", "", true)
		b := pagbank.ResolveCustomer("STAY", "Maria Silva", "maria@example.com", "123.456.789-09", "", true)

		assert.True(t, strings.HasPrefix(a.Email, "stay-"))
		assert.True(t, strings.HasSuffix(a.Email, "@sandbox.test"))
		assert.NotEqual(t, a.Email, b.Email)
	})

	t.Run("deposit kind prefixes the sandbox email", func(t *testing.T) {
		c := pagbank.ResolveCustomer("DEPOSIT", "Maria Silva", "", "", "", true)
		assert.True(t, strings.HasPrefix(c.Email, "deposit-"))
	})

	t.Run("production keeps the guest email", func(t *testing.T) {
		c := pagbank.ResolveCustomer("STAY", "Maria Silva", "maria@example.com", "", "", false)
		assert.Equal(t, "maria@example.com", c.Email)
	})

	t.Run("production without email synthesizes a buyer address", func(t *testing.T) {
		c := pagbank.ResolveCustomer("STAY", "Maria Silva", "", "", "", false)
		assert.True(t, strings.HasPrefix(c.Email, "buyer-"))
		assert.True(t, strings.HasSuffix(c.Email, "@test.com"))
	})

	t.Run("empty name falls back to Guest", func(t *testing.T) {
		c := pagbank.ResolveCustomer("STAY", "", "", "", "", false)
		assert.Equal(t, "Guest", c.Name)
	})

	t.Run("document normalization", func(t *testing.T) {
		testCases := []struct {
			name     string
			document string
			expected string
		}{
			{name: "formatted CPF", document: "123.456.789-09", expected: "12345678909"},
			{name: "bare CPF", document: "98765432100", expected: "98765432100"},
			{name: "CNPJ", document: "12.345.678/0001-95", expected: "12345678000195"},
			{name: "empty falls back", document: "", expected: "12345678909"},
			{name: "wrong length falls back", document: "1234", expected: "12345678909"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				c := pagbank.ResolveCustomer("STAY", "x", "", tc.document, "", false)
				assert.Equal(t, tc.expected, c.TaxID)
			})
		}
	})

	t.Run("phone normalization", func(t *testing.T) {
		testCases := []struct {
			name         string
			phone        string
			expectedArea string
			expectedNum  string
		}{
			{name: "formatted mobile", phone: "(11) 98765-4321", expectedArea: "11", expectedNum: "987654321"},
			{name: "with country code", phone: "+55 21 98765-4321", expectedArea: "21", expectedNum: "987654321"},
			{name: "landline", phone: "1134567890", expectedArea: "11", expectedNum: "34567890"},
			{name: "empty falls back", phone: "", expectedArea: "11", expectedNum: "999999999"},
			{name: "too short falls back", phone: "12345", expectedArea: "11", expectedNum: "999999999"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				c := pagbank.ResolveCustomer("STAY", "x", "", "", tc.phone, false)
				assert.Equal(t, tc.expectedArea, c.PhoneArea)
				assert.Equal(t, tc.expectedNum, c.PhoneNum)
			})
		}
	})
}
