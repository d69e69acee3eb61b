//go:build unit

package payment_test

import (
	"testing"

	"checkout-service/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	chargeID := "CHAR_1"

	t.Run("pix transaction", func(t *testing.T) {
		txn, err := payment.NewTransaction("BK-1", &chargeID, 250000, payment.MethodPix, payment.StatusWaitingPix)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, txn.ID())
		assert.Equal(t, "BK-1", txn.BookingID())
		assert.Equal(t, int64(250000), txn.Amount())
		assert.Equal(t, payment.MethodPix, txn.Method())
		assert.Equal(t, payment.StatusWaitingPix, txn.Status())
	})

	t.Run("invalid method rejected", func(t *testing.T) {
		_, err := payment.NewTransaction("BK-1", nil, 250000, payment.Method("BOLETO"), payment.StatusPending)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}

func TestMethod_IsValid(t *testing.T) {
	assert.True(t, payment.MethodPix.IsValid())
	assert.True(t, payment.MethodCreditCard.IsValid())
	assert.False(t, payment.Method("pix").IsValid())
	assert.False(t, payment.Method("").IsValid())
}

func TestMapGatewayStatus(t *testing.T) {
	testCases := []struct {
		gateway  string
		current  payment.Status
		expected payment.Status
	}{
		{gateway: "PAID", current: payment.StatusPending, expected: payment.StatusPaid},
		{gateway: "AUTHORIZED", current: payment.StatusPending, expected: payment.StatusAuthorized},
		{gateway: "WAITING", current: payment.StatusPending, expected: payment.StatusWaitingPix},
		{gateway: "DECLINED", current: payment.StatusPending, expected: payment.StatusFailed},
		{gateway: "CANCELED", current: payment.StatusWaitingPix, expected: payment.StatusFailed},
		{gateway: "IN_ANALYSIS", current: payment.StatusWaitingPix, expected: payment.StatusWaitingPix},
		{gateway: "", current: payment.StatusPaid, expected: payment.StatusPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.gateway+"/"+string(tc.current), func(t *testing.T) {
			assert.Equal(t, tc.expected, payment.MapGatewayStatus(tc.gateway, tc.current))
		})
	}
}
