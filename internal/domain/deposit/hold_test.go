//go:build unit

package deposit_test

import (
	"testing"
	"time"

	"checkout-service/internal/domain/deposit"
	"checkout-service/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewHold(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	chargeID := "CHAR_1"

	t.Run("authorized hold records the timestamp", func(t *testing.T) {
		h := deposit.NewHold("BK-1", &chargeID, "Casa da Praia", 100000, deposit.StatusAuthorized, now)
		assert.Equal(t, deposit.StatusAuthorized, h.Status())
		require.NotNil(t, h.AuthorizedAt())
		assert.Equal(t, now, *h.AuthorizedAt())
	})

	t.Run("skipped hold has no authorization timestamp", func(t *testing.T) {
		h := deposit.NewHold("BK-1", nil, "Casa da Praia", 100000, deposit.StatusSkipped, now)
		assert.Equal(t, deposit.StatusSkipped, h.Status())
		assert.Nil(t, h.AuthorizedAt())
		assert.Nil(t, h.ChargeID())
	})

	t.Run("failed hold has no authorization timestamp", func(t *testing.T) {
		h := deposit.NewHold("BK-1", nil, "Casa da Praia", 100000, deposit.StatusFailed, now)
		assert.Nil(t, h.AuthorizedAt())
	})
}

func TestHold_Release(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	t.Run("releases an authorized hold", func(t *testing.T) {
		h := builder.NewDepositBuilder().BuildDomain()
		require.NoError(t, h.Release(now))
		assert.Equal(t, deposit.StatusReleased, h.Status())
		require.NotNil(t, h.ReleasedAt())
		assert.Equal(t, now, *h.ReleasedAt())
	})

	t.Run("non-authorized states cannot be released", func(t *testing.T) {
		for _, status := range []deposit.Status{
			deposit.StatusSkipped,
			deposit.StatusCaptured,
			deposit.StatusReleased,
			deposit.StatusFailed,
			deposit.StatusExpired,
		} {
			h := builder.NewDepositBuilder().WithStatus(status).BuildDomain()
			assert.ErrorIs(t, h.Release(now), deposit.ErrWrongState, "status=%s", status)
		}
	})
}

func TestHold_ResolveCaptureAmount(t *testing.T) {
	testCases := []struct {
		name      string
		status    deposit.Status
		requested *int64
		expected  int64
		errIs     error
	}{
		{name: "nil request captures full amount", status: deposit.StatusAuthorized, requested: nil, expected: 100000},
		{name: "explicit full amount", status: deposit.StatusAuthorized, requested: int64Ptr(100000), expected: 100000},
		{name: "partial amount", status: deposit.StatusAuthorized, requested: int64Ptr(40000), expected: 40000},
		{name: "zero rejected", status: deposit.StatusAuthorized, requested: int64Ptr(0), errIs: deposit.ErrAmountNotPositive},
		{name: "negative rejected", status: deposit.StatusAuthorized, requested: int64Ptr(-100), errIs: deposit.ErrAmountNotPositive},
		{name: "over limit rejected", status: deposit.StatusAuthorized, requested: int64Ptr(100001), errIs: deposit.ErrAmountOverLimit},
		{name: "wrong state rejected", status: deposit.StatusReleased, requested: nil, errIs: deposit.ErrWrongState},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := builder.NewDepositBuilder().WithStatus(tc.status).BuildDomain()
			amount, err := h.ResolveCaptureAmount(tc.requested)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, amount)
		})
	}
}

func TestHold_Capture(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	t.Run("full capture", func(t *testing.T) {
		h := builder.NewDepositBuilder().BuildDomain()
		require.NoError(t, h.Capture(100000, now))

		assert.Equal(t, deposit.StatusCaptured, h.Status())
		require.NotNil(t, h.CapturedAmount())
		assert.Equal(t, int64(100000), *h.CapturedAmount())
		assert.False(t, h.IsPartialCapture())
		assert.Equal(t, int64(0), h.RemainingAmount())
	})

	t.Run("partial capture is terminal with remainder released", func(t *testing.T) {
		h := builder.NewDepositBuilder().BuildDomain()
		require.NoError(t, h.Capture(30000, now))

		assert.Equal(t, deposit.StatusCaptured, h.Status())
		assert.True(t, h.IsPartialCapture())
		assert.Equal(t, int64(70000), h.RemainingAmount())

		assert.ErrorIs(t, h.Capture(10000, now), deposit.ErrWrongState)
		assert.ErrorIs(t, h.Release(now), deposit.ErrWrongState)
	})

	t.Run("capture validates bounds", func(t *testing.T) {
		h := builder.NewDepositBuilder().BuildDomain()
		assert.ErrorIs(t, h.Capture(0, now), deposit.ErrAmountNotPositive)
		assert.ErrorIs(t, h.Capture(100001, now), deposit.ErrAmountOverLimit)
	})
}

func TestMapGatewayStatus(t *testing.T) {
	testCases := []struct {
		gateway  string
		current  deposit.Status
		expected deposit.Status
	}{
		{gateway: "AUTHORIZED", current: deposit.StatusFailed, expected: deposit.StatusAuthorized},
		{gateway: "PAID", current: deposit.StatusAuthorized, expected: deposit.StatusCaptured},
		{gateway: "DECLINED", current: deposit.StatusAuthorized, expected: deposit.StatusFailed},
		{gateway: "CANCELED", current: deposit.StatusAuthorized, expected: deposit.StatusFailed},
		{gateway: "IN_ANALYSIS", current: deposit.StatusAuthorized, expected: deposit.StatusAuthorized},
		{gateway: "", current: deposit.StatusSkipped, expected: deposit.StatusSkipped},
	}

	for _, tc := range testCases {
		t.Run(tc.gateway+"/"+string(tc.current), func(t *testing.T) {
			assert.Equal(t, tc.expected, deposit.MapGatewayStatus(tc.gateway, tc.current))
		})
	}
}
