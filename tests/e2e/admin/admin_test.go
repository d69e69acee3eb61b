//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	reqdto "checkout-service/internal/handler/dto/request"
	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/pkg/cookie"
	"checkout-service/tests/common/dbtest"
	"checkout-service/tests/common/httptest"
	"checkout-service/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL          = "/api/admin/login"
	logoutURL         = "/api/admin/logout"
	depositsURL       = "/api/admin/deposits"
	releaseURL        = "/api/admin/deposit/release"
	captureURL        = "/api/admin/deposit/capture"
	depositSettingURL = "/api/admin/settings/deposit"
	publicSettingsURL = "/api/public/settings"

	adminPassword = "admin-test-password"
)

type adminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) login() string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
		Email:    s.Config.Admin.Email,
		Password: adminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func (s *adminSuite) TestLogin() {
	s.Run("valid credentials set the auth cookie", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    s.Config.Admin.Email,
			Password: adminPassword,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, c)
		require.NotEmpty(t, c.Value)
	})

	s.Run("wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    s.Config.Admin.Email,
			Password: "wrong-password-123",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown email is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "nobody@example.com",
			Password: adminPassword,
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *adminSuite) TestAuthenticationRequired() {
	s.Run("admin endpoints reject missing tokens", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, depositsURL},
			{http.MethodPost, releaseURL},
			{http.MethodPost, captureURL},
			{http.MethodPut, depositSettingURL},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, endpoint.path)
		}
	})

	s.Run("garbage token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, depositsURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *adminSuite) TestListDeposits() {
	s.Run("staged holds show up with display amounts", func() {
		t := s.T()
		token := s.login()

		dbtest.CreateTestDepositHold(t, s.DB, "BK-2026-2001", "CHAR_E2E_LIST_1", "AUTHORIZED", 100000)
		dbtest.CreateTestDepositHold(t, s.DB, "BK-2026-2002", "CHAR_E2E_LIST_2", "RELEASED", 100000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, depositsURL, nil, token)

		var items []resdto.DepositItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
		require.Len(t, items, 2)
		for _, item := range items {
			require.Equal(t, "R$ 1.000,00", item.AmountDisplay)
		}
	})
}

func (s *adminSuite) TestReleaseDeposit() {
	s.Run("authorized hold is cancelled at the gateway and released", func() {
		t := s.T()
		token := s.login()

		depositID := dbtest.CreateTestDepositHold(t, s.DB, "BK-2026-2010", "CHAR_E2E_REL_1", "AUTHORIZED", 100000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, releaseURL,
			reqdto.ReleaseDepositRequest{DepositID: depositID}, token)

		var res resdto.ReleaseDepositResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "RELEASED", res.Status)

		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM deposit_holds WHERE id = $1", depositID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "RELEASED", status)
	})

	s.Run("releasing a released hold is a conflict", func() {
		t := s.T()
		token := s.login()

		depositID := dbtest.CreateTestDepositHold(t, s.DB, "BK-2026-2011", "CHAR_E2E_REL_2", "RELEASED", 100000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, releaseURL,
			reqdto.ReleaseDepositRequest{DepositID: depositID}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("unknown deposit id is 404", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, releaseURL,
			reqdto.ReleaseDepositRequest{DepositID: uuid.New()}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *adminSuite) TestCaptureDeposit() {
	s.Run("full capture settles the whole hold", func() {
		t := s.T()
		token := s.login()

		depositID := dbtest.CreateTestDepositHold(t, s.DB, "BK-2026-2020", "CHAR_E2E_CAP_1", "AUTHORIZED", 100000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL,
			reqdto.CaptureDepositRequest{DepositID: depositID}, token)

		var res resdto.CaptureDepositResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "CAPTURED", res.Status)
		require.Equal(t, int64(100000), res.CapturedCents)
		require.False(t, res.IsPartialCapture)
	})

	s.Run("partial capture records the captured amount", func() {
		t := s.T()
		token := s.login()

		depositID := dbtest.CreateTestDepositHold(t, s.DB, "BK-2026-2021", "CHAR_E2E_CAP_2", "AUTHORIZED", 100000)

		amount := int64(30000)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL,
			reqdto.CaptureDepositRequest{DepositID: depositID, AmountCents: &amount}, token)

		var res resdto.CaptureDepositResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.IsPartialCapture)
		require.Equal(t, int64(30000), res.CapturedCents)
		require.Equal(t, int64(70000), res.RemainingCents)

		var capturedCents int64
		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status, captured_amount_cents FROM deposit_holds WHERE id = $1", depositID).
			Scan(&status, &capturedCents)
		require.NoError(t, err)
		require.Equal(t, "CAPTURED", status)
		require.Equal(t, int64(30000), capturedCents)

		// Partial capture is terminal; the remainder cannot be captured again.
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL,
			reqdto.CaptureDepositRequest{DepositID: depositID}, token)
		require.Equal(t, http.StatusConflict, second.Code, second.Body.String())
	})

	s.Run("capture above the authorized amount is rejected", func() {
		t := s.T()
		token := s.login()

		depositID := dbtest.CreateTestDepositHold(t, s.DB, "BK-2026-2022", "CHAR_E2E_CAP_3", "AUTHORIZED", 100000)

		amount := int64(150000)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL,
			reqdto.CaptureDepositRequest{DepositID: depositID, AmountCents: &amount}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *adminSuite) TestUpdateDepositSetting() {
	s.Run("new amount is stored and served publicly", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, depositSettingURL,
			reqdto.UpdateDepositSettingRequest{AmountCents: 150000}, token)

		var res resdto.SettingsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, int64(150000), res.DepositAmountCents)
		require.Equal(t, "R$ 1.500,00", res.DepositDisplay)

		pub := httptest.PerformRequest(t, s.Router, http.MethodGet, publicSettingsURL, nil, "")
		var pubRes resdto.SettingsResponse
		httptest.AssertSuccessResponse(t, pub, http.StatusOK, &pubRes)
		require.Equal(t, int64(150000), pubRes.DepositAmountCents)
	})
}
