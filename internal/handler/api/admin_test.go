//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	domdeposit "checkout-service/internal/domain/deposit"
	"checkout-service/internal/handler/api"
	reqdto "checkout-service/internal/handler/dto/request"
	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/cookie"
	"checkout-service/internal/pkg/jwt"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"
	"checkout-service/tests/common/builder"
	"checkout-service/tests/common/httptest"
	"checkout-service/tests/common/testutil"
	commandsmock "checkout-service/tests/mock/commands"
	queriesmock "checkout-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAuth         *commandsmock.MockAuthCommands
	mockDeposits     *commandsmock.MockDepositCommands
	mockSettings     *commandsmock.MockSettingsCommands
	mockDepositList  *queriesmock.MockDepositQueries
	mockSettingsView *queriesmock.MockSettingsQueries
	handler          *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockDeposits = commandsmock.NewMockDepositCommands(s.mockCtrl)
	s.mockSettings = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockDepositList = queriesmock.NewMockDepositQueries(s.mockCtrl)
	s.mockSettingsView = queriesmock.NewMockSettingsQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, time.Hour)
	s.handler = api.NewAdminHandler(
		s.mockAuth, s.mockDeposits, s.mockSettings,
		s.mockDepositList, s.mockSettingsView,
		jwtService, cfg.Cookie,
	)

	s.router.POST("/admin/login", s.handler.Login)
	s.router.POST("/admin/logout", s.handler.Logout)
	s.router.GET("/admin/deposits", s.handler.ListDeposits)
	s.router.POST("/admin/deposit/release", s.handler.ReleaseDeposit)
	s.router.POST("/admin/deposit/capture", s.handler.CaptureDeposit)
	s.router.PUT("/admin/settings/deposit", s.handler.UpdateDepositSetting)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := reqdto.LoginRequest{Email: "admin@example.com", Password: "admin-test-password"}

	s.Run("success: returns the token and sets the cookie", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{AccessToken: "test-jwt", Email: reqBody.Email}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt", response.AccessToken)
		s.Equal(reqBody.Email, response.Email)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: invalid credentials is 401", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "inválidos")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
}

func (s *AdminHandlerTestSuite) TestListDeposits() {
	url := "/admin/deposits"

	s.Run("success: returns holds with display amounts", func() {
		item := builder.NewDepositBuilder().BuildListItem()
		s.mockDepositList.EXPECT().ListHolds(gomock.Any()).
			Return([]*queries.DepositListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.DepositItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(item.BookingID, response[0].BookingID)
		s.Equal("R$ 1.000,00", response[0].AmountDisplay)
		s.Equal("Maria Silva", response[0].GuestName)
	})

	s.Run("success: empty list stays an array", func() {
		s.mockDepositList.EXPECT().ListHolds(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("[]", rec.Body.String())
	})
}

func (s *AdminHandlerTestSuite) TestReleaseDeposit() {
	url := "/admin/deposit/release"
	depositID := uuid.New()
	reqBody := reqdto.ReleaseDepositRequest{DepositID: depositID}

	s.Run("success", func() {
		s.mockDeposits.EXPECT().ReleaseDeposit(gomock.Any(), depositID).
			Return(&commands.ReleaseDepositResult{DepositID: depositID, Status: domdeposit.StatusReleased}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReleaseDepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(depositID, response.DepositID)
		s.Equal("RELEASED", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name         string
			commandsErr  error
			expectCode   int
			expectInBody string
		}{
			{name: "not found", commandsErr: commands.ErrDepositNotFound, expectCode: http.StatusNotFound, expectInBody: "não encontrada"},
			{name: "wrong state", commandsErr: domdeposit.ErrWrongState, expectCode: http.StatusConflict, expectInBody: "não está autorizada"},
			{name: "gateway failure", commandsErr: commands.ErrGatewayActionFailed, expectCode: http.StatusInternalServerError, expectInBody: "gateway"},
			{name: "infrastructure failure", commandsErr: errors.New("db down"), expectCode: http.StatusInternalServerError, expectInBody: ""},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDeposits.EXPECT().ReleaseDeposit(gomock.Any(), depositID).
					Return(nil, tc.commandsErr).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestCaptureDeposit() {
	url := "/admin/deposit/capture"
	depositID := uuid.New()

	s.Run("success: full capture", func() {
		reqBody := reqdto.CaptureDepositRequest{DepositID: depositID}
		s.mockDeposits.EXPECT().CaptureDeposit(gomock.Any(), depositID, gomock.Nil()).
			Return(&commands.CaptureDepositResult{
				DepositID:     depositID,
				Status:        domdeposit.StatusCaptured,
				CapturedCents: 100000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CaptureDepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(100000), response.CapturedCents)
		s.False(response.IsPartialCapture)
	})

	s.Run("success: partial capture reports the remainder", func() {
		amount := int64(30000)
		reqBody := reqdto.CaptureDepositRequest{DepositID: depositID, AmountCents: &amount}
		s.mockDeposits.EXPECT().CaptureDeposit(gomock.Any(), depositID, gomock.Any()).
			Return(&commands.CaptureDepositResult{
				DepositID:        depositID,
				Status:           domdeposit.StatusCaptured,
				CapturedCents:    30000,
				RemainingCents:   70000,
				IsPartialCapture: true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CaptureDepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsPartialCapture)
		s.Equal(int64(70000), response.RemainingCents)
	})

	s.Run("error: amount over the authorized limit is 400", func() {
		amount := int64(999999)
		reqBody := reqdto.CaptureDepositRequest{DepositID: depositID, AmountCents: &amount}
		s.mockDeposits.EXPECT().CaptureDeposit(gomock.Any(), depositID, gomock.Any()).
			Return(nil, domdeposit.ErrAmountOverLimit).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "excede")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateDepositSetting() {
	url := "/admin/settings/deposit"
	reqBody := reqdto.UpdateDepositSettingRequest{AmountCents: 150000}

	s.Run("success: stores and returns the new value", func() {
		s.mockSettings.EXPECT().UpdateDepositAmount(gomock.Any(), int64(150000)).
			Return(nil).Times(1)
		s.mockSettingsView.EXPECT().GetCheckoutSettings(gomock.Any()).
			Return(&queries.SettingsView{DepositAmountCents: 150000}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(150000), response.DepositAmountCents)
		s.Equal("R$ 1.500,00", response.DepositDisplay)
	})

	s.Run("error: non-positive amount is 400", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("amount_cents", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
