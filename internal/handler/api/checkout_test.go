//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"checkout-service/internal/domain/checkout"
	"checkout-service/internal/handler/api"
	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"
	"checkout-service/tests/common/builder"
	"checkout-service/tests/common/httptest"
	"checkout-service/tests/common/testutil"
	commandsmock "checkout-service/tests/mock/commands"
	queriesmock "checkout-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockSettings *queriesmock.MockSettingsQueries
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockSettings = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockSettings)

	s.router.POST("/public/generate-checkout", s.handler.GenerateCheckout)
	s.router.GET("/public/settings", s.handler.GetSettings)
	s.router.POST("/checkout/validate", s.handler.ValidateCheckout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestGenerateCheckout() {
	url := "/public/generate-checkout"
	b := builder.NewCheckoutBuilder()
	reqBody := b.BuildGenerateRequestDTO()
	token := "CHK-0123456789ABCDEF"

	s.Run("success: returns 201 Created for a new session", func() {
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), reqBody).
			Return(b.BuildCreateResult(token), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.GenerateCheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(token, response.Token)
		s.Equal(int64(250000), response.TotalAmountCents)
		s.Equal("R$ 2.500,00", response.TotalDisplay)
		s.False(response.Reused)
	})

	s.Run("success: returns 200 OK when the pending session is reused", func() {
		result := b.BuildCreateResult(token)
		result.Reused = true
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), reqBody).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.GenerateCheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Reused)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing booking_id", mutate: testutil.Field("booking_id", nil)},
			{name: "missing booking", mutate: testutil.Field("booking", nil)},
			{name: "empty booking_id", mutate: testutil.Field("booking_id", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name         string
			commandsErr  error
			expectCode   int
			expectInBody string
		}{
			{name: "invalid amount", commandsErr: commands.ErrInvalidAmount, expectCode: http.StatusBadRequest, expectInBody: "maior que zero"},
			{name: "deposit amount unset", commandsErr: commands.ErrDepositAmountUnset, expectCode: http.StatusBadRequest, expectInBody: "caução não configurado"},
			{name: "domain validation", commandsErr: commands.ErrDomainValidation, expectCode: http.StatusBadRequest, expectInBody: "inválidos"},
			{name: "infrastructure failure", commandsErr: errors.New("db down"), expectCode: http.StatusInternalServerError, expectInBody: "Erro ao gerar"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), reqBody).
					Return(nil, tc.commandsErr).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestValidateCheckout() {
	url := "/checkout/validate"
	b := builder.NewCheckoutBuilder()
	token := "CHK-0123456789ABCDEF"
	reqBody := map[string]any{"token": token}

	s.Run("success: returns the session view", func() {
		s.mockCommands.EXPECT().ValidateSession(gomock.Any(), token).
			Return(b.BuildSessionView(token), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.BookingID, response.BookingID)
		s.Equal(b.GuestName, response.Booking.GuestName)
		s.Equal("R$ 2.500,00", response.StayDisplay)
	})

	s.Run("error: missing token is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token")
	})

	s.Run("error: maps session errors to proper statuses", func() {
		testCases := []struct {
			name         string
			commandsErr  error
			expectCode   int
			expectInBody string
		}{
			{name: "not found", commandsErr: commands.ErrSessionNotFound, expectCode: http.StatusNotFound, expectInBody: "não encontrado"},
			{name: "expired", commandsErr: checkout.ErrExpired, expectCode: http.StatusGone, expectInBody: "expirado"},
			{name: "already used", commandsErr: checkout.ErrAlreadyUsed, expectCode: http.StatusGone, expectInBody: "já foi utilizado"},
			{name: "not available", commandsErr: checkout.ErrNotAvailable, expectCode: http.StatusGone, expectInBody: "não está mais disponível"},
			{name: "malformed token", commandsErr: commands.ErrDomainValidation, expectCode: http.StatusBadRequest, expectInBody: "inválido"},
			{name: "infrastructure failure", commandsErr: errors.New("db down"), expectCode: http.StatusInternalServerError, expectInBody: ""},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ValidateSession(gomock.Any(), token).
					Return(nil, tc.commandsErr).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestGetSettings() {
	url := "/public/settings"

	s.Run("success: returns the configured deposit amount", func() {
		s.mockSettings.EXPECT().GetCheckoutSettings(gomock.Any()).
			Return(&queries.SettingsView{DepositAmountCents: 100000}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(100000), response.DepositAmountCents)
		s.Equal("R$ 1.000,00", response.DepositDisplay)
	})

	s.Run("error: unset deposit amount is 404", func() {
		s.mockSettings.EXPECT().GetCheckoutSettings(gomock.Any()).
			Return(nil, queries.ErrDepositAmountUnset).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "não configurado")
	})
}
