//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	domdeposit "checkout-service/internal/domain/deposit"
	dompayment "checkout-service/internal/domain/payment"
	"checkout-service/internal/handler/api"
	reqdto "checkout-service/internal/handler/dto/request"
	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/infra/pagbank"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/commands"
	"checkout-service/tests/common/httptest"
	"checkout-service/tests/common/testutil"
	commandsmock "checkout-service/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/checkout/process", s.handler.ProcessPayment)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func pixRequest() reqdto.ProcessPaymentRequest {
	return reqdto.ProcessPaymentRequest{
		Token:      "CHK-0123456789ABCDEF",
		BookingID:  "BK-2026-0042",
		StayMethod: "PIX",
	}
}

func (s *PaymentHandlerTestSuite) TestProcessPayment() {
	url := "/checkout/process"
	reqBody := pixRequest()
	stayCharge := "ORDE_1"

	s.Run("success: pix payment returns the qr payload", func() {
		expires := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
		s.mockCommands.EXPECT().ProcessPayment(gomock.Any(), reqBody).
			Return(&commands.ProcessPaymentResult{
				BookingID:        reqBody.BookingID,
				StayStatus:       dompayment.StatusWaitingPix,
				DepositStatus:    domdeposit.StatusSkipped,
				StayChargeID:     &stayCharge,
				StayAmountCents:  250000,
				TotalAmountCents: 250000,
				Pix:              &commands.PixPayload{QRCodeText: "pix-code", ExpiresAt: expires},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ProcessPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("WAITING_PIX", response.StayStatus)
		s.Equal("SKIPPED", response.DepositStatus)
		s.Require().NotNil(response.Pix)
		s.Equal("pix-code", response.Pix.QRCode)
	})

	s.Run("success: card payment with deposit", func() {
		cardReq := pixRequest()
		cardReq.StayMethod = "CREDIT_CARD"
		cardReq.StayCard = &reqdto.CardData{Encrypted: "enc-stay"}
		cardReq.DepositCard = &reqdto.CardData{Encrypted: "enc-dep"}
		depCharge := "CHAR_DEP_1"

		s.mockCommands.EXPECT().ProcessPayment(gomock.Any(), cardReq).
			Return(&commands.ProcessPaymentResult{
				BookingID:          cardReq.BookingID,
				StayStatus:         dompayment.StatusPaid,
				DepositStatus:      domdeposit.StatusAuthorized,
				StayChargeID:       &stayCharge,
				DepositChargeID:    &depCharge,
				StayAmountCents:    250000,
				DepositAmountCents: 100000,
				TotalAmountCents:   350000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cardReq, "")

		var response resdto.ProcessPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("PAID", response.StayStatus)
		s.Equal("AUTHORIZED", response.DepositStatus)
		s.Equal(int64(100000), response.DepositAmount)
		s.Nil(response.Pix)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, field := range []string{"token", "booking_id", "stay_method"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
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
			{name: "invalid method", commandsErr: dompayment.ErrInvalidMethod, expectCode: http.StatusBadRequest, expectInBody: "Método"},
			{name: "missing card", commandsErr: commands.ErrMissingCardData, expectCode: http.StatusBadRequest, expectInBody: "cartão"},
			{name: "booking mismatch", commandsErr: commands.ErrBookingMismatch, expectCode: http.StatusBadRequest, expectInBody: "Reserva"},
			{name: "session not found", commandsErr: commands.ErrSessionNotFound, expectCode: http.StatusNotFound, expectInBody: "não encontrado"},
			{name: "stay payment failed", commandsErr: commands.ErrStayPaymentFailed, expectCode: http.StatusInternalServerError, expectInBody: "Erro ao processar"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ProcessPayment(gomock.Any(), reqBody).
					Return(nil, tc.commandsErr).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: stay failure carries gateway detail when available", func() {
		gwErr := &pagbank.GatewayError{StatusCode: 422, Body: `{"error":"card declined"}`}
		err := errs.Mark(errs.Wrap(gwErr, "gateway call rejected"), commands.ErrStayPaymentFailed)

		s.mockCommands.EXPECT().ProcessPayment(gomock.Any(), reqBody).
			Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "card declined")
		s.Contains(rec.Body.String(), "422")
	})
}
