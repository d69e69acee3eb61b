package api

import (
	"errors"
	"net/http"

	"checkout-service/internal/domain/payment"
	reqdto "checkout-service/internal/handler/dto/request"
	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/infra/pagbank"
	"checkout-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Process checkout payment
// @Description Charge the stay and optionally pre-authorize the deposit
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ProcessPaymentRequest true "Payment data"
// @Success 200 {object} resdto.ProcessPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /checkout/process [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req reqdto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dados de pagamento inválidos",
		})
		return
	}

	result, err := h.paymentCommands.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidMethod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Método de pagamento inválido",
			})
		case errors.Is(err, commands.ErrMissingCardData):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Dados do cartão não informados",
			})
		case errors.Is(err, commands.ErrBookingMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reserva não corresponde ao link de pagamento",
			})
		case errors.Is(err, commands.ErrStayPaymentFailed):
			body := gin.H{"error": "Erro ao processar pagamento"}
			var gwErr *pagbank.GatewayError
			if errors.As(err, &gwErr) {
				body["detail"] = gin.H{
					"gatewayStatus": gwErr.StatusCode,
					"gatewayBody":   gwErr.Body,
				}
			}
			c.JSON(http.StatusInternalServerError, body)
		default:
			respondSessionError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProcessPaymentResult(result))
}
