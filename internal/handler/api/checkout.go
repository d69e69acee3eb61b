package api

import (
	"errors"
	"net/http"

	"checkout-service/internal/domain/checkout"
	reqdto "checkout-service/internal/handler/dto/request"
	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	settingsQueries  queries.SettingsQueries
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, settingsQueries queries.SettingsQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary Generate checkout link
// @Description Create (or return the existing) checkout session for a booking
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateCheckoutRequest true "Booking data"
// @Success 201 {object} resdto.GenerateCheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /public/generate-checkout [post]
func (h *CheckoutHandler) GenerateCheckout(c *gin.Context) {
	var req reqdto.GenerateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dados da reserva inválidos",
		})
		return
	}

	result, err := h.checkoutCommands.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Valor deve ser maior que zero",
			})
		case errors.Is(err, commands.ErrDepositAmountUnset):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Valor da caução não configurado",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Dados da reserva inválidos",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Erro ao gerar link de pagamento",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.Reused {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCreateCheckoutResult(result))
}

// @Summary Validate checkout token
// @Description Fetch session details for the payment page
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCheckoutRequest true "Checkout token"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /checkout/validate [post]
func (h *CheckoutHandler) ValidateCheckout(c *gin.Context) {
	var req reqdto.ValidateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Token não informado",
		})
		return
	}

	view, err := h.checkoutCommands.ValidateSession(c.Request.Context(), req.Token)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Public checkout settings
// @Description Current default deposit amount shown on the payment page
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Failure 500 {object} map[string]string
// @Router /public/settings [get]
func (h *CheckoutHandler) GetSettings(c *gin.Context) {
	view, err := h.settingsQueries.GetCheckoutSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrDepositAmountUnset) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Valor da caução não configurado",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao carregar configurações",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// respondSessionError maps session validation failures onto the status codes
// the checkout frontend expects: 404 unknown, 410 gone, 400 malformed.
func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Link de pagamento não encontrado",
		})
	case errors.Is(err, checkout.ErrExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Link de pagamento expirado",
		})
	case errors.Is(err, checkout.ErrAlreadyUsed):
		c.JSON(http.StatusGone, gin.H{
			"error": "Este link de pagamento já foi utilizado",
		})
	case errors.Is(err, checkout.ErrNotAvailable):
		c.JSON(http.StatusGone, gin.H{
			"error": "Link de pagamento não está mais disponível",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Link de pagamento inválido",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao validar link de pagamento",
		})
	}
}
