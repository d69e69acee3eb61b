package api

import (
	"errors"
	"net/http"

	"checkout-service/internal/domain/deposit"
	reqdto "checkout-service/internal/handler/dto/request"
	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/infra/pagbank"
	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/cookie"
	"checkout-service/internal/pkg/jwt"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authCommands     commands.AuthCommands
	depositCommands  commands.DepositCommands
	settingsCommands commands.SettingsCommands
	depositQueries   queries.DepositQueries
	settingsQueries  queries.SettingsQueries
	jwtService       *jwt.Service
	cookieCfg        config.CookieConfig
}

func NewAdminHandler(
	authCommands commands.AuthCommands,
	depositCommands commands.DepositCommands,
	settingsCommands commands.SettingsCommands,
	depositQueries queries.DepositQueries,
	settingsQueries queries.SettingsQueries,
	jwtService *jwt.Service,
	cookieCfg config.CookieConfig,
) *AdminHandler {
	return &AdminHandler{
		authCommands:     authCommands,
		depositCommands:  depositCommands,
		settingsCommands: settingsCommands,
		depositQueries:   depositQueries,
		settingsQueries:  settingsQueries,
		jwtService:       jwtService,
		cookieCfg:        cookieCfg,
	}
}

// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de requisição inválido",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "E-mail ou senha inválidos",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro interno",
		})
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Email:       result.Email,
	})
}

// @Summary Admin logout
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary List deposit holds
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.DepositItemResponse
// @Failure 401 {object} map[string]string
// @Router /admin/deposits [get]
func (h *AdminHandler) ListDeposits(c *gin.Context) {
	items, err := h.depositQueries.ListHolds(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao listar cauções",
		})
		return
	}

	resp := make([]*resdto.DepositItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, resdto.FromDepositListItem(item))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Release a deposit hold
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReleaseDepositRequest true "Deposit id"
// @Success 200 {object} resdto.ReleaseDepositResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/deposit/release [post]
func (h *AdminHandler) ReleaseDeposit(c *gin.Context) {
	var req reqdto.ReleaseDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identificador da caução não informado",
		})
		return
	}

	result, err := h.depositCommands.ReleaseDeposit(c.Request.Context(), req.DepositID)
	if err != nil {
		respondDepositError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseDepositResponse{
		DepositID: result.DepositID,
		Status:    string(result.Status),
	})
}

// @Summary Capture a deposit hold
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CaptureDepositRequest true "Deposit id and optional amount"
// @Success 200 {object} resdto.CaptureDepositResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/deposit/capture [post]
func (h *AdminHandler) CaptureDeposit(c *gin.Context) {
	var req reqdto.CaptureDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identificador da caução não informado",
		})
		return
	}

	result, err := h.depositCommands.CaptureDeposit(c.Request.Context(), req.DepositID, req.AmountCents)
	if err != nil {
		respondDepositError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCaptureResult(result))
}

// @Summary Update default deposit amount
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateDepositSettingRequest true "Amount in cents"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Router /admin/settings/deposit [put]
func (h *AdminHandler) UpdateDepositSetting(c *gin.Context) {
	var req reqdto.UpdateDepositSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Valor inválido",
		})
		return
	}

	if err := h.settingsCommands.UpdateDepositAmount(c.Request.Context(), req.AmountCents); err != nil {
		if errors.Is(err, commands.ErrInvalidDepositAmount) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Valor deve ser maior que zero",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao salvar configuração",
		})
		return
	}

	view, err := h.settingsQueries.GetCheckoutSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao carregar configurações",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

func respondDepositError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDepositNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Caução não encontrada",
		})
	case errors.Is(err, deposit.ErrWrongState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Caução não está autorizada",
		})
	case errors.Is(err, deposit.ErrAmountNotPositive):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Valor deve ser maior que zero",
		})
	case errors.Is(err, deposit.ErrAmountOverLimit):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Valor excede o valor autorizado",
		})
	case errors.Is(err, commands.ErrGatewayActionFailed):
		body := gin.H{"error": "Erro ao comunicar com o gateway de pagamento"}
		var gwErr *pagbank.GatewayError
		if errors.As(err, &gwErr) {
			body["detail"] = gin.H{
				"gatewayStatus": gwErr.StatusCode,
				"gatewayBody":   gwErr.Body,
			}
		}
		c.JSON(http.StatusInternalServerError, body)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro interno",
		})
	}
}
