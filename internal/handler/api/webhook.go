package api

import (
	"log/slog"
	"net/http"

	reqdto "checkout-service/internal/handler/dto/request"
	"checkout-service/internal/handler/httperr"
	"checkout-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
}

func NewWebhookHandler(webhookCommands commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands: webhookCommands,
	}
}

// @Summary PagBank status webhook
// @Description Reconcile asynchronous charge status pushes
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/pagbank [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req reqdto.PagBankWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid webhook payload",
		})
		return
	}

	// Unknown charges are acknowledged; only infrastructure failures get a
	// non-2xx so the gateway redelivers.
	for _, charge := range req.Charges {
		result, err := h.webhookCommands.Reconcile(c.Request.Context(), commands.WebhookEvent{
			ChargeID:    charge.ID,
			ReferenceID: charge.ReferenceID,
			Status:      charge.Status,
		})
		if err != nil {
			slog.Error("webhook reconciliation failed",
				"charge_id", charge.ID,
				"error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "reconciliation failed", nil)
			return
		}
		if !result.Matched {
			slog.Info("webhook charge not matched", "charge_id", charge.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
