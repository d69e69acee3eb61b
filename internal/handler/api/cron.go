package api

import (
	"net/http"

	resdto "checkout-service/internal/handler/dto/response"
	"checkout-service/internal/handler/httperr"
	"checkout-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	sweeperCommands commands.SweeperCommands
}

func NewCronHandler(sweeperCommands commands.SweeperCommands) *CronHandler {
	return &CronHandler{
		sweeperCommands: sweeperCommands,
	}
}

// @Summary Expire stale checkout sessions
// @Description Scheduled job endpoint guarded by X-Cron-Key
// @Tags cron
// @Produce json
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} map[string]string
// @Router /cron/expire-checkouts [post]
func (h *CronHandler) ExpireCheckouts(c *gin.Context) {
	result, err := h.sweeperCommands.SweepExpired(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "sweep failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{ExpiredCount: result.ExpiredCount})
}
