package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"checkout-service/internal/handler/api"
	"checkout-service/internal/handler/middleware"
	"checkout-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	checkoutHandler *api.CheckoutHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	adminHandler *api.AdminHandler,
	cronHandler *api.CronHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, paymentHandler, webhookHandler, adminHandler, cronHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	checkoutHandler *api.CheckoutHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	adminHandler *api.AdminHandler,
	cronHandler *api.CronHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/generate-checkout", Handler: checkoutHandler.GenerateCheckout},
				{Method: http.MethodGet, Path: "/settings", Handler: checkoutHandler.GetSettings},
			})
		}

		checkoutGroup := apiGroup.Group("/checkout")
		{
			addRoutes(checkoutGroup, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: checkoutHandler.ValidateCheckout},
				{Method: http.MethodPost, Path: "/process", Handler: paymentHandler.ProcessPayment},
			})
		}

		webhooks := apiGroup.Group("/webhooks")
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/pagbank", Handler: webhookHandler.Receive},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			adminAuthed := admin.Group("")
			adminAuthed.Use(authMiddleware.RequireAdmin())
			addRoutes(adminAuthed, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
				{Method: http.MethodGet, Path: "/deposits", Handler: adminHandler.ListDeposits},
				{Method: http.MethodPost, Path: "/deposit/release", Handler: adminHandler.ReleaseDeposit},
				{Method: http.MethodPost, Path: "/deposit/capture", Handler: adminHandler.CaptureDeposit},
				{Method: http.MethodPut, Path: "/settings/deposit", Handler: adminHandler.UpdateDepositSetting},
			})
		}

		cron := apiGroup.Group("/cron")
		cron.Use(authMiddleware.RequireCronKey())
		{
			addRoutes(cron, []route{
				{Method: http.MethodPost, Path: "/expire-checkouts", Handler: cronHandler.ExpireCheckouts},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
