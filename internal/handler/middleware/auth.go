package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"checkout-service/internal/pkg/config"
	"checkout-service/internal/pkg/cookie"
	"checkout-service/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxAdminEmailKey = "admin_email"

type AuthMiddleware struct {
	jwtService *jwt.Service
	cronSecret string
}

func NewAuthMiddleware(jwtService *jwt.Service, cronCfg config.CronConfig) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cronSecret: cronCfg.Secret,
	}
}

// RequireAdmin accepts the admin JWT from the auth cookie or a bearer
// header.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}
		if claims.Role != jwt.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminEmailKey, claims.Email)
		c.Next()
	}
}

// RequireCronKey guards the scheduled-job endpoint with a shared secret.
func (m *AuthMiddleware) RequireCronKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Cron-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.cronSecret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid cron key",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}
