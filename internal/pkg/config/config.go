package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"checkout-service/internal/pkg/password"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   gateway credentials, admin credentials)
// - default: Values common across all environments (timezone, timeouts,
//   checkout window, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Admin    AdminConfig
	Gateway  GatewayConfig
	Checkout CheckoutConfig
	Notify   NotifyConfig
	Cron     CronConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Cron-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"lax"`
}

// AdminConfig is the single administrative credential used by the deposit
// management surface. The password is stored as a bcrypt hash.
type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type GatewayConfig struct {
	Token      string        `envconfig:"PAGBANK_API_TOKEN" required:"true"`
	Sandbox    bool          `envconfig:"PAGBANK_SANDBOX" default:"false"`
	BaseURL    string        `envconfig:"PAGBANK_BASE_URL" default:""`
	Timeout    time.Duration `envconfig:"PAGBANK_TIMEOUT" default:"30s"`
	WebhookURL string        `envconfig:"PAGBANK_WEBHOOK_URL" default:""`
	PixExpiry  time.Duration `envconfig:"PAGBANK_PIX_EXPIRY" default:"30m"`
}

type CheckoutConfig struct {
	BaseURL       string        `envconfig:"CHECKOUT_BASE_URL" required:"true"`
	SessionWindow time.Duration `envconfig:"CHECKOUT_SESSION_WINDOW" default:"12h"`
}

type NotifyConfig struct {
	MainAppURL string        `envconfig:"MAIN_APP_URL" default:""`
	Timeout    time.Duration `envconfig:"MAIN_APP_TIMEOUT" default:"10s"`
}

type CronConfig struct {
	Secret string `envconfig:"CRON_SECRET" required:"true"`
}

const (
	sandboxGatewayURL    = "https://sandbox.api.pagseguro.com"
	productionGatewayURL = "https://api.pagseguro.com"
)

// ResolveBaseURL returns the gateway endpoint for the configured environment.
// An explicit PAGBANK_BASE_URL wins, which the tests use to point the client
// at a local server.
func (g *GatewayConfig) ResolveBaseURL() string {
	if g.BaseURL != "" {
		return g.BaseURL
	}
	if g.Sandbox {
		return sandboxGatewayURL
	}
	return productionGatewayURL
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "lax",
		},
		Admin: AdminConfig{
			Email:        "admin@example.com",
			PasswordHash: mustHash("admin-test-password"),
		},
		Gateway: GatewayConfig{
			Token:     "test-token",
			Sandbox:   true,
			Timeout:   5 * time.Second,
			PixExpiry: 30 * time.Minute,
		},
		Checkout: CheckoutConfig{
			BaseURL:       "http://localhost:8889",
			SessionWindow: 12 * time.Hour,
		},
		Cron: CronConfig{
			Secret: "test-cron-secret",
		},
	}
}

func mustHash(plain string) string {
	h, err := password.Hash(plain)
	if err != nil {
		panic(err)
	}
	return h
}
