package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Razorpay  GatewayConfig
	PayU      PayUGatewayConfig
	Pricing   PricingConfig
	Refund    RefundConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"60"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// GatewayConfig holds credentials for the Razorpay-style checkout gateway.
type GatewayConfig struct {
	BaseURL   string        `envconfig:"RAZORPAY_BASE_URL" default:"https://api.razorpay.com/v1"`
	KeyID     string        `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	KeySecret string        `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	Timeout   time.Duration `envconfig:"RAZORPAY_TIMEOUT" default:"25s"`
}

type PayUGatewayConfig struct {
	BaseURL   string        `envconfig:"PAYU_BASE_URL" default:"https://api.payu.in/v1"`
	KeyID     string        `envconfig:"PAYU_KEY_ID" required:"true"`
	KeySecret string        `envconfig:"PAYU_KEY_SECRET" required:"true"`
	Timeout   time.Duration `envconfig:"PAYU_TIMEOUT" default:"25s"`
}

// PricingConfig optionally overrides the built-in session price table with a
// JSON document of the form {"individual/video": 129900, ...}.
type PricingConfig struct {
	TableJSON string `envconfig:"PRICING_TABLE_JSON" default:""`
	Currency  string `envconfig:"PRICING_CURRENCY" default:"INR"`
}

type RefundConfig struct {
	FullRefundWindow time.Duration `envconfig:"REFUND_FULL_WINDOW" default:"24h"`
	// The practice operates in a single fixed timezone (IST). Session times
	// are stored as local wall-clock strings and resolved against this offset.
	TimeZoneOffsetMin int `envconfig:"REFUND_TIMEZONE_OFFSET_MIN" default:"330"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		RateLimit: RateLimitConfig{
			Requests: 1000,
			Window:   time.Minute,
		},
		Refund: RefundConfig{
			FullRefundWindow:  24 * time.Hour,
			TimeZoneOffsetMin: 330,
		},
	}
}
