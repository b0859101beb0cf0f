package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App is the process configuration, loaded from the environment after
// godotenv has populated it from .env.
type App struct {
	// Network
	AppHost     string `envconfig:"APP_HOST" default:"0.0.0.0"`
	AppPort     string `envconfig:"APP_PORT" default:"5000"`
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`

	// Database
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBDatabase string `envconfig:"DB_DATABASE" required:"true"`
	DBUsername string `envconfig:"DB_USERNAME" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Auth
	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiry     time.Duration `envconfig:"JWT_EXPIRY" default:"8h"`
	EncryptionKey string        `envconfig:"ENCRYPTION_KEY"`

	// Payment gateway
	PaymentBaseURL    string `envconfig:"PAYMENT_BASE_URL" required:"true"`
	PaymentAPIKey     string `envconfig:"PAYMENT_API_KEY" required:"true"`
	PaymentSuccessURL string `envconfig:"PAYMENT_SUCCESS_URL" default:"http://localhost:5173/dashboard/payment-success"`
	PaymentCancelURL  string `envconfig:"PAYMENT_CANCEL_URL" default:"http://localhost:5173/dashboard/my-bookings"`

	// Cache
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	// Bootstrap admin, created on first start when no admin exists
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@styledecor.io"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"changeme123"`
}

// Load reads the configuration from the environment.
func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("failed to load configuration: %w", err)
	}
	return c, nil
}

// DSN builds the Postgres connection string.
func (c App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUsername, c.DBPassword, c.DBDatabase, c.DBSSLMode)
}
