package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	AllowedOrigin string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// SMTP
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	SalesEmail    string

	// Stripe
	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	// Demo
	TypingDelay    time.Duration
	SessionTTL     time.Duration
	DemoRateLimit  int
	DemoRateWindow time.Duration
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    getEnvDefault("PORT", "3000"),
		AllowedOrigin: getEnvDefault("ALLOWED_ORIGIN", "http://localhost:5173"),

		DBHost:     getEnvDefault("DB_HOST", "localhost"),
		DBPort:     getEnvDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvDefault("DB_NAME", "iabot"),
		DBSSLMode:  getEnvDefault("DB_SSLMODE", "disable"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvDefault("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnvDefault("SMTP_FROM_NAME", "IABOT Soluciones"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
		SalesEmail:    os.Getenv("SALES_EMAIL"),

		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccessURL: getEnvDefault("CHECKOUT_SUCCESS_URL", "http://localhost:5173/?checkout=success"),
		CheckoutCancelURL:  getEnvDefault("CHECKOUT_CANCEL_URL", "http://localhost:5173/?checkout=cancel"),

		TypingDelay:    getEnvDurationDefault("DEMO_TYPING_DELAY", 500*time.Millisecond),
		SessionTTL:     getEnvDurationDefault("DEMO_SESSION_TTL", 30*time.Minute),
		DemoRateLimit:  getEnvIntDefault("DEMO_RATE_LIMIT", 30),
		DemoRateWindow: getEnvDurationDefault("DEMO_RATE_WINDOW", time.Minute),
	}

	if cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER es requerido")
	}

	return cfg, nil
}

func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDurationDefault(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
