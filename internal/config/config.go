package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Pricing  PricingConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	// URL is a pgx connection string. Empty means the seeded in-memory catalog
	// is served and placed orders are not recorded.
	URL string
}

type PricingConfig struct {
	Currency currency.Unit
	Fees     domain.Fees
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	// a missing .env is fine, the environment may carry everything
	_ = godotenv.Load(envFiles...)

	unit, err := currency.ParseISO(getEnv("CURRENCY", "USD"))
	if err != nil {
		return nil, fmt.Errorf("CURRENCY is not valid: %w", err)
	}

	delivery, err := parseAmount("DELIVERY_FEE", "3.99")
	if err != nil {
		return nil, err
	}

	service, err := parseAmount("SERVICE_FEE", "1.99")
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Pricing: PricingConfig{
			Currency: unit,
			Fees:     domain.Fees{Delivery: delivery, Service: service},
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseAmount(key, defaultValue string) (decimal.Decimal, error) {
	raw := getEnv(key, defaultValue)

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s[%s] is not a decimal: %w", key, raw, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s[%s] is negative", key, raw)
	}

	return amount, nil
}
