package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Owner login
	OwnerEmail        string
	OwnerPasswordHash string // bcrypt

	// Shop details shown on receipts and reminders
	ShopName  string
	ShopPhone string

	// Checkout charges
	ServiceCharge     decimal.Decimal
	TaxRate           decimal.Decimal
	LowStockThreshold int

	LoginRateLimit       string // ulule formatted rate, e.g. "5-M"
	IdempotencyCacheSize int
	CORSAllowedOrigins   []string
	PosthogAPIKey        string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "shop-pos-app")
	viper.SetDefault("OWNER_EMAIL", "")
	viper.SetDefault("OWNER_PASSWORD_HASH", "")
	viper.SetDefault("SHOP_NAME", "Shop Pro")
	viper.SetDefault("SHOP_PHONE", "")
	viper.SetDefault("SERVICE_CHARGE", "20")
	viper.SetDefault("TAX_RATE", "0.05")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("IDEMPOTENCY_CACHE_SIZE", 10000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "12h"
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.OwnerEmail = strings.ToLower(strings.TrimSpace(viper.GetString("OWNER_EMAIL")))
	cfg.OwnerPasswordHash = viper.GetString("OWNER_PASSWORD_HASH")
	if cfg.OwnerEmail == "" || cfg.OwnerPasswordHash == "" {
		log.Println("Warning: OWNER_EMAIL or OWNER_PASSWORD_HASH not set. Login will be refused.")
	}

	cfg.ShopName = viper.GetString("SHOP_NAME")
	cfg.ShopPhone = viper.GetString("SHOP_PHONE")

	cfg.ServiceCharge = decimalSetting("SERVICE_CHARGE", "20")
	cfg.TaxRate = decimalSetting("TAX_RATE", "0.05")

	cfg.LowStockThreshold = viper.GetInt("LOW_STOCK_THRESHOLD")
	if cfg.LowStockThreshold < 0 {
		log.Printf("Warning: LOW_STOCK_THRESHOLD cannot be negative. Defaulting to 5.\n")
		cfg.LowStockThreshold = 5
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.IdempotencyCacheSize = viper.GetInt("IDEMPOTENCY_CACHE_SIZE")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

func decimalSetting(key, fallback string) decimal.Decimal {
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return decimal.RequireFromString(fallback)
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
