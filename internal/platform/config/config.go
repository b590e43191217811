package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// ReconcileTolerance is the rounding tolerance for the balanced-ledger
	// check, in currency units.
	ReconcileTolerance decimal.Decimal

	// BlockedVisibleToOwner controls whether blocked transactions appear in
	// owner-facing history. Admin views always include them.
	BlockedVisibleToOwner bool

	// RateLimit is the ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RECONCILE_TOLERANCE", "0.01")
	viper.SetDefault("BLOCKED_VISIBLE_TO_OWNER", false)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.BlockedVisibleToOwner = viper.GetBool("BLOCKED_VISIBLE_TO_OWNER")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	tolerance, err := decimal.NewFromString(viper.GetString("RECONCILE_TOLERANCE"))
	if err != nil {
		tolerance = decimal.NewFromFloat(0.01)
		log.Printf("Warning: Invalid value for RECONCILE_TOLERANCE ('%s'). Defaulting to %s.\n", viper.GetString("RECONCILE_TOLERANCE"), tolerance.String())
	}
	cfg.ReconcileTolerance = tolerance

	return cfg, nil
}
