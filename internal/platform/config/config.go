package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	RateLimit       string `mapstructure:"RATE_LIMIT"` // ulule/limiter formatted rate, e.g. "100-M"
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`

	// Event stream; publishing is disabled when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisStream   string

	Accounts AccountDefaults
}

// AccountDefaults are the business parameters applied when a request leaves them out.
type AccountDefaults struct {
	MinimumBalance       decimal.Decimal
	OverdraftLimit       decimal.Decimal
	MaturityMonths       int
	FixedDepositMinimum  decimal.Decimal
	SavingsInterestRate  decimal.Decimal
	MaturityInterestRate decimal.Decimal
	HistoryPageSize      int
}

// DefaultAccountDefaults returns the built-in account parameters.
func DefaultAccountDefaults() AccountDefaults {
	return AccountDefaults{
		MinimumBalance:       decimal.NewFromInt(500),
		OverdraftLimit:       decimal.NewFromInt(1000),
		MaturityMonths:       6,
		FixedDepositMinimum:  decimal.NewFromInt(1000),
		SavingsInterestRate:  decimal.RequireFromString("0.04"),
		MaturityInterestRate: decimal.RequireFromString("0.07"),
		HistoryPageSize:      10,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	defaults := DefaultAccountDefaults()
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_STREAM", "account.events")
	v.SetDefault("DEFAULT_MINIMUM_BALANCE", defaults.MinimumBalance.String())
	v.SetDefault("DEFAULT_OVERDRAFT_LIMIT", defaults.OverdraftLimit.String())
	v.SetDefault("DEFAULT_MATURITY_MONTHS", defaults.MaturityMonths)
	v.SetDefault("FIXED_DEPOSIT_MINIMUM", defaults.FixedDepositMinimum.String())
	v.SetDefault("SAVINGS_INTEREST_RATE", defaults.SavingsInterestRate.String())
	v.SetDefault("MATURITY_INTEREST_RATE", defaults.MaturityInterestRate.String())
	v.SetDefault("HISTORY_PAGE_SIZE", defaults.HistoryPageSize)

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	cfg.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.RedisPassword = v.GetString("REDIS_PASSWORD")
	cfg.RedisDB = v.GetInt("REDIS_DB")
	cfg.RedisStream = v.GetString("REDIS_STREAM")
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Account events will not be published.")
	}

	cfg.Accounts = AccountDefaults{
		MinimumBalance:       nonNegativeDecimal(v, "DEFAULT_MINIMUM_BALANCE", defaults.MinimumBalance),
		OverdraftLimit:       nonNegativeDecimal(v, "DEFAULT_OVERDRAFT_LIMIT", defaults.OverdraftLimit),
		MaturityMonths:       positiveInt(v, "DEFAULT_MATURITY_MONTHS", defaults.MaturityMonths),
		FixedDepositMinimum:  nonNegativeDecimal(v, "FIXED_DEPOSIT_MINIMUM", defaults.FixedDepositMinimum),
		SavingsInterestRate:  nonNegativeDecimal(v, "SAVINGS_INTEREST_RATE", defaults.SavingsInterestRate),
		MaturityInterestRate: nonNegativeDecimal(v, "MATURITY_INTEREST_RATE", defaults.MaturityInterestRate),
		HistoryPageSize:      positiveInt(v, "HISTORY_PAGE_SIZE", defaults.HistoryPageSize),
	}

	return cfg, nil
}

func nonNegativeDecimal(v *viper.Viper, key string, fallback decimal.Decimal) decimal.Decimal {
	raw := v.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		return fallback
	}
	return d
}

func positiveInt(v *viper.Viper, key string, fallback int) int {
	n := v.GetInt(key)
	if n <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, v.GetString(key), fallback)
		return fallback
	}
	return n
}
