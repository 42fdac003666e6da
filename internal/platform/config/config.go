package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	RateLimitRPM    int64  `mapstructure:"RATE_LIMIT_RPM"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT_RPM", 120)

	// Environment variables override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.RateLimitRPM = viper.GetInt64("RATE_LIMIT_RPM")
	if cfg.RateLimitRPM <= 0 {
		cfg.RateLimitRPM = 120
		log.Printf("Warning: Invalid value for RATE_LIMIT_RPM. Defaulting to %d.\n", cfg.RateLimitRPM)
	}

	return cfg, nil
}
