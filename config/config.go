package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	AllowedOrigins []string
	SeedDemoData   bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:  env,
		Port:         os.Getenv("PORT"),
		SeedDemoData: true,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// The store starts empty on every boot, so seeding defaults to on;
	// set SEED_DEMO_DATA=false to start without the demo user and sample events.
	if s := os.Getenv("SEED_DEMO_DATA"); s != "" {
		cfg.SeedDemoData = s != "false" && s != "0"
	}

	return cfg, nil
}
