package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	DatabaseDriver string
	BusinessName   string
	BillingBank    string
	BillingAccount string
	BillingBSB     string
	DevMode        bool
}

func Load(dbConn, dbDriver, devMode string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if dbConn == "" {
		dbConn = getEnv("DATABASE_URL", "./qiston.db")
	}

	if dbDriver == "" {
		dbDriver = getEnv("DATABASE_DRIVER", "sqlite3")
	}

	// Dev mode defaults to true for local builds, false for prod
	isDevMode := devMode == "true" || (devMode == "" && getEnv("DEV_MODE", "true") == "true")

	cfg := &Config{
		DatabaseURL:    dbConn,
		DatabaseDriver: dbDriver,
		BusinessName:   getEnv("BUSINESS_NAME", "QistonPe"),
		BillingBank:    getEnv("BILLING_BANK", ""),
		BillingAccount: getEnv("BILLING_ACCOUNT", ""),
		BillingBSB:     getEnv("BILLING_BSB", ""),
		DevMode:        isDevMode,
	}

	return cfg, nil
}

func (c *Config) Dump() {
	fmt.Printf("Database URL: %s\n", c.DatabaseURL)
	fmt.Printf("Database Driver: %s\n", c.DatabaseDriver)
	fmt.Printf("Business Name: %s\n", c.BusinessName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
