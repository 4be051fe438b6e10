package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values
type Config struct {
	AirtableAPIKey string
	AirtableBaseID string
	AirtableTable  string
	AdminPassword  string
	AllowedOrigins string
	RateLimitMax   int
	RedisAddr      string
	Environment    string
	Port           string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AirtableAPIKey: os.Getenv("AIRTABLE_API_KEY"),
		AirtableBaseID: os.Getenv("AIRTABLE_BASE_ID"),
		AirtableTable:  envOrDefault("AIRTABLE_TABLE", "Leads"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		RateLimitMax:   envIntOrDefault("RATE_LIMIT_MAX", 10),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		Environment:    envOrDefault("ENVIRONMENT", "development"),
		Port:           envOrDefault("PORT", "8080"),
	}
}

// IsProduction reports whether the deployment should withhold upstream
// error detail from API responses.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
