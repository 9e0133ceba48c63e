package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Production switches the CORS fallback from the development wildcard to
	// the canonical site origin. Driven by GIN_MODE=release.
	Production bool
	// SMTP Configuration
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFromEmail      string
	SubmitEmailTo      string
	SMTPTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		Production: getEnv("GIN_MODE", "") == "release",
		// SMTP Configuration. Port 465 means implicit TLS; other ports use STARTTLS.
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 465),
		SMTPUsername:       getEnv("SMTP_USERNAME", "info@caduae.com"),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:      getEnv("SMTP_FROM_EMAIL", "info@caduae.com"),
		SubmitEmailTo:      getEnv("SUBMIT_EMAIL_TO", "info@caduae.com"),
		SMTPTimeoutSeconds: getEnvInt("SMTP_TIMEOUT_SECONDS", 15),
	}

	// A missing secret is not fatal: the relay fails per request instead, and
	// the endpoint keeps answering with structured errors.
	if cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP_PASSWORD is missing. Mail relay will fail until it is set.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
