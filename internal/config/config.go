// Package config loads service configuration from the environment. A .env
// file in the working directory is honored when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mkravets/bankassist/internal/mail"
)

// Config carries everything the server needs beyond its command-line flags.
type Config struct {
	// LLMProvider selects the completion API: "groq" (default) or "gemini".
	LLMProvider string
	// GroqAPIKey is the completion API key, read from GROQ_API_KEY.
	GroqAPIKey string

	SMTP mail.SMTPConfig
}

// Load reads the configuration from the environment.
func Load() Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	return Config{
		LLMProvider: getenv("LLM_PROVIDER", "groq"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		SMTP: mail.SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenvInt("SMTP_PORT", 465),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
