package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration, read from the environment.
// A .env file, if present, is loaded by main before this runs.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	LLM      LLMConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `env:"SERVER_PORT" env-default:"8080"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN string `env:"DATABASE_DSN" env-required:"true"`
}

// AuthConfig holds the Google sign-in and session token settings.
// Disabled skips the capability check entirely (local development).
type AuthConfig struct {
	Disabled           bool          `env:"AUTH_DISABLED" env-default:"false"`
	JWTSecret          string        `env:"AUTH_JWT_SECRET"`
	SessionTTL         time.Duration `env:"AUTH_SESSION_TTL" env-default:"720h"`
	GoogleClientID     string        `env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string        `env:"AUTH_GOOGLE_REDIRECT_URL" env-default:"http://localhost:8080/auth/callback"`
}

// LLMConfig holds the Gemini settings for bullet generation.
type LLMConfig struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if !cfg.Auth.Disabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required unless AUTH_DISABLED=true")
	}
	return &cfg, nil
}
