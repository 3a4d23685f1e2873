package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// OAuthCredentials holds the client credentials for one OAuth provider.
// A provider with an empty ClientID or ClientSecret is simply disabled.
type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
}

// Configured reports whether both credentials are present.
func (c OAuthCredentials) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Config holds all configuration for the API
type Config struct {
	// Server
	Port     string `env:"PORT" default:"5000"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Sessions
	JWTSecret string        `env:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" default:"720h"`

	// OAuth
	APIBaseURL  string `env:"API_BASE_URL" default:"http://localhost:5000"`
	FrontendURL string `env:"FRONTEND_URL" default:"http://localhost:3000"`
	Google      OAuthCredentials
	GitHub      OAuthCredentials
	Discord     OAuthCredentials
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "5000")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Session configuration
	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	tokenTTLStr := getEnvOrDefault("TOKEN_TTL", "720h")
	config.TokenTTL, err = time.ParseDuration(tokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	// OAuth configuration
	config.APIBaseURL = strings.TrimRight(getEnvOrDefault("API_BASE_URL", "http://localhost:"+config.Port), "/")
	config.FrontendURL = strings.TrimRight(getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"), "/")
	config.Google = OAuthCredentials{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	}
	config.GitHub = OAuthCredentials{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
	}
	config.Discord = OAuthCredentials{
		ClientID:     os.Getenv("DISCORD_CLIENT_ID"),
		ClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate token TTL (minimum 1 minute)
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token TTL must be at least 1 minute, got: %v", c.TokenTTL)
	}

	return nil
}

// OAuthRedirectURL builds the callback URL registered with a provider.
func (c *Config) OAuthRedirectURL(provider string) string {
	return c.APIBaseURL + "/auth/callback/" + provider
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
