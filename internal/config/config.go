package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Settings SettingsConfig
	Session  SessionConfig
	Refresh  RefreshConfig
	Stats    StatsConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// BackendConfig holds the remote trading API configuration
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// SettingsConfig holds the settings store configuration
type SettingsConfig struct {
	Path string
}

// SessionConfig holds login session configuration. Key is a base64-encoded
// fernet key; when empty a random key is generated at startup, which means
// sessions do not survive a restart.
type SessionConfig struct {
	Key      string
	Required bool
	TTL      time.Duration
}

// RefreshConfig holds the auto-refresh scheduler configuration
type RefreshConfig struct {
	Interval time.Duration
	// MaxIdle is how long a snapshot may go unread before its refresh
	// subscription is torn down.
	MaxIdle time.Duration
}

// StatsConfig holds the statistics engine configuration
type StatsConfig struct {
	TradingDays int
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Backend: BackendConfig{
			URL:     getEnv("BACKEND_URL", "http://localhost:8080"),
			Timeout: getDuration("BACKEND_TIMEOUT", 15*time.Second),
		},
		Settings: SettingsConfig{
			Path: getEnv("DB_PATH", "./data/tradingweb.db"),
		},
		Session: SessionConfig{
			Key:      getEnv("SESSION_KEY", ""),
			Required: getBool("SESSION_REQUIRED", false),
			TTL:      getDuration("SESSION_TTL", 12*time.Hour),
		},
		Refresh: RefreshConfig{
			Interval: getDuration("REFRESH_INTERVAL", 120*time.Second),
			MaxIdle:  getDuration("REFRESH_MAX_IDLE", 10*time.Minute),
		},
		Stats: StatsConfig{
			TradingDays: getInt("TRADING_DAYS", 252),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if config.Stats.TradingDays <= 0 {
		return nil, fmt.Errorf("TRADING_DAYS must be positive, got %d", config.Stats.TradingDays)
	}
	if config.Refresh.Interval <= 0 {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be positive, got %s", config.Refresh.Interval)
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getInt gets an integer environment variable or returns a default value.
// Non-numeric values fall back to the default.
func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getBool gets a boolean environment variable or returns a default value.
func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getDuration gets a duration environment variable (Go duration syntax, or a
// bare number of seconds) or returns a default value.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
