package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// The portal and the scouting backend run side by side in development, so
// they default to different ports.
const (
	DefaultPort       = 3000
	DefaultAPIBaseURL = "http://localhost:8080"
)

type Config struct {
	// Server
	Port            int
	Env             string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string

	// CORS
	AllowedOrigins []string

	// Scouting backend
	APIBaseURL string
	APITimeout time.Duration

	// Submission guard. Empty RedisURL keeps locks in process memory.
	RedisURL        string
	GenerateLockTTL time.Duration

	// Report generation
	DefaultMatchCount   int
	DefaultMatchupGames int
	GenerateWorkers     int
	GenerateQueueSize   int
}

// Load reads a .env file when present and then loads configuration from
// environment variables. It returns an error if critical configuration is
// missing.
func Load() (*Config, error) {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", DefaultPort),
		Env:             getEnv("ENV", "development"),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 6*time.Minute),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),

		APITimeout: getEnvDuration("SCOUT9_API_TIMEOUT", 5*time.Minute),

		RedisURL:        getEnv("REDIS_URL", ""),
		GenerateLockTTL: getEnvDuration("GENERATE_LOCK_TTL", 6*time.Minute),

		DefaultMatchCount:   getEnvInt("DEFAULT_MATCH_COUNT", 10),
		DefaultMatchupGames: getEnvInt("DEFAULT_MATCHUP_GAMES", 20),
		GenerateWorkers:     getEnvInt("GENERATE_WORKERS", 4),
		GenerateQueueSize:   getEnvInt("GENERATE_QUEUE_SIZE", 32),
	}

	// CORS
	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))

	// The backend URL is mandatory outside development
	var err error
	if cfg.IsProduction() {
		if cfg.APIBaseURL, err = getEnvRequired("SCOUT9_API_URL"); err != nil {
			return nil, err
		}
	} else {
		cfg.APIBaseURL = getEnv("SCOUT9_API_URL", DefaultAPIBaseURL)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("SCOUT9_API_TIMEOUT must be positive, got %s", cfg.APITimeout)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
