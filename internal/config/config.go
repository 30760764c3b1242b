package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	DatabaseURL string
	Environment string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string

	GenerationRPM      int
	RedisAddr          string
	RedisPassword      string
	GenerationCacheTTL time.Duration
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		Port:               getenv("PORT", "8000"),
		OpenAIAPIKey:       getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getenv("OPENAI_BASE_URL", ""),
		OpenAIModel:        getenv("OPENAI_MODEL", "gpt-3.5-turbo"),
		DatabaseURL:        getenv("DATABASE_URL", ""),
		Environment:        getenv("ENVIRONMENT", "development"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "text"),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		GenerationRPM:      getint("GENERATION_RPM", 0),
		RedisAddr:          getenv("REDIS_ADDR", ""),
		RedisPassword:      getenv("REDIS_PASSWORD", ""),
		GenerationCacheTTL: getduration("GENERATION_CACHE_TTL", time.Hour),
	}
}

// IsDevelopment reports whether detailed error messages may be sent to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	n, err := strconv.Atoi(getenv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getduration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getenv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
