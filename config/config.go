package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var AppConfig Config

type Config struct {
	Environment   string `json:"environment"`
	ServerPort    string `json:"server_port"`
	APIBaseURL    string `json:"api_base_url"`
	APIKey        string `json:"-"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"-"`
	RedisDB       int    `json:"redis_db"`
	SentryDSN     string `json:"-"`
	AllowedOrigin string `json:"allowed_origin"`
	LogLevel      string `json:"log_level"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		ServerPort:    getEnv("SERVER_PORT", "3000"),
		APIBaseURL:    getEnv("API_BASE_URL", "https://registro-posibles-clientes.onrender.com/api/clientes"),
		APIKey:        getEnv("API_KEY", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		SentryDSN:     getEnv("SENTRY_DSN", ""),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	// The shared secret is the whole auth model against the remote service,
	// so refuse to start without it.
	if AppConfig.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}

	return nil
}

// Helper functions

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
