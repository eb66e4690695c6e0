package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	APIBaseURL string
	// APITimeout of 0 disables the client-side timeout, matching the
	// behavior of the original UI.
	APITimeout time.Duration
	// RedisAddr empty means session state is kept in process memory.
	RedisAddr        string
	SessionTTL       time.Duration
	DefaultCreatorID int
}

func Load() *Config {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "3000"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8080/api"),
		APITimeout:       getDuration("API_TIMEOUT", 0),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		SessionTTL:       getDuration("SESSION_TTL", 2*time.Hour),
		DefaultCreatorID: getInt("DEFAULT_CREATOR_ID", 1),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
