package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	RedisAddr   string

	// Slot grid for the club. Times are HH:MM, the grid runs from
	// OpenTime up to and including CloseTime as the last start.
	OpenTime    string
	CloseTime   string
	SlotMinutes int

	CacheTTLSeconds int
	RateLimitRPS    float64
	RateLimitBurst  int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "squash:squash@tcp(localhost:3306)/va_squash?parseTime=true&multiStatements=true"),
		JWTSecret:   getEnv("JWT_SECRET", "secret-key"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),

		OpenTime:    getEnv("SLOT_OPEN_TIME", "09:00"),
		CloseTime:   getEnv("SLOT_CLOSE_TIME", "21:00"),
		SlotMinutes: getEnvInt("SLOT_MINUTES", 45),

		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 30),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 40),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
