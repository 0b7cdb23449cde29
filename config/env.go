package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	JWTExpiry     string
	LogLevel      string
	LoginDelay    time.Duration
	SubmitDelay   time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		DataDir:       getEnv("DATA_DIR", "./data"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTExpiry:     getEnv("JWT_EXPIRY", "24h"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LoginDelay:    getEnvDuration("LOGIN_DELAY", 500*time.Millisecond),
		SubmitDelay:   getEnvDuration("SUBMIT_DELAY", 1500*time.Millisecond),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
