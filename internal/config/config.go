package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env     string
	Port    string
	Version string

	// Database. DatabaseURL, when set, overrides the discrete settings.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// CORS
	CORSOrigins []string

	// Pipeline
	PipelineAPIKey string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:     getEnv("ENV", "development"),
		Port:    getEnv("PORT", "8080"),
		Version: getEnv("APP_VERSION", "0.1.0"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "finnews"),
		DBPassword:  getEnv("DB_PASSWORD", "finnews"),
		DBName:      getEnv("DB_NAME", "finnews"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		PipelineAPIKey: getEnv("PIPELINE_API_KEY", ""),
	}

	expStr := getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	minutes, err := strconv.Atoi(expStr)
	if err != nil || minutes <= 0 {
		log.Printf("Warning: invalid ACCESS_TOKEN_EXPIRE_MINUTES value '%s', falling back to 30\n", expStr)
		minutes = 30
	}
	config.JWTExpirationDur = time.Duration(minutes) * time.Minute

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
