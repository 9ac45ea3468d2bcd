package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every process-wide setting. It is built once in main and
// handed to the packages that need it instead of being read from the
// environment at call sites.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	RedisURI       string
	JWTSecret      string
	AllowedOrigins string
	FrontendURL    string
	Environment    string
}

// Load reads the .env file (if present) and the environment and returns
// the resulting Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	return Config{
		Port:           getEnv("APP_PORT", "8000"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "EaseFormDB"),
		RedisURI:       os.Getenv("REDIS_URI"),
		JWTSecret:      getEnv("JWT_SECRET", "your_secret_key"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

// IsProduction reports whether error detail must be suppressed in responses.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
