package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer    string // Optional: issuer claim for tokens (default: cafe-api)
	JWTSecret string // Required: HS256 signing secret, at least 32 bytes

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./cafe.db)
	AdminUsername       string        // Optional: seeded admin username (default: admin)
	AdminPassword       string        // Optional: seeded admin password (default: cafe2024)
	SeedSampleMenu      bool          // Optional: seed sample categories and items (default: true)
	TokenTTL            time.Duration // Optional: access token lifetime (default: 24h)
	ClientURL           string        // Optional: allowed CORS origin (default: *)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3001)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Local development keeps its settings in a .env file; a missing file
	// is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:              getEnvOrDefault("CAFE_ISSUER", "cafe-api"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		DatabaseFile:        getEnvOrDefault("CAFE_DATABASE_FILE", "cafe.db"),
		AdminUsername:       getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:       getEnvOrDefault("ADMIN_PASSWORD", "cafe2024"),
		SeedSampleMenu:      getEnvBoolOrDefault("CAFE_SEED_SAMPLE_ITEMS", true),
		TokenTTL:            getEnvDurationOrDefault("CAFE_TOKEN_TTL", 24*time.Hour),
		ClientURL:           os.Getenv("CLIENT_URL"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3001),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accepts duration syntax ("24h", "30m") or bare integer hours.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
