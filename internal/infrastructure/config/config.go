// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Dataset
	DatasetPath string

	// Model server
	ModelServerURL   string
	BaseModelName    string
	HolidayModelName string
	ModelTimeout     time.Duration

	// Google Calendar holiday feed
	GoogleClientID      string
	GoogleClientSecret  string
	GoogleRefreshToken  string
	HolidayCalendarID   string
	HolidayWindowDays   int
	HolidayFetchTimeout time.Duration

	// MongoDB (query log)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (airport metadata)
	PostgresURI string

	// Redis (facet cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	FacetCacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		DatasetPath: getEnv("DATASET_PATH", "data/clean_flight_data.csv"),

		ModelServerURL:   getEnv("MODEL_SERVER_URL", "http://localhost:8501"),
		BaseModelName:    getEnv("BASE_MODEL_NAME", "fare_base"),
		HolidayModelName: getEnv("HOLIDAY_MODEL_NAME", "fare_holiday"),
		ModelTimeout:     time.Duration(getEnvAsInt("MODEL_TIMEOUT", 10)) * time.Second,

		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:  getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRefreshToken:  getEnv("GOOGLE_REFRESH_TOKEN", ""),
		HolidayCalendarID:   getEnv("HOLIDAY_CALENDAR_ID", "en.indian#holiday@group.v.calendar.google.com"),
		HolidayWindowDays:   getEnvAsInt("HOLIDAY_WINDOW_DAYS", 364),
		HolidayFetchTimeout: time.Duration(getEnvAsInt("HOLIDAY_FETCH_TIMEOUT", 15)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "farecast"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=farecast dbname=farecast sslmode=disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		FacetCacheTTL: time.Duration(getEnvAsInt("FACET_CACHE_TTL", 120)) * time.Second,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
