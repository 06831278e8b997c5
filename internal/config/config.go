package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	OpenAIApiKey      string
	EmbeddingModel    string
	DistanceThreshold float64 // cosine distance cutoff for semantic matches
	EmbeddingCacheTTL time.Duration
}

type CacheConfig struct {
	RedisURL      string // empty disables the shared result cache
	ResultPageTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			OpenAIApiKey:      getEnv("OPENAI_API_KEY", ""),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
			DistanceThreshold: getEnvAsFloat("SEMANTIC_DISTANCE_THRESHOLD", 0.8),
			EmbeddingCacheTTL: getEnvAsDuration("EMBEDDING_CACHE_TTL", 10*time.Minute),
		},
		Cache: CacheConfig{
			RedisURL:      getEnv("REDIS_URL", ""),
			ResultPageTTL: getEnvAsDuration("RESULT_CACHE_TTL", time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
