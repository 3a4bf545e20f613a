package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Bot      BotConfig
	Ai       AIConfig
	Feed     FeedConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type BotConfig struct {
	CatalogPageSize           int
	AdvisoryHistory           int // turns kept per session
	AdvisoryContext           int // turns sent with each completion
	AdvisorySessionTTLMinutes int
	SessionStore              string // "memory" or "redis"
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaBaseURL string
	Model         string
	Temperature   float64
	MaxTokens     int
}

type FeedConfig struct {
	BaseURL         string
	Token           string
	RefreshMinutes  int
	RequestTimeoutS int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Bot: BotConfig{
			CatalogPageSize:           getEnvAsInt("CATALOG_PAGE_SIZE", 5),
			AdvisoryHistory:           getEnvAsInt("ADVISORY_HISTORY_TURNS", 10),
			AdvisoryContext:           getEnvAsInt("ADVISORY_CONTEXT_TURNS", 6),
			AdvisorySessionTTLMinutes: getEnvAsInt("ADVISORY_SESSION_TTL_MINUTES", 60),
			SessionStore:              getEnv("SESSION_STORE", "memory"),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:         getEnv("LLM_MODEL", "gpt-4o-mini"),
			Temperature:   getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			MaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 500),
		},
		Feed: FeedConfig{
			BaseURL:         getEnv("CATALOG_FEED_URL", ""),
			Token:           getEnv("CATALOG_FEED_TOKEN", ""),
			RefreshMinutes:  getEnvAsInt("CATALOG_FEED_REFRESH_MINUTES", 30),
			RequestTimeoutS: getEnvAsInt("CATALOG_FEED_TIMEOUT_SECONDS", 15),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
