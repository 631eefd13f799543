// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	// GoogleAPIKey authenticates against the Gemini API. The server refuses
	// to start without it.
	GoogleAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	// SessionSecretKey signs the anonymous session cookie.
	SessionSecretKey  string
	SessionTTLMinutes int

	// ChatStoreBackend selects "memory" (default) or "sqlite" (an in-memory
	// SQLite database; chat history still dies with the process).
	ChatStoreBackend string

	ChatTimeoutSeconds int
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        env,
		GoogleAPIKey:       getEnv("GOOGLE_API_KEY", ""),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SessionSecretKey:   getEnv("SESSION_SECRET_KEY", ""),
		SessionTTLMinutes:  getEnvAsInt("SESSION_TTL_MINUTES", 120),
		ChatStoreBackend:   getEnv("CHAT_STORE_BACKEND", "memory"),
		ChatTimeoutSeconds: getEnvAsInt("CHAT_TIMEOUT_SECONDS", 60),
	}

	// The model credential is required in every environment. Starting
	// without it would turn every chat reply into an auth error.
	if cfg.GoogleAPIKey == "" {
		log.Fatalf("Missing required environment variable: GOOGLE_API_KEY")
	}

	if strings.ToLower(env) == "production" {
		if cfg.SessionSecretKey == "" {
			log.Fatalf("Missing required production environment variable: SESSION_SECRET_KEY")
		}
	} else if cfg.SessionSecretKey == "" {
		// Development fallback so a bare `go run` works out of the box.
		cfg.SessionSecretKey = "dev-session-secret"
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
