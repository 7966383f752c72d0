package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	DBPath      string
	// LLM Configuration
	AnthropicAPIKey string
	LLMModel        string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		DBPath:      getEnv("DB_PATH", defaultDBPath()),
		// LLM Configuration
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		LLMModel:        getEnv("LLM_MODEL", "claude-haiku-4-5"),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// defaultDBPath returns ~/.atelier/atelier.db, falling back to the working
// directory when the home directory cannot be resolved.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "atelier.db"
	}
	return filepath.Join(home, ".atelier", "atelier.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
