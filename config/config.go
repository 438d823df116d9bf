package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	RecordsPath    string
	OllamaEndpoint string
	OllamaModel    string
	JWTSecret      string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Asia/Kolkata"),
		DBPath:         get("DB_PATH", "agrisense.db"),
		RecordsPath:    get("RECORDS_PATH", "records.json"),
		OllamaEndpoint: get("OLLAMA_ENDPOINT", ""),
		OllamaModel:    get("OLLAMA_MODEL", "llama3"),
		JWTSecret:      get("JWT_SECRET", "dev-secret-change-me"),
	}
	log.Printf("[cfg] port=%s db=%s records=%s ollama=%q model=%s",
		cfg.Port, cfg.DBPath, cfg.RecordsPath, cfg.OllamaEndpoint, cfg.OllamaModel)
	return cfg
}
