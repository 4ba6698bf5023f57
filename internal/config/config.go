package config

import "os"

type Config struct {
	DatabaseURL  string
	Port         string
	GeminiAPIKey string
	UploadsDir   string
}

func Load() *Config {
	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", "vision2026.db"),
		Port:         getEnv("PORT", "8080"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		UploadsDir:   getEnv("UPLOADS_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
