package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DocumentsDir string
	LogLevel     string

	// Gemini
	APIKey     string
	Model      string
	BaseURL    string
	APIVersion string

	AllowedOrigins []string
}

func Load() *Config {
	_ = godotenv.Load()

	apiKey := getEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("GOOGLE_API_KEY", "")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		DocumentsDir:   getEnv("DOCUMENTS_DIR", "documents/"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIKey:         apiKey,
		Model:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		BaseURL:        getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/"),
		APIVersion:     getEnv("GEMINI_API_VERSION", "v1"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
