package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL = "https://integrate.api.nvidia.com/v1"
	defaultModel      = "nvidia/llama-3.3-nemotron-super-49b-v1.5"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	APIBaseURL      string
	APIKey          string
	Model           string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
// A missing NVIDIA_API_KEY is fatal: without credentials every analysis
// request would fail, so the process refuses to start.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load(".env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	apiKey := strings.TrimSpace(os.Getenv("NVIDIA_API_KEY"))
	if apiKey == "" {
		log.Fatal("NVIDIA_API_KEY is required. Set it in the environment or a .env file.")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		APIBaseURL:      getEnv("NVIDIA_BASE_URL", defaultAPIBaseURL),
		APIKey:          apiKey,
		Model:           getEnv("NVIDIA_MODEL", defaultModel),
		Env:             env,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
