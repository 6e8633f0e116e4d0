package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGateway   = "gateway"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config is process configuration. Values are passed into constructors; nothing reads the env later.
type Config struct {
	HTTPPort    string
	DatabaseURL string
	RedisURL    string
	FrontendURL string
	JWTSecret   string

	AIProvider string
	AIBaseURL  string
	AIAPIKey   string
	AIModel    string
	AITimeout  time.Duration

	ChannelTimeout    time.Duration
	ChatWebhookURL    string
	LinkedInAuthorURN string

	AnalyzeRateLimit  int
	AnalyzeRateWindow time.Duration
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		HTTPPort:          envOr("HTTP_PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		FrontendURL:       os.Getenv("FRONTEND_URL"),
		JWTSecret:         os.Getenv("AUTH_JWT_SECRET"),
		AIProvider:        strings.ToLower(envOr("AI_PROVIDER", ProviderGateway)),
		AIBaseURL:         strings.TrimSpace(os.Getenv("AI_BASE_URL")),
		AIAPIKey:          os.Getenv("AI_API_KEY"),
		AIModel:           strings.TrimSpace(os.Getenv("AI_MODEL")),
		ChatWebhookURL:    os.Getenv("CHAT_WEBHOOK_URL"),
		LinkedInAuthorURN: envOr("LINKEDIN_AUTHOR_URN", "urn:li:person:YOUR_PERSON_ID"),
	}

	// Other providers fall back to their SDK's default model.
	switch cfg.AIProvider {
	case ProviderGateway:
		if cfg.AIBaseURL == "" {
			cfg.AIBaseURL = "https://ai.gateway.lovable.dev/v1"
		}
		if cfg.AIModel == "" {
			cfg.AIModel = "google/gemini-2.5-flash"
		}
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
	default:
		return Config{}, fmt.Errorf("AI_PROVIDER: unknown provider %q", cfg.AIProvider)
	}

	var err error
	if cfg.AITimeout, err = envDuration("AI_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ChannelTimeout, err = envDuration("CHANNEL_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.AnalyzeRateWindow, err = envDuration("ANALYZE_RATE_WINDOW", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.AnalyzeRateLimit, err = envInt("ANALYZE_RATE_LIMIT", 10); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func envDuration(name string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

func envInt(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
