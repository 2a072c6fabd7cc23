package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"agrovision/pkg/logger"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

type AppConfig struct {
	Port             string
	DBPath           string
	LogMode          string
	LLMProvider      string
	LLMEndpoint      string
	LLMAPIKey        string
	LLMModel         string
	GeminiAPIKey     string
	GeminiModel      string
	LLMTimeout       time.Duration
	SeedXLSX         string
	PlaceholderImage string
}

// Load reads .env when present, then the environment.
func Load() AppConfig {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function.
func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}
	timeout := 60
	if v, err := strconv.Atoi(get("LLM_TIMEOUT_SEC", "")); err == nil && v > 0 {
		timeout = v
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "agrovision.db"),
		LogMode:          get("LOG_MODE", "dev"),
		LLMProvider:      strings.ToLower(get("LLM_PROVIDER", "")),
		LLMEndpoint:      get("LLM_ENDPOINT", "https://api.openai.com"),
		LLMAPIKey:        get("LLM_API_KEY", ""),
		LLMModel:         get("LLM_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:     get("GEMINI_API_KEY", ""),
		GeminiModel:      get("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:       time.Duration(timeout) * time.Second,
		SeedXLSX:         get("SEED_XLSX", ""),
		PlaceholderImage: get("PLACEHOLDER_IMAGE_URL", ""),
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = inferProvider(cfg)
	}
	return cfg
}

// inferProvider picks a backend from whichever key is set, falling back to
// the offline mock.
func inferProvider(cfg AppConfig) string {
	switch {
	case cfg.LLMAPIKey != "":
		return ProviderOpenAI
	case cfg.GeminiAPIKey != "":
		return ProviderGemini
	default:
		return ProviderMock
	}
}

// Log writes the effective config without secrets.
func (c AppConfig) Log(l *logger.Logger) {
	l.Info("config",
		"port", c.Port,
		"db_path", c.DBPath,
		"llm_provider", c.LLMProvider,
		"llm_model", c.model(),
		"llm_timeout", c.LLMTimeout.String(),
		"seed_xlsx", c.SeedXLSX,
	)
}

func (c AppConfig) model() string {
	switch c.LLMProvider {
	case ProviderOpenAI:
		return c.LLMModel
	case ProviderGemini:
		return c.GeminiModel
	}
	return ""
}
