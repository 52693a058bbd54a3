package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Keys    APIKeys
	Ai      AIConfig
	Chat    ChatConfig
	Model   ModelConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string `validate:"required,numeric"`
	Environment        string
	LogFilePath        string `validate:"required"`
	CorsAllowedOrigins string `validate:"required"`
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
}

type AIConfig struct {
	LLMProvider        string        `validate:"oneof=gemini ollama huggingface"`
	LLMModel           string        `validate:"required"`
	OllamaBaseURL      string        `validate:"required,url"`
	HuggingFaceBaseURL string        `validate:"required,url"`
	RequestTimeout     time.Duration `validate:"gt=0"`
}

type ChatConfig struct {
	MaxHistory  int    `validate:"gte=4"`
	SeedVariant string `validate:"oneof=exchange system"`
	// SessionTTL of zero keeps sessions for the process lifetime.
	SessionTTL time.Duration `validate:"gte=0"`
}

type ModelConfig struct {
	Path string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_API_KEY", getEnv("GOOGLE_GEMINI_API_KEY", "")),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:           getEnv("LLM_MODEL", "gemini-1.5-flash"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", "https://router.huggingface.co/v1"),
			RequestTimeout:     getEnvAsDuration("LLM_REQUEST_TIMEOUT", 60*time.Second),
		},
		Chat: ChatConfig{
			MaxHistory:  getEnvAsInt("CHAT_MAX_HISTORY", 10),
			SeedVariant: getEnv("CHAT_SEED_VARIANT", "exchange"),
			SessionTTL:  getEnvAsDuration("CHAT_SESSION_TTL", 0),
		},
		Model: ModelConfig{
			Path: getEnv("MODEL_PATH", "models/rf_plant_health_model.json"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	// credentialed CORS cannot use a wildcard origin
	if strings.Contains(c.App.CorsAllowedOrigins, "*") {
		return fmt.Errorf("validate config: CORS_ALLOWED_ORIGINS must list explicit origins, wildcard is not allowed with credentials")
	}
	return nil
}

// LLMConfigured reports whether the selected provider has the credentials it needs.
func (c *Config) LLMConfigured() bool {
	switch c.Ai.LLMProvider {
	case "ollama":
		return true
	case "huggingface":
		return c.Keys.HuggingFace != ""
	default:
		return c.Keys.GoogleGemini != ""
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
