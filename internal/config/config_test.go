package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "")

	cfg := FromEnv()

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "http://localhost:5173", cfg.App.CorsAllowedOrigins)
	assert.Equal(t, "gemini", cfg.Ai.LLMProvider)
	assert.Equal(t, 60*time.Second, cfg.Ai.RequestTimeout)
	assert.Equal(t, 10, cfg.Chat.MaxHistory)
	assert.Equal(t, "exchange", cfg.Chat.SeedVariant)
	assert.Zero(t, cfg.Chat.SessionTTL)
	assert.Empty(t, cfg.Keys.GoogleGemini)
	assert.False(t, cfg.Tracing.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GOOGLE_API_KEY", "key-123")
	t.Setenv("LLM_REQUEST_TIMEOUT", "15s")
	t.Setenv("CHAT_MAX_HISTORY", "20")
	t.Setenv("CHAT_SEED_VARIANT", "system")
	t.Setenv("CHAT_SESSION_TTL", "2h")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "key-123", cfg.Keys.GoogleGemini)
	assert.Equal(t, 15*time.Second, cfg.Ai.RequestTimeout)
	assert.Equal(t, 20, cfg.Chat.MaxHistory)
	assert.Equal(t, "system", cfg.Chat.SeedVariant)
	assert.Equal(t, 2*time.Hour, cfg.Chat.SessionTTL)
	assert.True(t, cfg.Tracing.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestGeminiKeyFallback(t *testing.T) {
	// Setenv registers the restore, Unsetenv makes the key truly absent.
	t.Setenv("GOOGLE_API_KEY", "")
	require.NoError(t, os.Unsetenv("GOOGLE_API_KEY"))
	t.Setenv("GOOGLE_GEMINI_API_KEY", "legacy-key")

	cfg := FromEnv()
	assert.Equal(t, "legacy-key", cfg.Keys.GoogleGemini)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := FromEnv()
	cfg.Ai.LLMProvider = "openai"
	assert.Error(t, cfg.Validate())

	cfg = FromEnv()
	cfg.Chat.SeedVariant = "bogus"
	assert.Error(t, cfg.Validate())

	cfg = FromEnv()
	cfg.Chat.MaxHistory = 2
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsWildcardOrigin(t *testing.T) {
	for _, origins := range []string{"*", "http://localhost:5173, *"} {
		cfg := FromEnv()
		cfg.App.CorsAllowedOrigins = origins
		assert.ErrorContains(t, cfg.Validate(), "CORS_ALLOWED_ORIGINS", origins)
	}

	cfg := FromEnv()
	cfg.App.CorsAllowedOrigins = "http://localhost:5173, https://plantcare.example"
	assert.NoError(t, cfg.Validate())
}

func TestLLMConfigured(t *testing.T) {
	tests := []struct {
		provider string
		keys     APIKeys
		want     bool
	}{
		{provider: "gemini", keys: APIKeys{}, want: false},
		{provider: "gemini", keys: APIKeys{GoogleGemini: "k"}, want: true},
		{provider: "ollama", keys: APIKeys{}, want: true},
		{provider: "huggingface", keys: APIKeys{GoogleGemini: "k"}, want: false},
		{provider: "huggingface", keys: APIKeys{HuggingFace: "hf"}, want: true},
	}

	for _, tt := range tests {
		cfg := &Config{Keys: tt.keys, Ai: AIConfig{LLMProvider: tt.provider}}
		if got := cfg.LLMConfigured(); got != tt.want {
			t.Errorf("LLMConfigured(%s, %+v) = %v, want %v", tt.provider, tt.keys, got, tt.want)
		}
	}
}
