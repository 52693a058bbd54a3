package ollama

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"plantcare-be/pkg/llm"
)

// Runs against a real Ollama server when OLLAMA_INTEGRATION_URL is set, e.g.
//
//	OLLAMA_INTEGRATION_URL=http://localhost:11434 OLLAMA_INTEGRATION_MODEL=gemma:2b go test ./pkg/llm/ollama/
func integrationProvider(t *testing.T) *OllamaProvider {
	t.Helper()
	baseURL := os.Getenv("OLLAMA_INTEGRATION_URL")
	if baseURL == "" {
		t.Skip("OLLAMA_INTEGRATION_URL not set")
	}
	model := os.Getenv("OLLAMA_INTEGRATION_MODEL")
	if model == "" {
		model = "gemma:2b"
	}
	return NewOllamaProvider(baseURL, model)
}

func TestOllamaConnection(t *testing.T) {
	p := integrationProvider(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		t.Fatalf("Ollama not reachable at %s: %v", p.BaseURL, err)
	}
}

func TestOllamaMultiTurnConversation(t *testing.T) {
	p := integrationProvider(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	reply, err := p.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: "You are a plant care assistant. Answer in one sentence."},
		{Role: llm.RoleUser, Content: "I have a fern called Fernando."},
		{Role: llm.RoleAssistant, Content: "Nice to meet Fernando!"},
		{Role: llm.RoleUser, Content: "What is my fern called?"},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	t.Logf("Response: %s", reply)
	if !strings.Contains(strings.ToLower(reply), "fernando") {
		t.Errorf("expected the reply to remember the fern's name, got %q", reply)
	}
}
