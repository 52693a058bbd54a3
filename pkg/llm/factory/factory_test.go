package factory

import (
	"context"
	"errors"
	"testing"

	"plantcare-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewLLMProvider(ctx, Settings{Provider: "gemini", Model: "gemini-1.5-flash"})
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, llm.ErrNotConfigured))

	p, err = NewLLMProvider(ctx, Settings{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())
	assert.Equal(t, "llama3", p.Model())

	p, err = NewLLMProvider(ctx, Settings{Provider: "huggingface", Model: "meta-llama/Llama-3.1-8B-Instruct"})
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, llm.ErrNotConfigured))

	p, err = NewLLMProvider(ctx, Settings{Provider: "huggingface", Model: "m", HuggingFaceKey: "hf_test"})
	require.NoError(t, err)
	assert.Equal(t, "huggingface", p.Name())

	_, err = NewLLMProvider(ctx, Settings{Provider: "openai"})
	assert.ErrorContains(t, err, "unsupported LLM provider")
}
