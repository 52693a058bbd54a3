package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNotConfigured is returned by the factory when a provider lacks credentials.
var ErrNotConfigured = errors.New("llm provider not configured")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func ApplyOptions(defaults Options, opts ...Option) *Options {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response.
	// The last message is the one being answered, everything before it is history.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	Name() string
	Model() string
}

// Pinger is implemented by providers that can check reachability cheaply.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Closer is implemented by providers holding network clients.
type Closer interface {
	Close() error
}

// SplitLast separates the message being answered from its history.
func SplitLast(history []Message) ([]Message, Message, error) {
	if len(history) == 0 {
		return nil, Message{}, errors.New("empty chat history")
	}
	last := history[len(history)-1]
	if last.Role != RoleUser {
		return nil, Message{}, errors.New("last chat message must come from the user")
	}
	return history[:len(history)-1], last, nil
}
