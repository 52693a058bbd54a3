package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"plantcare-be/pkg/llm"

	"github.com/google/generative-ai-go/genai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

var (
	_ llm.LLMProvider = &GeminiProvider{}
	_ llm.Pinger      = &GeminiProvider{}
	_ llm.Closer      = &GeminiProvider{}
)

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, llm.ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, modelName: modelName}, nil
}

func (g *GeminiProvider) Name() string  { return "gemini" }
func (g *GeminiProvider) Model() string { return g.modelName }

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	ctx, span := otel.Tracer("plantcare/llm").Start(ctx, "gemini.chat")
	defer span.End()

	prior, last, err := llm.SplitLast(history)
	if err != nil {
		return "", err
	}

	options := llm.ApplyOptions(llm.Options{}, opts...)
	model := g.model(options)

	system, contents := ToContents(prior)
	model.SystemInstruction = system
	span.SetAttributes(attribute.String("llm.model", g.modelName), attribute.Int("llm.history", len(contents)))

	cs := model.StartChat()
	cs.History = contents

	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("gemini send message: %w", err)
	}
	return ResponseText(resp)
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	ctx, span := otel.Tracer("plantcare/llm").Start(ctx, "gemini.generate")
	defer span.End()

	options := llm.ApplyOptions(llm.Options{}, opts...)
	resp, err := g.model(options).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return ResponseText(resp)
}

// Ping fetches the first entry of the model listing.
func (g *GeminiProvider) Ping(ctx context.Context) error {
	_, err := g.client.ListModels(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("gemini list models: %w", err)
	}
	return nil
}

func (g *GeminiProvider) Close() error {
	return g.client.Close()
}

func (g *GeminiProvider) model(options *llm.Options) *genai.GenerativeModel {
	name := g.modelName
	if options.Model != "" {
		name = options.Model
	}
	m := g.client.GenerativeModel(name)
	if options.Temperature > 0 {
		m.SetTemperature(float32(options.Temperature))
	}
	if options.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(options.MaxTokens))
	}
	return m
}

// ToContents maps provider-agnostic messages to Gemini contents. System
// messages are folded into a single system instruction; assistant turns use
// Gemini's "model" role.
func ToContents(messages []llm.Message) (*genai.Content, []*genai.Content) {
	var systemParts []genai.Part
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			systemParts = append(systemParts, genai.Text(msg.Content))
		case llm.RoleAssistant, roleModel:
			contents = append(contents, &genai.Content{Role: roleModel, Parts: []genai.Part{genai.Text(msg.Content)}})
		default:
			contents = append(contents, &genai.Content{Role: roleUser, Parts: []genai.Part{genai.Text(msg.Content)}})
		}
	}

	var system *genai.Content
	if len(systemParts) > 0 {
		system = &genai.Content{Parts: systemParts}
	}
	return system, contents
}

// ResponseText joins the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil {
			return "", fmt.Errorf("gemini blocked the prompt: %s", resp.PromptFeedback.BlockReason.String())
		}
		return "", errors.New("gemini returned no candidates")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", fmt.Errorf("gemini candidate has no content (finish reason %s)", cand.FinishReason.String())
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini candidate has no text")
	}
	return sb.String(), nil
}
