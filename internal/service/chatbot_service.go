package service

import (
	"context"
	"strings"
	"time"

	"plantcare-be/internal/constant"
	"plantcare-be/internal/dto"
	"plantcare-be/internal/pkg/apperror"
	"plantcare-be/internal/pkg/logger"
	"plantcare-be/internal/repository/memory"
	"plantcare-be/pkg/llm"
	"plantcare-be/pkg/store"
)

const chatbotModule = "chatbot"

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	SendChat(ctx context.Context, sessionId string, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetChatHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error)
	DeleteSession(ctx context.Context, sessionId string) (*dto.DeleteSessionResponse, error)
}

type ChatbotOptions struct {
	MaxHistory  int
	SeedVariant string
	Timeout     time.Duration
}

type chatbotService struct {
	llmProvider llm.LLMProvider
	sessionRepo *memory.SessionRepository
	logger      logger.ILogger
	opts        ChatbotOptions
}

// NewChatbotService creates the chat service. llmProvider may be nil when the
// language model is not configured; SendChat then reports it as unavailable.
func NewChatbotService(
	llmProvider llm.LLMProvider,
	sessionRepo *memory.SessionRepository,
	sysLogger logger.ILogger,
	opts ChatbotOptions,
) IChatbotService {
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = 10
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &chatbotService{
		llmProvider: llmProvider,
		sessionRepo: sessionRepo,
		logger:      sysLogger,
		opts:        opts,
	}
}

// SeedTurns returns the reserved context a new session starts with.
func SeedTurns(variant string) []store.Turn {
	if variant == constant.SeedVariantSystem {
		return []store.Turn{{Role: store.RoleSystem, Text: constant.ChatSystemPrompt}}
	}
	return []store.Turn{
		{Role: store.RoleUser, Text: constant.ChatSystemPrompt},
		{Role: store.RoleAssistant, Text: constant.ChatSeedAcknowledgement},
	}
}

func SessionIdOrDefault(sessionId string) string {
	if s := strings.TrimSpace(sessionId); s != "" {
		return s
	}
	return constant.DefaultSessionID
}

func (cs *chatbotService) SendChat(ctx context.Context, sessionId string, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if request == nil || request.Message == "" {
		return nil, apperror.BadRequest("Missing 'message' field.").
			WithFallback("response", constant.ChatFallbackBadRequest)
	}
	if cs.llmProvider == nil {
		cs.logger.Warn(chatbotModule, "Chat request failed: language model not available", nil)
		return nil, apperror.Unavailable("Language model not initialized.").
			WithFallback("response", constant.ChatFallbackUnavailable)
	}

	sessionId = SessionIdOrDefault(sessionId)
	conv, created := cs.sessionRepo.GetOrCreate(sessionId, func() []store.Turn {
		return SeedTurns(cs.opts.SeedVariant)
	})
	if created {
		cs.logger.Info(chatbotModule, "Creating new chat session", map[string]interface{}{
			"session_id": sessionId,
			"variant":    cs.opts.SeedVariant,
		})
	}

	// One exchange per session at a time so append/generate/trim never interleave.
	conv.Lock()
	defer conv.Unlock()

	conv.Append(store.RoleUser, request.Message)

	genCtx, cancel := context.WithTimeout(ctx, cs.opts.Timeout)
	defer cancel()

	start := time.Now()
	reply, err := cs.llmProvider.Chat(genCtx, toMessages(conv.Snapshot()))
	if err != nil {
		// the user turn has no answer, keep the log alternating
		conv.DropLast()
		cs.logger.Error(chatbotModule, "Error generating response", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, apperror.Upstream("Error generating response", err).
			WithFallback("response", constant.ChatFallbackUpstream)
	}

	conv.Append(store.RoleAssistant, reply)
	dropped := conv.Trim(cs.opts.MaxHistory)

	cs.logger.Info(chatbotModule, "Response generated", map[string]interface{}{
		"session_id":  sessionId,
		"turns":       conv.Len(),
		"trimmed":     dropped,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return &dto.ChatResponse{Response: reply}, nil
}

func (cs *chatbotService) GetChatHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error) {
	sessionId = SessionIdOrDefault(sessionId)
	res := &dto.ChatHistoryResponse{
		SessionId: sessionId,
		Turns:     make([]dto.ChatTurnDTO, 0),
	}

	conv, ok := cs.sessionRepo.Get(sessionId)
	if !ok {
		return res, nil
	}

	conv.Lock()
	defer conv.Unlock()

	for i, turn := range conv.Turns {
		if i < conv.Reserved {
			continue
		}
		res.Turns = append(res.Turns, dto.ChatTurnDTO{Role: turn.Role, Text: turn.Text})
	}
	createdAt, updatedAt := conv.CreatedAt, conv.UpdatedAt
	res.CreatedAt = &createdAt
	res.UpdatedAt = &updatedAt
	return res, nil
}

func (cs *chatbotService) DeleteSession(ctx context.Context, sessionId string) (*dto.DeleteSessionResponse, error) {
	sessionId = SessionIdOrDefault(sessionId)
	deleted := cs.sessionRepo.Delete(sessionId)
	if deleted {
		cs.logger.Info(chatbotModule, "Chat session deleted", map[string]interface{}{"session_id": sessionId})
	}
	return &dto.DeleteSessionResponse{SessionId: sessionId, Deleted: deleted}, nil
}

func toMessages(turns []store.Turn) []llm.Message {
	messages := make([]llm.Message, len(turns))
	for i, turn := range turns {
		messages[i] = llm.Message{Role: turn.Role, Content: turn.Text}
	}
	return messages
}
