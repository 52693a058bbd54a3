package service

import (
	"context"
	"fmt"
	"time"

	"plantcare-be/internal/constant"
	"plantcare-be/internal/dto"
	"plantcare-be/internal/pkg/apperror"
	"plantcare-be/internal/pkg/logger"
	"plantcare-be/pkg/llm"
	"plantcare-be/pkg/sensor"
)

const (
	suggestionModule = "suggestion"

	// PredictedStatusField is the optional diagnosis label sent with a reading.
	PredictedStatusField = "predicted_status"
)

type ISuggestionService interface {
	Suggest(ctx context.Context, body []byte) (*dto.SuggestionResponse, error)
}

type suggestionService struct {
	llmProvider llm.LLMProvider
	timeout     time.Duration
	logger      logger.ILogger
}

func NewSuggestionService(llmProvider llm.LLMProvider, timeout time.Duration, sysLogger logger.ILogger) ISuggestionService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &suggestionService{
		llmProvider: llmProvider,
		timeout:     timeout,
		logger:      sysLogger,
	}
}

// BuildSuggestionPrompt renders the one-off advice prompt for a reading.
func BuildSuggestionPrompt(reading sensor.Reading) string {
	status := reading.String(PredictedStatusField, constant.DefaultPredictedStatus)
	return fmt.Sprintf(constant.SuggestionPromptTemplate, status, reading.Format())
}

func (ss *suggestionService) Suggest(ctx context.Context, body []byte) (*dto.SuggestionResponse, error) {
	if ss.llmProvider == nil {
		ss.logger.Warn(suggestionModule, "Suggestion request failed: language model not available", nil)
		return nil, apperror.Unavailable("Language model not initialized.").
			WithFallback("suggestion", constant.SuggestFallbackUnavailable)
	}

	reading, err := sensor.ParseReading(body)
	if err != nil {
		return nil, apperror.BadRequest("No sensor data received")
	}
	if missing := reading.Missing(); len(missing) > 0 {
		return nil, apperror.MissingFields("Missing sensor data fields", missing)
	}

	prompt := BuildSuggestionPrompt(reading)

	genCtx, cancel := context.WithTimeout(ctx, ss.timeout)
	defer cancel()

	ss.logger.Info(suggestionModule, "Requesting suggestion based on sensor data", map[string]interface{}{
		"predicted_status": reading.String(PredictedStatusField, constant.DefaultPredictedStatus),
	})

	start := time.Now()
	text, err := ss.llmProvider.Generate(genCtx, prompt)
	if err != nil {
		ss.logger.Error(suggestionModule, "Error generating suggestion", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperror.Upstream("Error generating suggestion", err).
			WithFallback("suggestion", constant.SuggestFallbackUpstream)
	}

	ss.logger.Info(suggestionModule, "Suggestion received", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return &dto.SuggestionResponse{Suggestion: text}, nil
}
