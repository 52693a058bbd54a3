package service

import (
	"context"
	"time"

	"plantcare-be/internal/dto"
	"plantcare-be/internal/pkg/logger"
	"plantcare-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

const (
	healthModule = "health"

	probeCacheKey = "llm_accessible"
	probeTimeout  = 5 * time.Second
	probeTTL      = 30 * time.Second
)

type IHealthService interface {
	Health(ctx context.Context) *dto.HealthResponse
}

type healthService struct {
	llmProvider llm.LLMProvider
	llmStatus   LLMStatus
	modelStatus ModelStatus
	probes      *cache.Cache
	logger      logger.ILogger
}

func NewHealthService(llmProvider llm.LLMProvider, llmStatus LLMStatus, modelStatus ModelStatus, sysLogger logger.ILogger) IHealthService {
	return &healthService{
		llmProvider: llmProvider,
		llmStatus:   llmStatus,
		modelStatus: modelStatus,
		probes:      cache.New(probeTTL, 2*probeTTL),
		logger:      sysLogger,
	}
}

func (hs *healthService) Health(ctx context.Context) *dto.HealthResponse {
	accessible := hs.accessible(ctx)

	return &dto.HealthResponse{
		Status: "ok",
		Services: dto.HealthServices{
			MLModel: dto.MLModelHealth{
				Status: okOrError(hs.modelStatus.Loaded),
				Loaded: hs.modelStatus.Loaded,
			},
			GeminiChatbot: dto.ChatbotHealth{
				Status:           okOrError(accessible),
				Configured:       hs.llmStatus.Configured,
				ModelInitialized: hs.llmProvider != nil,
				Accessible:       accessible,
				Provider:         hs.llmStatus.Provider,
				Model:            hs.llmStatus.Model,
			},
		},
	}
}

// accessible pings the provider at most once per probeTTL.
func (hs *healthService) accessible(ctx context.Context) bool {
	if hs.llmProvider == nil || !hs.llmStatus.Configured {
		return false
	}
	if v, found := hs.probes.Get(probeCacheKey); found {
		return v.(bool)
	}

	pinger, ok := hs.llmProvider.(llm.Pinger)
	if !ok {
		// nothing cheaper than a generation call, trust the startup result
		return true
	}

	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	accessible := true
	if err := pinger.Ping(pingCtx); err != nil {
		accessible = false
		hs.logger.Warn(healthModule, "Health check - LLM provider not reachable", map[string]interface{}{
			"provider": hs.llmProvider.Name(),
			"error":    err.Error(),
		})
	}
	hs.probes.Set(probeCacheKey, accessible, cache.DefaultExpiration)
	return accessible
}

func okOrError(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
