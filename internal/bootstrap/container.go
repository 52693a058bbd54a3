package bootstrap

import (
	"context"
	"errors"

	"plantcare-be/internal/config"
	"plantcare-be/internal/controller"
	"plantcare-be/internal/pkg/logger"
	"plantcare-be/internal/repository/memory"
	"plantcare-be/internal/service"
	"plantcare-be/pkg/forest"
	"plantcare-be/pkg/llm"
	"plantcare-be/pkg/llm/factory"
	"plantcare-be/pkg/sensor"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	ChatbotController    controller.IChatbotController
	PredictionController controller.IPredictionController
	SuggestionController controller.ISuggestionController
	HealthController     controller.IHealthController

	SessionRepository *memory.SessionRepository

	deps Dependencies
}

// Dependencies are the collaborators initialized once at startup. A nil LLM or
// Classifier means that part of the API runs degraded, see the status fields.
type Dependencies struct {
	LLM         llm.LLMProvider
	LLMStatus   service.LLMStatus
	Classifier  service.Classifier
	ModelStatus service.ModelStatus
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	deps := InitDependencies(context.Background(), cfg, sysLogger)
	return Assemble(cfg, sysLogger, deps)
}

// InitDependencies builds the language-model provider and loads the classifier
// artifact. Failures are logged and recorded, never fatal.
func InitDependencies(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) Dependencies {
	var deps Dependencies

	// 1. Language model
	deps.LLMStatus = service.LLMStatus{
		Provider:   cfg.Ai.LLMProvider,
		Model:      cfg.Ai.LLMModel,
		Configured: cfg.LLMConfigured(),
	}
	provider, err := factory.NewLLMProvider(ctx, factory.Settings{
		Provider:           cfg.Ai.LLMProvider,
		Model:              cfg.Ai.LLMModel,
		APIKey:             cfg.Keys.GoogleGemini,
		OllamaBaseURL:      cfg.Ai.OllamaBaseURL,
		HuggingFaceKey:     cfg.Keys.HuggingFace,
		HuggingFaceBaseURL: cfg.Ai.HuggingFaceBaseURL,
	})
	switch {
	case err == nil:
		deps.LLM = provider
		deps.LLMStatus.Initialized = true
		sysLogger.Info("bootstrap", "LLM provider initialized", map[string]interface{}{
			"provider": provider.Name(),
			"model":    provider.Model(),
		})
	case errors.Is(err, llm.ErrNotConfigured):
		deps.LLMStatus.Error = err.Error()
		sysLogger.Warn("bootstrap", "LLM provider not configured, chat and suggestions disabled", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
		})
	default:
		deps.LLMStatus.Error = err.Error()
		sysLogger.Error("bootstrap", "Failed to initialize LLM provider", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"error":    err.Error(),
		})
	}

	// 2. Classifier
	deps.ModelStatus = service.ModelStatus{Path: cfg.Model.Path}
	f, err := forest.Load(cfg.Model.Path, sensor.FeatureColumns)
	if err != nil {
		deps.ModelStatus.Error = err.Error()
		sysLogger.Error("bootstrap", "ML model failed to load, prediction disabled", map[string]interface{}{
			"path":  cfg.Model.Path,
			"error": err.Error(),
		})
	} else {
		deps.Classifier = f
		deps.ModelStatus.Loaded = true
		deps.ModelStatus.Classes = f.Classes()
		sysLogger.Info("bootstrap", "ML model loaded", map[string]interface{}{
			"path":    cfg.Model.Path,
			"trees":   f.NumTrees(),
			"classes": f.Classes(),
		})
	}

	return deps
}

// Assemble wires repositories, services and controllers around deps.
func Assemble(cfg *config.Config, sysLogger logger.ILogger, deps Dependencies) *Container {
	// 1. Repositories
	sessionRepo := memory.NewSessionRepository(cfg.Chat.SessionTTL)

	// 2. Services
	chatbotService := service.NewChatbotService(deps.LLM, sessionRepo, sysLogger, service.ChatbotOptions{
		MaxHistory:  cfg.Chat.MaxHistory,
		SeedVariant: cfg.Chat.SeedVariant,
		Timeout:     cfg.Ai.RequestTimeout,
	})
	predictionService := service.NewPredictionService(deps.Classifier, deps.ModelStatus, sysLogger)
	suggestionService := service.NewSuggestionService(deps.LLM, cfg.Ai.RequestTimeout, sysLogger)
	healthService := service.NewHealthService(deps.LLM, deps.LLMStatus, deps.ModelStatus, sysLogger)

	// 3. Controllers
	return &Container{
		Logger:               sysLogger,
		ChatbotController:    controller.NewChatbotController(chatbotService),
		PredictionController: controller.NewPredictionController(predictionService),
		SuggestionController: controller.NewSuggestionController(suggestionService),
		HealthController:     controller.NewHealthController(healthService),
		SessionRepository:    sessionRepo,
		deps:                 deps,
	}
}

// Close releases provider clients and flushes the logger.
func (c *Container) Close() error {
	var errs []error
	if closer, ok := c.deps.LLM.(llm.Closer); ok {
		errs = append(errs, closer.Close())
	}
	// stdout sync fails on some terminals
	_ = c.Logger.Sync()
	return errors.Join(errs...)
}
