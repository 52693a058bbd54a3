package service

import (
	"context"
	"errors"
	"fmt"

	"plantcare-be/internal/dto"
	"plantcare-be/internal/pkg/apperror"
	"plantcare-be/internal/pkg/logger"
	"plantcare-be/pkg/sensor"
)

const predictionModule = "prediction"

type IPredictionService interface {
	Predict(ctx context.Context, body []byte) (*dto.PredictionResponse, error)
	ModelHealth(ctx context.Context) *dto.ModelHealthResponse
}

type predictionService struct {
	classifier Classifier
	status     ModelStatus
	logger     logger.ILogger
}

// NewPredictionService wires the classifier loaded at startup. classifier is
// nil when the artifact could not be loaded.
func NewPredictionService(classifier Classifier, status ModelStatus, sysLogger logger.ILogger) IPredictionService {
	return &predictionService{
		classifier: classifier,
		status:     status,
		logger:     sysLogger,
	}
}

func (ps *predictionService) Predict(ctx context.Context, body []byte) (*dto.PredictionResponse, error) {
	if ps.classifier == nil {
		return nil, apperror.Unavailable("Machine learning model is not available.")
	}

	reading, err := sensor.ParseReading(body)
	if err != nil {
		return nil, apperror.BadRequest("No JSON data received")
	}
	if missing := reading.Missing(); len(missing) > 0 {
		ps.logger.Warn(predictionModule, "Prediction rejected: missing features", map[string]interface{}{
			"missing": missing,
		})
		return nil, apperror.MissingFields("Missing required features", missing)
	}

	vec, err := reading.Vector()
	if err != nil {
		var invalid *sensor.InvalidValueError
		if errors.As(err, &invalid) {
			return nil, apperror.BadRequest("Invalid value for feature %s: expected a number", invalid.Field)
		}
		return nil, apperror.BadRequest("%s", err.Error())
	}

	pred, err := ps.classifier.Predict(vec)
	if err != nil {
		ps.logger.Error(predictionModule, "Error during prediction", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperror.Internal(fmt.Sprintf("An error occurred during prediction: %v", err), err)
	}

	ps.logger.Info(predictionModule, "Prediction served", map[string]interface{}{
		"prediction": pred.Label,
	})

	return &dto.PredictionResponse{
		Prediction:    pred.Label,
		Probabilities: pred.Probabilities,
	}, nil
}

func (ps *predictionService) ModelHealth(ctx context.Context) *dto.ModelHealthResponse {
	if ps.classifier == nil {
		return &dto.ModelHealthResponse{
			Status:      "error",
			ModelLoaded: false,
			Message:     "ML model is not loaded.",
		}
	}
	return &dto.ModelHealthResponse{
		Status:      "ok",
		ModelLoaded: true,
		Message:     "ML model loaded successfully.",
		Classes:     ps.classifier.Classes(),
	}
}
