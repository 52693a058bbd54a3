package service

import "plantcare-be/pkg/forest"

// LLMStatus records how the language-model provider came up at startup.
type LLMStatus struct {
	Provider    string
	Model       string
	Configured  bool
	Initialized bool
	Error       string
}

// ModelStatus records how the classifier artifact came up at startup.
type ModelStatus struct {
	Path    string
	Loaded  bool
	Classes []string
	Error   string
}

// Classifier is the subset of *forest.Forest the prediction gateway needs.
type Classifier interface {
	Predict(x []float64) (forest.Prediction, error)
	Classes() []string
}

var _ Classifier = (*forest.Forest)(nil)
