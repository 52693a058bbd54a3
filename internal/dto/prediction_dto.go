package dto

type PredictionResponse struct {
	Prediction    string             `json:"prediction"`
	Probabilities map[string]float64 `json:"probabilities"`
}

type ModelHealthResponse struct {
	Status      string   `json:"status"`
	ModelLoaded bool     `json:"model_loaded"`
	Message     string   `json:"message"`
	Classes     []string `json:"classes,omitempty"`
}
