package dto

type HealthResponse struct {
	Status   string         `json:"status"`
	Services HealthServices `json:"services"`
}

type HealthServices struct {
	MLModel       MLModelHealth `json:"ml_model"`
	GeminiChatbot ChatbotHealth `json:"gemini_chatbot"`
}

type MLModelHealth struct {
	Status string `json:"status"`
	Loaded bool   `json:"loaded"`
}

type ChatbotHealth struct {
	Status           string `json:"status"`
	Configured       bool   `json:"configured"`
	ModelInitialized bool   `json:"model_initialized"`
	Accessible       bool   `json:"accessible"`
	Provider         string `json:"provider,omitempty"`
	Model            string `json:"model,omitempty"`
}
