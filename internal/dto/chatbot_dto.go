package dto

import "time"

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ChatTurnDTO struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatHistoryResponse struct {
	SessionId string        `json:"session_id"`
	Turns     []ChatTurnDTO `json:"turns"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

type DeleteSessionResponse struct {
	SessionId string `json:"session_id"`
	Deleted   bool   `json:"deleted"`
}
