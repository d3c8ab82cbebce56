package assistant

import "FinanceTracker/pkg/gemini"

const (
	// AssistantUnavailableReply is returned instead of an error when no Gemini key is configured.
	AssistantUnavailableReply = "The AI assistant is currently unavailable because the API key is not configured."
	// ChatErrorReply is translated by the client.
	ChatErrorReply = "chat_error"
)

type CategorizeRequest struct {
	UserID      string `json:"-"`
	Description string `json:"description" validate:"required,max=255"`
	Locale      string `json:"locale" validate:"omitempty,max=10"`
}

type CategorizeResponse struct {
	Category string `json:"category"`
	Fallback bool   `json:"fallback"`
}

type ChatRequest struct {
	UserID  string           `json:"-"`
	Message string           `json:"message" validate:"required,max=4000"`
	History []gemini.Message `json:"history" validate:"omitempty,max=100,dive"`
}

type ChatResponse struct {
	Reply       string `json:"reply"`
	Unavailable bool   `json:"unavailable"`
}
