package server

import (
	"time"

	"github.com/shreya-bani/AI-Intake-Assist/models"
)

// MessageRequest carries one user message into a session
type MessageRequest struct {
	Message string `json:"message"`
}

// MessageResponse returns the assistant reply plus the extraction outcome
// for the turn. UpdatedFields is the only change signal callers get.
type MessageResponse struct {
	AssistantMessage string       `json:"assistant_message"`
	UpdatedFields    models.Delta `json:"updated_fields"`
	IsComplete       bool         `json:"is_complete"`
}

// SessionCreateResponse returns the new session id and opening greeting
type SessionCreateResponse struct {
	SessionID      string `json:"session_id"`
	InitialMessage string `json:"initial_message"`
}

// SessionStateResponse is the full snapshot of a session
type SessionStateResponse struct {
	SessionID           string            `json:"session_id"`
	ConversationHistory []models.Message  `json:"conversation_history"`
	FormData            models.IntakeForm `json:"form_data"`
	IsComplete          bool              `json:"is_complete"`
	CreatedAt           time.Time         `json:"created_at"`
}
