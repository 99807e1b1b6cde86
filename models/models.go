package models

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Role identifies the author of a conversation message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in the conversation
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session holds one patient interaction: the conversation so far plus the
// form filled from it. Owned exclusively by the session store.
type Session struct {
	ID          string     `json:"session_id"`
	Turns       []Message  `json:"conversation_history"`
	Form        IntakeForm `json:"form_data"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUpdated time.Time  `json:"last_updated"`
}

// SessionUpdate is a partial update to a stored session. Nil fields are
// left untouched; non-nil fields replace the stored value wholesale.
type SessionUpdate struct {
	Turns *[]Message
	Form  *IntakeForm
}
