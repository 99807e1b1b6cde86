package conversation

import (
	"context"
	"fmt"

	"github.com/shreya-bani/AI-Intake-Assist/models"
	"github.com/shreya-bani/AI-Intake-Assist/provider"
	"github.com/shreya-bani/AI-Intake-Assist/session"
)

// replyTemperature favors natural, varied phrasing on the dialogue path
const replyTemperature = 0.7

const initialMessage = "Hi! I'm here to help you get checked in today. To get started, could you tell me your name?"

// Service drives the patient-facing dialogue: it owns the persona turn,
// appends user/assistant turns and keeps the stored history consistent.
type Service struct {
	store session.Store
	llm   provider.Provider
}

func NewService(store session.Store, llm provider.Provider) *Service {
	return &Service{store: store, llm: llm}
}

// Start seeds the session with the persona turn and the opening greeting and
// returns the greeting. Calling it twice overwrites prior history; callers
// invoke it exactly once, right after creating the session.
func (s *Service) Start(sessionID string) (string, error) {
	turns := []models.Message{
		{Role: models.RoleSystem, Content: systemPrompt},
		{Role: models.RoleAssistant, Content: initialMessage},
	}
	if err := s.store.Update(sessionID, models.SessionUpdate{Turns: &turns}); err != nil {
		return "", err
	}
	return initialMessage, nil
}

// ProcessUserMessage appends the user turn, asks the provider for a reply
// over the entire accumulated history and appends that too. The turn slice is
// built locally and persisted only after a successful provider call, so a
// failed reply leaves the stored history untouched.
func (s *Service) ProcessUserMessage(ctx context.Context, sessionID, userMessage string) (string, []models.Message, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", nil, err
	}

	turns := append(sess.Turns, models.Message{Role: models.RoleUser, Content: userMessage})

	reply, err := s.llm.ChatCompletion(ctx, turns, replyTemperature, 0)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate response: %w", err)
	}

	turns = append(turns, models.Message{Role: models.RoleAssistant, Content: reply})
	if err := s.store.Update(sessionID, models.SessionUpdate{Turns: &turns}); err != nil {
		return "", nil, err
	}

	return reply, turns, nil
}

// ForExtraction returns the session's history without the persona turn, the
// projection the extraction pipeline works from.
func (s *Service) ForExtraction(sessionID string) ([]models.Message, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	turns := make([]models.Message, 0, len(sess.Turns))
	for _, msg := range sess.Turns {
		if msg.Role == models.RoleSystem {
			continue
		}
		turns = append(turns, msg)
	}
	return turns, nil
}
