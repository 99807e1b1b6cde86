package extraction

import (
	"context"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shreya-bani/AI-Intake-Assist/models"
	"github.com/shreya-bani/AI-Intake-Assist/provider"
	"github.com/shreya-bani/AI-Intake-Assist/session"
)

// extractionTemperature keeps structured output near-deterministic
const extractionTemperature = 0.3

var extractionFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "intake_extraction_failures_total",
	Help: "Extraction passes absorbed into an empty delta",
})

// Service re-reads the whole conversation each turn, asks the provider for a
// structured extraction, merges it into the stored form and reports the delta.
type Service struct {
	store  session.Store
	llm    provider.Provider
	logger *log.Logger
}

func NewService(store session.Store, llm provider.Provider) *Service {
	return &Service{
		store:  store,
		llm:    llm,
		logger: log.New(log.Writer(), "[EXTRACT] ", log.LstdFlags),
	}
}

// Extract runs one extraction pass over the given turns. Extraction is
// best-effort enrichment: any failure (provider error, unparseable response,
// vanished session) is logged and becomes an empty delta, never an error.
// The next turn re-scans full history, so a lost pass is recoverable.
func (s *Service) Extract(ctx context.Context, sessionID string, turns []models.Message) models.Delta {
	delta, err := s.extract(ctx, sessionID, turns)
	if err != nil {
		extractionFailures.Inc()
		s.logger.Printf("extraction failed for session %s: %v", sessionID, err)
		return models.Delta{}
	}
	return delta
}

func (s *Service) extract(ctx context.Context, sessionID string, turns []models.Message) (models.Delta, error) {
	// The rendered history travels as a single standalone user turn; the
	// extraction path carries no system persona.
	prompt := renderPrompt(turns)
	messages := []models.Message{{Role: models.RoleUser, Content: prompt}}

	raw, err := s.llm.ChatCompletion(ctx, messages, extractionTemperature, 0)
	if err != nil {
		return models.Delta{}, fmt.Errorf("failed to extract data: %w", err)
	}

	ex, err := parseResponse(raw)
	if err != nil {
		return models.Delta{}, err
	}

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return models.Delta{}, err
	}

	merged := sess.Form.Merge(ex)
	if err := s.store.Update(sessionID, models.SessionUpdate{Form: &merged}); err != nil {
		return models.Delta{}, err
	}

	return merged.Diff(sess.Form), nil
}
