package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/shreya-bani/AI-Intake-Assist/config"
	"github.com/shreya-bani/AI-Intake-Assist/models"
	anthropic_provider "github.com/shreya-bani/AI-Intake-Assist/provider/anthropic"
	azure_provider "github.com/shreya-bani/AI-Intake-Assist/provider/azureopenai"
	openai_provider "github.com/shreya-bani/AI-Intake-Assist/provider/openai"
)

// Client represents different LLM providers
type Client string

const (
	OpenAI      Client = "openai"
	Anthropic   Client = "anthropic"
	AzureOpenAI Client = "azure_openai"
)

// Provider is the interface that all LLM implementations must satisfy.
// Callers always pass the uniform message sequence, optionally starting with
// a system turn; each implementation translates that into its backend's
// shape. maxTokens 0 means the provider's own default.
type Provider interface {
	ChatCompletion(ctx context.Context, messages []models.Message, temperature float64, maxTokens int) (string, error)
	ValidateConfig() error
}

// NewProvider creates a new LLM client based on the provided configuration.
// Credential problems surface here, at process start, not at request time.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	var p Provider
	switch Client(cfg.Provider) {
	case OpenAI:
		p = openai_provider.NewClient(cfg.OpenAIAPIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
	case Anthropic:
		p = anthropic_provider.NewClient(cfg.AnthropicAPIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
	case AzureOpenAI:
		p = azure_provider.NewClient(cfg.Azure.APIKey, cfg.Azure.Endpoint, cfg.Model, cfg.Azure.APIVersion, cfg.Timeout)
	default:
		return nil, errors.New("unsupported LLM provider: " + cfg.Provider)
	}

	if err := p.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("%s provider configuration: %w", cfg.Provider, err)
	}
	return p, nil
}
