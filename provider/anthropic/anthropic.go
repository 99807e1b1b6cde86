package anthropic_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shreya-bani/AI-Intake-Assist/models"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	apiVersion       = "2023-06-01"
	defaultMaxTokens = 1024
)

// client implements the provider interface using Anthropic's messages API
type client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// request represents a request to the Anthropic messages API. Unlike the
// OpenAI shape, the system turn travels in a dedicated field.
type request struct {
	Model       string           `json:"model"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
	System      string           `json:"system,omitempty"`
	Messages    []models.Message `json:"messages"`
}

// response represents a response from the Anthropic messages API
type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewClient creates a new Anthropic client
func NewClient(apiKey, model, baseURL string, timeout time.Duration) *client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ChatCompletion generates a chat completion using Anthropic's API. A leading
// system message is lifted out of the sequence; max_tokens is mandatory here,
// so 0 falls back to the provider default.
func (c *client) ChatCompletion(ctx context.Context, messages []models.Message, temperature float64, maxTokens int) (string, error) {
	var system string
	conversation := make([]models.Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == models.RoleSystem {
			system = msg.Content
			continue
		}
		conversation = append(conversation, msg)
	}

	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	requestBody := request{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      system,
		Messages:    conversation,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Anthropic API returned status %d: %s", resp.StatusCode, body)
	}

	var anthropicResp response
	if err := json.NewDecoder(resp.Body).Decode(&anthropicResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(anthropicResp.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return anthropicResp.Content[0].Text, nil
}

// ValidateConfig checks that the API key is present and well-formed
func (c *client) ValidateConfig() error {
	if c.apiKey == "" {
		return fmt.Errorf("Anthropic API key is required")
	}
	if !strings.HasPrefix(c.apiKey, "sk-ant-") {
		return fmt.Errorf("invalid Anthropic API key format")
	}
	return nil
}
