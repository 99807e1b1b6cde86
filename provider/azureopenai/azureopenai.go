package azure_provider

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

const defaultAPIVersion = "2024-12-01-preview"

// client implements the provider interface using Azure OpenAI. The model
// name is the Azure deployment name and is part of the request URL.
type client struct {
	apiKey     string
	endpoint   string
	deployment string
	apiVersion string
	httpClient *http.Client
}

// request represents a request to the Azure OpenAI chat completions API
type request struct {
	Messages    []models.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

// response represents a response from the Azure OpenAI API
type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a new Azure OpenAI client
func NewClient(apiKey, endpoint, deployment, apiVersion string, timeout time.Duration) *client {
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &client{
		apiKey:     apiKey,
		endpoint:   strings.TrimRight(endpoint, "/"),
		deployment: deployment,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ChatCompletion generates a chat completion using Azure OpenAI's API
func (c *client) ChatCompletion(ctx context.Context, messages []models.Message, temperature float64, maxTokens int) (string, error) {
	requestBody := request{
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s", c.endpoint, c.deployment, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Azure OpenAI API returned status %d: %s", resp.StatusCode, body)
	}

	var azureResp response
	if err := json.NewDecoder(resp.Body).Decode(&azureResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(azureResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return azureResp.Choices[0].Message.Content, nil
}

// ValidateConfig checks that key, endpoint and deployment are all present
func (c *client) ValidateConfig() error {
	if c.apiKey == "" {
		return fmt.Errorf("Azure OpenAI API key is required")
	}
	if c.endpoint == "" {
		return fmt.Errorf("Azure OpenAI endpoint is required")
	}
	if c.deployment == "" {
		return fmt.Errorf("Azure OpenAI deployment name (model) is required")
	}
	return nil
}
