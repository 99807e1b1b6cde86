package anthropic_provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shreya-bani/AI-Intake-Assist/models"
)

func TestChatCompletionExtractsSystemTurn(t *testing.T) {
	t.Parallel()

	var captured request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "sk-ant-test" {
			t.Errorf("unexpected api key header: %s", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("unexpected version header: %s", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": "Hi!"}},
		})
	}))
	defer srv.Close()

	c := NewClient("sk-ant-test", "claude-3-sonnet", srv.URL, 5*time.Second)
	got, err := c.ChatCompletion(context.Background(), []models.Message{
		{Role: models.RoleSystem, Content: "persona"},
		{Role: models.RoleUser, Content: "hello"},
	}, 0.7, 0)
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if got != "Hi!" {
		t.Fatalf("unexpected completion: %q", got)
	}

	if captured.System != "persona" {
		t.Fatalf("system turn not lifted into system field: %+v", captured)
	}
	for _, msg := range captured.Messages {
		if msg.Role == models.RoleSystem {
			t.Fatalf("system turn left in message sequence: %+v", captured.Messages)
		}
	}
	if captured.MaxTokens != defaultMaxTokens {
		t.Fatalf("mandatory max_tokens default not applied: %d", captured.MaxTokens)
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()
	if err := NewClient("", "m", "", time.Second).ValidateConfig(); err == nil {
		t.Fatalf("empty key accepted")
	}
	if err := NewClient("sk-openai-style", "m", "", time.Second).ValidateConfig(); err == nil {
		t.Fatalf("key without sk-ant- prefix accepted")
	}
	if err := NewClient("sk-ant-test", "m", "", time.Second).ValidateConfig(); err != nil {
		t.Fatalf("valid key rejected: %v", err)
	}
}
