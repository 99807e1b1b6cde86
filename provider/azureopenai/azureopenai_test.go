package azure_provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shreya-bani/AI-Intake-Assist/models"
)

func TestChatCompletionDeploymentURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/deployments/gpt-4o/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api-version"); got != "2024-12-01-preview" {
			t.Errorf("unexpected api-version: %s", got)
		}
		if got := r.Header.Get("api-key"); got != "azure-key" {
			t.Errorf("unexpected api-key header: %s", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Hello!"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("azure-key", srv.URL, "gpt-4o", "", 5*time.Second)
	got, err := c.ChatCompletion(context.Background(), []models.Message{{Role: models.RoleUser, Content: "hi"}}, 0.7, 0)
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if got != "Hello!" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()
	if err := NewClient("", "https://x", "gpt-4o", "", time.Second).ValidateConfig(); err == nil {
		t.Fatalf("empty key accepted")
	}
	if err := NewClient("k", "", "gpt-4o", "", time.Second).ValidateConfig(); err == nil {
		t.Fatalf("empty endpoint accepted")
	}
	if err := NewClient("k", "https://x", "", "", time.Second).ValidateConfig(); err == nil {
		t.Fatalf("empty deployment accepted")
	}
	if err := NewClient("k", "https://x", "gpt-4o", "", time.Second).ValidateConfig(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}
