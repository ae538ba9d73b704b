package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-haiku-4-5",
	}
}

func adviceRequest() Request {
	return Request{
		System:    "You are a sleep hygiene coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Sleep: 4.5 hours. Stress: 8/10. Detected conditions: Insomnia"}},
		Schema:    adviceTestSchema(),
		MaxTokens: 512,
	}
}

func anthropicMessage(stop string, content ...map[string]any) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     content,
		"model":       "claude-haiku-4-5",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 120, "output_tokens": 45},
	}
}

func TestAnthropicProvider_ForcesAdviceTool(t *testing.T) {
	var sent map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &sent); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("tool_use", map[string]any{
			"type":  "tool_use",
			"id":    "toolu_1",
			"name":  "advice-test",
			"input": map[string]any{"summary": "Short nights and high stress.", "suggestions": []string{"Keep a fixed wake time"}},
		}))
	})

	resp, err := p.Generate(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var advice struct {
		Summary     string   `json:"summary"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(resp.Content, &advice); err != nil {
		t.Fatalf("content is not advice JSON: %v (%s)", err, resp.Content)
	}
	if advice.Summary != "Short nights and high stress." || len(advice.Suggestions) != 1 {
		t.Fatalf("unexpected advice: %+v", advice)
	}
	if resp.StopReason != StopEnd {
		t.Fatalf("expected stop reason %q, got %q", StopEnd, resp.StopReason)
	}
	if resp.Usage.TotalTokens != 165 {
		t.Fatalf("expected 165 total tokens, got %d", resp.Usage.TotalTokens)
	}

	choice, _ := sent["tool_choice"].(map[string]any)
	if choice["type"] != "tool" || choice["name"] != "advice-test" {
		t.Fatalf("tool_choice = %v", sent["tool_choice"])
	}
	tools, _ := sent["tools"].([]any)
	if len(tools) != 1 {
		t.Fatalf("expected one tool, got %v", sent["tools"])
	}
	schema := tools[0].(map[string]any)["input_schema"].(map[string]any)
	if schema["additionalProperties"] != false {
		t.Errorf("additionalProperties not carried: %v", schema)
	}
	if req, _ := schema["required"].([]any); len(req) != 2 {
		t.Errorf("required = %v", schema["required"])
	}
	if _, ok := sent["output_config"]; ok {
		t.Error("output_config should not be sent alongside a forced tool")
	}
}

func TestAnthropicProvider_TextFallbackStripsFence(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("end_turn", map[string]any{
			"type": "text",
			"text": "```json\n{\"summary\":\"Short sleep.\",\"suggestions\":[\"Wind down earlier\"]}\n```",
		}))
	})

	resp, err := p.Generate(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"summary":"Short sleep.","suggestions":["Wind down earlier"]}` {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestAnthropicProvider_InvalidAdvice(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("tool_use", map[string]any{
			"type":  "tool_use",
			"id":    "toolu_1",
			"name":  "advice-test",
			"input": map[string]any{"summary": "ok", "suggestions": []string{"a", "b", "c", "d"}},
		}))
	})

	_, err := p.Generate(context.Background(), adviceRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_TruncatedAdvice(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("max_tokens", map[string]any{
			"type": "text",
			"text": `{"summary":"Short nights and`,
		}))
	})

	_, err := p.Generate(context.Background(), adviceRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
	if IsTransient(err) {
		t.Fatal("truncation should not be retried")
	}
}

func TestAnthropicProvider_RateLimit(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "Rate limit exceeded"},
		})
	})

	_, err := p.Generate(context.Background(), adviceRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_ServerError(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "Internal server error"},
		})
	})

	_, err := p.Generate(context.Background(), adviceRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_Name(t *testing.T) {
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "sk-test", Model: "claude-haiku", BaseURL: "http://localhost:1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != ProviderAnthropic {
		t.Fatalf("expected %q, got %q", ProviderAnthropic, p.Name())
	}
	if p.ModelID() != "claude-haiku-4-5" {
		t.Fatalf("expected resolved model, got %q", p.ModelID())
	}
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-5"},
		{"claude-haiku", "claude-haiku-4-5"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
