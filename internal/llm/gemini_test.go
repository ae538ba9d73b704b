package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestGeminiProvider(t *testing.T, model string, status int, reply map[string]any) (*GeminiProvider, *string) {
	t.Helper()
	sent := new(string)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var m map[string]any
		if err := json.Unmarshal(body, &m); err != nil {
			t.Errorf("decode request: %v", err)
		}
		compact, _ := json.Marshal(m)
		*sent = string(compact)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", Model: model, BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	return p, sent
}

func geminiReply(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 30, "candidatesTokenCount": 20, "totalTokenCount": 50},
	}
}

func TestGeminiProvider_AdviceJSONSchema(t *testing.T) {
	p, sent := newTestGeminiProvider(t, "gemini-flash", http.StatusOK,
		geminiReply(`{"summary":"Short nights and high stress.","suggestions":["Keep a fixed wake time"]}`, "STOP"))

	resp, err := p.Generate(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 50 || resp.StopReason != StopEnd {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Model != "gemini-2.5-flash" {
		t.Fatalf("model = %q", resp.Model)
	}
	for _, want := range []string{`"responseJsonSchema":{`, `"additionalProperties":false`, `"responseMimeType":"application/json"`, `"thinkingBudget":0`} {
		if !strings.Contains(*sent, want) {
			t.Errorf("request missing %s:\n%s", want, *sent)
		}
	}
}

func TestGeminiProvider_ProKeepsThinking(t *testing.T) {
	p, sent := newTestGeminiProvider(t, "gemini-pro", http.StatusOK,
		geminiReply(`{"summary":"ok","suggestions":[]}`, "STOP"))

	if _, err := p.Generate(context.Background(), adviceRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(*sent, "thinkingBudget") {
		t.Errorf("pro request should not pin a thinking budget:\n%s", *sent)
	}
}

func TestGeminiProvider_MaxTokens(t *testing.T) {
	p, _ := newTestGeminiProvider(t, "gemini-flash", http.StatusOK,
		geminiReply(`{"summary":"Short nights`, "MAX_TOKENS"))

	_, err := p.Generate(context.Background(), adviceRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestGeminiProvider_RateLimit(t *testing.T) {
	p, _ := newTestGeminiProvider(t, "gemini-flash", http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"code": 429, "message": "Resource exhausted", "status": "RESOURCE_EXHAUSTED"},
	})

	_, err := p.Generate(context.Background(), adviceRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestGeminiThinking(t *testing.T) {
	if cfg := geminiThinking("gemini-2.5-flash"); cfg == nil || cfg.ThinkingBudget == nil || *cfg.ThinkingBudget != 0 {
		t.Errorf("flash: expected zero budget, got %+v", cfg)
	}
	if cfg := geminiThinking("gemini-2.5-pro"); cfg != nil {
		t.Errorf("pro: expected nil, got %+v", cfg)
	}
}

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
