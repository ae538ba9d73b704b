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

	openai "github.com/sashabaranov/go-openai"
)

// captureServer serves one canned chat completion and keeps the decoded
// request body.
func captureServer(t *testing.T, status int, reply map[string]any) (*httptest.Server, *map[string]any) {
	t.Helper()
	sent := new(map[string]any)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, sent); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(server.Close)
	return server, sent
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func newTestOpenAIProvider(t *testing.T, server *httptest.Server, mode schemaMode) *OpenAIProvider {
	t.Helper()
	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o-mini",
		name:   ProviderOpenAI,
		mode:   mode,
	}
}

func TestOpenAIProvider_StrictAdviceSchema(t *testing.T) {
	server, sent := captureServer(t, http.StatusOK,
		chatCompletion(`{"summary":"Short sleep and high stress.","suggestions":["Keep a fixed wake time"]}`, "stop"))
	p := newTestOpenAIProvider(t, server, schemaStrict)

	resp, err := p.Generate(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != StopEnd {
		t.Fatalf("expected stop reason %q, got %q", StopEnd, resp.StopReason)
	}

	format, _ := (*sent)["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Fatalf("response_format = %v", format)
	}
	js, _ := format["json_schema"].(map[string]any)
	if js["name"] != "advice-test" || js["strict"] != true {
		t.Fatalf("json_schema = %v", js)
	}
	raw, _ := json.Marshal(js["schema"])
	for _, dropped := range []string{"maxItems", "minLength", "minimum", "maximum"} {
		if strings.Contains(string(raw), dropped) {
			t.Errorf("strict schema still carries %q: %s", dropped, raw)
		}
	}
	if !strings.Contains(string(raw), `"additionalProperties":false`) {
		t.Errorf("strict schema lost additionalProperties: %s", raw)
	}
}

func TestOpenAIProvider_LocalValidationKeepsDroppedBounds(t *testing.T) {
	server, _ := captureServer(t, http.StatusOK,
		chatCompletion(`{"summary":"ok","suggestions":["a","b","c","d"]}`, "stop"))
	p := newTestOpenAIProvider(t, server, schemaStrict)

	_, err := p.Generate(context.Background(), adviceRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_LengthIsTruncation(t *testing.T) {
	server, _ := captureServer(t, http.StatusOK, chatCompletion(`{"summary":"Short`, "length"))
	p := newTestOpenAIProvider(t, server, schemaStrict)

	_, err := p.Generate(context.Background(), adviceRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Refusal(t *testing.T) {
	reply := chatCompletion("", "stop")
	reply["choices"].([]map[string]any)[0]["message"] = map[string]any{
		"role":    "assistant",
		"refusal": "I can't give medical advice.",
	}
	server, _ := captureServer(t, http.StatusOK, reply)
	p := newTestOpenAIProvider(t, server, schemaStrict)

	_, err := p.Generate(context.Background(), adviceRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) || !strings.Contains(err.Error(), "refused") {
		t.Fatalf("expected refusal as ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	server, _ := captureServer(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"type": "tokens", "message": "Rate limit exceeded", "code": "rate_limit_exceeded"},
	})
	p := newTestOpenAIProvider(t, server, schemaStrict)

	_, err := p.Generate(context.Background(), adviceRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	server, _ := captureServer(t, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"type": "server_error", "message": "Internal server error"},
	})
	p := newTestOpenAIProvider(t, server, schemaStrict)

	_, err := p.Generate(context.Background(), adviceRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestStrictDefinition(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"format":      map[string]any{"type": "string", "maxLength": 10},
			"suggestions": map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}, "maxItems": 5},
		},
		"required": []any{"format", "suggestions"},
	}

	got := strictDefinition(def)
	props := got["properties"].(map[string]any)
	if _, ok := props["format"]; !ok {
		t.Fatal("property named format was dropped")
	}
	if _, ok := props["format"].(map[string]any)["maxLength"]; ok {
		t.Error("maxLength kept")
	}
	sugg := props["suggestions"].(map[string]any)
	if _, ok := sugg["maxItems"]; ok {
		t.Error("maxItems kept")
	}
	if _, ok := sugg["items"].(map[string]any)["minLength"]; ok {
		t.Error("nested minLength kept")
	}
	if _, ok := def["properties"].(map[string]any)["suggestions"].(map[string]any)["maxItems"]; !ok {
		t.Error("input definition was modified")
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" || p.Name() != ProviderOpenAI || p.mode != schemaStrict {
		t.Fatalf("unexpected provider: model=%q name=%q mode=%d", p.ModelID(), p.Name(), p.mode)
	}
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
