package llm

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.0-flash-001",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.0-flash-001" {
			t.Errorf("model = %q", p.ModelID())
		}
		if p.Name() != ProviderOpenRouter {
			t.Errorf("name = %q, want %q", p.Name(), ProviderOpenRouter)
		}
		if p.mode != schemaInPrompt {
			t.Errorf("mode = %d, want schemaInPrompt", p.mode)
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "meta-llama/llama-3-8b"}); err == nil {
			t.Fatal("expected error for empty API key")
		}
	})
}

func TestOpenRouter_SchemaInSystemPrompt(t *testing.T) {
	server, sent := captureServer(t, http.StatusOK, chatCompletion(
		"```json\n{\"summary\":\"Short nights.\",\"suggestions\":[\"Keep a fixed wake time\"]}\n```", "stop"))
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "meta-llama/llama-3.1-8b-instruct",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"summary":"Short nights.","suggestions":["Keep a fixed wake time"]}` {
		t.Fatalf("content = %s", resp.Content)
	}

	format, _ := (*sent)["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("response_format = %v", format)
	}
	msgs, _ := (*sent)["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(msgs))
	}
	system := msgs[0].(map[string]any)
	content, _ := system["content"].(string)
	if system["role"] != "system" || !strings.HasPrefix(content, "You are a sleep hygiene coach.") {
		t.Fatalf("system message = %v", system)
	}
	for _, want := range []string{"advice-test", `"suggestions"`, `"maxItems": 3`} {
		if !strings.Contains(content, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
