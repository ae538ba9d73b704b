package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestMockProvider_ReturnsAdviceInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"summary":"Short nights.","suggestions":["Keep a fixed wake time"]}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Content: json.RawMessage(`{"summary":"Mostly fine.","suggestions":[]}`)},
	)

	resp1, err := mock.Generate(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(resp1.Content), "Short nights.") {
		t.Fatalf("first response = %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 || resp1.Model != ProviderMock {
		t.Fatalf("unexpected response: %+v", resp1)
	}
	if resp1.StopReason != StopEnd {
		t.Fatalf("expected stop reason %q, got %q", StopEnd, resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), adviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(resp2.Content), "Mostly fine.") {
		t.Fatalf("second response = %s", resp2.Content)
	}
}

func TestMockProvider_ValidatesAdvice(t *testing.T) {
	tests := []struct {
		name    string
		resp    MockResponse
		wantErr any
	}{
		{"missing suggestions", MockResponse{Content: json.RawMessage(`{"summary":"ok"}`)}, &ErrInvalidResponse{}},
		{"prose instead of JSON", MockResponse{Content: json.RawMessage(`Try to sleep more.`)}, &ErrInvalidResponse{}},
		{"truncated", MockResponse{Content: json.RawMessage(`{"summary":"Short`), StopReason: StopMaxTokens}, &ErrMaxTokensExceeded{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMockProvider(tt.resp).Generate(context.Background(), adviceRequest())
			switch tt.wantErr.(type) {
			case *ErrInvalidResponse:
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
				}
			case *ErrMaxTokensExceeded:
				var maxTok *ErrMaxTokensExceeded
				if !errors.As(err, &maxTok) {
					t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
				}
			}
		})
	}
}

func TestMockProvider_NoSchemaPassesTextThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage("  plain notes  ")})
	resp, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != "  plain notes  " {
		t.Fatalf("content = %q", resp.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), adviceRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), adviceRequest())

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema.Name != "advice-test" {
		t.Fatalf("recorded schema = %q", mock.Calls[0].Schema.Name)
	}
	if mock.ModelID() != ProviderMock || mock.Name() != ProviderMock {
		t.Fatalf("unexpected identity %q/%q", mock.ModelID(), mock.Name())
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"summary":"ok"}`, `{"summary":"ok"}`},
		{"  {\"summary\":\"ok\"}\n", `{"summary":"ok"}`},
		{"```json\n{\"summary\":\"ok\"}\n```", `{"summary":"ok"}`},
		{"```\n{\"summary\":\"ok\"}\n```\n", `{"summary":"ok"}`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposeAdvice)
	if p := PurposeFrom(ctx); p != PurposeAdvice {
		t.Fatalf("expected %q, got %q", PurposeAdvice, p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearStandardKeys(t *testing.T) {
	t.Helper()
	for _, k := range standardKeys {
		t.Setenv(k.env, "")
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearStandardKeys(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider")
	}
	if cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("got provider %q key %q", cfg.Provider, cfg.Anthropic.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("discovered config invalid: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != ProviderGemini {
		t.Fatalf("gemini should win, got %q", cfg.Provider)
	}
}

func TestStandardKey(t *testing.T) {
	clearStandardKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	if got := StandardKey(ProviderOpenAI); got != "sk-oai" {
		t.Fatalf("StandardKey = %q", got)
	}
	if got := StandardKey(ProviderMock); got != "" {
		t.Fatalf("mock key = %q", got)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != ProviderMock {
		t.Fatalf("expected mock, got %q", p.Name())
	}
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}
