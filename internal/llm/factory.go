package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// NewProvider creates a Provider from configuration, wrapped as
// caller → timeout → retry → recording → base.
func NewProvider(ctx context.Context, cfg Config, rec EventRecorder, log zerolog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	llmLog := log.With().Str("component", "llm").Logger()
	recorded := WithRecording(base, rec, llmLog)
	retried := WithRetry(recorded, cfg.Retry, llmLog)
	return WithTimeout(retried, cfg.Timeout), nil
}
