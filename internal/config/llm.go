package config

import (
	"strings"

	"github.com/jpsleep/sleepcheck/internal/llm"
)

// ProviderNone disables LLM advice.
const ProviderNone = "none"

// ProviderConfig resolves the LLM section into a provider configuration.
// ok is false when advice is disabled or no key can be found.
func (c LLMConfig) ProviderConfig() (cfg llm.Config, ok bool) {
	provider := strings.ToLower(strings.TrimSpace(c.Provider))
	switch provider {
	case ProviderNone:
		return llm.Config{}, false
	case "":
		cfg, ok = llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, false
		}
	default:
		cfg = llm.DefaultConfig()
		cfg.Provider = provider
		if key := llm.StandardKey(provider); key != "" {
			cfg.SetAPIKey(key)
		}
	}

	apply := func(k ProviderKeys, key, model, baseURL *string) {
		if k.APIKey != "" {
			*key = k.APIKey
		}
		if k.Model != "" {
			*model = k.Model
		}
		if k.BaseURL != "" {
			*baseURL = k.BaseURL
		}
	}
	apply(c.Anthropic, &cfg.Anthropic.APIKey, &cfg.Anthropic.Model, &cfg.Anthropic.BaseURL)
	apply(c.OpenAI, &cfg.OpenAI.APIKey, &cfg.OpenAI.Model, &cfg.OpenAI.BaseURL)
	apply(c.Gemini, &cfg.Gemini.APIKey, &cfg.Gemini.Model, &cfg.Gemini.BaseURL)
	apply(c.OpenRouter, &cfg.OpenRouter.APIKey, &cfg.OpenRouter.Model, &cfg.OpenRouter.BaseURL)

	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	return cfg, true
}
