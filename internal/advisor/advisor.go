// Package advisor asks an LLM for short personal notes on an assessment.
// The notes sit beside the rule-based labels and never replace them.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/llm"
	"github.com/rs/zerolog"
)

// Advice is the parsed LLM output.
type Advice struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by the CLI and TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}

// Advisor generates Advice through an llm.Provider.
type Advisor struct {
	provider llm.Provider
	cfg      Config
	log      zerolog.Logger
}

// New returns an Advisor. A nil provider yields a nil Advisor, which
// callers treat as "advice disabled".
func New(provider llm.Provider, cfg Config, log zerolog.Logger) *Advisor {
	if provider == nil {
		return nil
	}
	return &Advisor{
		provider: provider,
		cfg:      cfg,
		log:      log.With().Str("component", "advisor").Logger(),
	}
}

// Enabled reports whether a is usable.
func (a *Advisor) Enabled() bool { return a != nil }

// Advise requests notes for one assessment.
func (a *Advisor) Advise(ctx context.Context, as *assess.Assessment) (*Advice, error) {
	if a == nil {
		return nil, errors.New("advisor: no provider configured")
	}
	if as == nil {
		return nil, errors.New("advisor: nil assessment")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeAdvice)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(as)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		a.log.Warn().Err(err).Str("assessment_id", as.ID).Msg("advice generation failed")
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out Advice
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}
	out.Summary = strings.TrimSpace(out.Summary)
	out.Suggestions = clean(out.Suggestions)
	if out.Summary == "" {
		return nil, errors.New("advice response has an empty summary")
	}
	return &out, nil
}

// clean drops blank suggestions and caps the list at MaxSuggestions.
func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
