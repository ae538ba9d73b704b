package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jpsleep/sleepcheck/internal/store"
	"github.com/rs/zerolog"
)

// EventRecorder persists LLM request events.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// RecordingProvider is a decorator that records every LLM request as an
// event and logs its outcome.
type RecordingProvider struct {
	inner    Provider
	recorder EventRecorder
	log      zerolog.Logger
}

// WithRecording wraps a Provider with event recording. A nil recorder only
// logs.
func WithRecording(p Provider, rec EventRecorder, log zerolog.Logger) Provider {
	return &RecordingProvider{inner: p, recorder: rec, log: log}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := r.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    r.inner.Name(),
		Model:       r.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	ev := r.log.Debug()
	if err != nil {
		ev = r.log.Warn().Err(err)
	}
	ev.Str("provider", data.Provider).
		Str("model", data.Model).
		Str("purpose", purpose).
		Int64("latency_ms", data.LatencyMs).
		Int("input_tokens", data.InputTokens).
		Int("output_tokens", data.OutputTokens).
		Msg("llm request")

	if r.recorder != nil {
		// Recording never fails the request.
		if recErr := r.recorder.AppendLLMRequest(ctx, data); recErr != nil {
			r.log.Warn().Err(recErr).Msg("failed to record LLM request event")
		}
	}

	return resp, err
}

func (r *RecordingProvider) ModelID() string { return r.inner.ModelID() }

func (r *RecordingProvider) Name() string { return r.inner.Name() }

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// TimeoutProvider bounds each Generate call, retries included.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so every call gets at most d. Zero disables it.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string { return t.inner.ModelID() }

func (t *TimeoutProvider) Name() string { return t.inner.Name() }
