package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     150 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// newTestRetry returns a RetryProvider that records waits instead of sleeping.
func newTestRetry(inner Provider, log zerolog.Logger) (*RetryProvider, *[]time.Duration) {
	r := WithRetry(inner, retryConfig(), log).(*RetryProvider)
	var waits []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

var (
	okResp      = MockResponse{Content: json.RawMessage(`{"summary":"ok"}`)}
	unavailable = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	invalid     = MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
	truncated   = MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}}
)

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
		wantWaits int
	}{
		{"first attempt succeeds", []MockResponse{okResp}, false, 1, 0},
		{"transient then success", []MockResponse{unavailable, okResp}, false, 2, 1},
		{"all attempts fail", []MockResponse{unavailable, unavailable, unavailable}, true, 3, 2},
		{"max tokens is permanent", []MockResponse{truncated, okResp}, true, 1, 0},
		{"invalid response retried once", []MockResponse{invalid, invalid, okResp}, true, 2, 1},
		{"invalid then valid", []MockResponse{invalid, okResp}, false, 2, 1},
		{"plain transport error", []MockResponse{{Err: errors.New("connection reset")}, okResp}, false, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p, waits := newTestRetry(mock, zerolog.Nop())

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && string(resp.Content) != `{"summary":"ok"}` {
				t.Errorf("unexpected content: %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
			if len(*waits) != tt.wantWaits {
				t.Errorf("waits = %d, want %d", len(*waits), tt.wantWaits)
			}
		})
	}
}

func TestRetry_BackoffCappedWithJitter(t *testing.T) {
	mock := NewMockProvider(unavailable, unavailable, unavailable)
	p, waits := newTestRetry(mock, zerolog.Nop())
	_, _ = p.Generate(context.Background(), Request{})

	if len(*waits) != 2 {
		t.Fatalf("expected 2 waits, got %d", len(*waits))
	}
	// 100ms ±20%, then min(200ms, 150ms) ±20%.
	bounds := [][2]time.Duration{{80 * time.Millisecond, 120 * time.Millisecond}, {120 * time.Millisecond, 180 * time.Millisecond}}
	for i, w := range *waits {
		if w < bounds[i][0] || w > bounds[i][1] {
			t.Errorf("wait %d = %s, want within %v", i, w, bounds[i])
		}
	}
}

func TestRetry_RateLimitUsesRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 3 * time.Second, Err: errors.New("429")}},
		okResp,
	)
	p, waits := newTestRetry(mock, zerolog.Nop())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*waits) != 1 || (*waits)[0] != 3*time.Second {
		t.Fatalf("waits = %v, want [3s]", *waits)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(unavailable, unavailable, okResp)
	p, _ := newTestRetry(mock, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call before giving up, got %d", mock.CallCount())
	}
}

func TestRetry_LogsAttempts(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	mock := NewMockProvider(unavailable, okResp)
	p, _ := newTestRetry(mock, log)

	ctx := WithPurpose(context.Background(), PurposeAdvice)
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"message":"retrying LLM request"`, `"purpose":"advice"`, `"attempt":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %s", want, out)
		}
	}
}

func TestRetry_ZeroAttemptsStillCalls(t *testing.T) {
	mock := NewMockProvider(okResp)
	p := WithRetry(mock, RetryConfig{}, zerolog.Nop())
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRetry_Delegates(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetry(mock, retryConfig(), zerolog.Nop())
	if p.ModelID() != "mock" || p.Name() != mock.Name() {
		t.Fatalf("ModelID/Name not delegated: %q %q", p.ModelID(), p.Name())
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), false},
		{&ErrMaxTokensExceeded{}, false},
		{&ErrInvalidResponse{Err: errors.New("x")}, false},
		{&ErrRateLimit{Err: errors.New("429")}, true},
		{&ErrProviderUnavailable{}, true},
		{errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		if got := IsTransient(tt.err); got != tt.want {
			t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
