package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jpsleep/sleepcheck/internal/store"
	"github.com/rs/zerolog"
)

type fakeRecorder struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

func adviceSchema() *Schema {
	return &Schema{
		Name:       "sleep-advice",
		Definition: map[string]any{"type": "object"},
	}
}

func TestRecording_Success(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"ok"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	rec := &fakeRecorder{}
	p := WithRecording(mock, rec, zerolog.Nop())

	ctx := WithPurpose(context.Background(), PurposeAdvice)
	_, err := p.Generate(ctx, Request{
		System:   "coach",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Schema:   adviceSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	e := rec.events[0]
	if e.Provider != ProviderMock || e.Purpose != PurposeAdvice || !e.Success {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.InputTokens != 12 || e.OutputTokens != 4 {
		t.Fatalf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != `{"summary":"ok"}` {
		t.Fatalf("response body = %q", e.ResponseBody)
	}
	for _, part := range []string{"[system]\ncoach", "[user]\nhello", "[schema: sleep-advice]"} {
		if !strings.Contains(e.RequestBody, part) {
			t.Errorf("request body missing %q:\n%s", part, e.RequestBody)
		}
	}
}

func TestRecording_FailureIsRecordedAndReturned(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	rec := &fakeRecorder{}
	p := WithRecording(mock, rec, zerolog.Nop())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rec.events) != 1 || rec.events[0].Success || rec.events[0].ErrorMessage != "boom" {
		t.Fatalf("unexpected events: %+v", rec.events)
	}
}

func TestRecording_RecorderErrorIsLoggedNotReturned(t *testing.T) {
	var buf bytes.Buffer
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	rec := &fakeRecorder{err: errors.New("disk full")}
	p := WithRecording(mock, rec, zerolog.New(&buf))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("recorder failure leaked: %v", err)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Fatalf("expected warning in log, got %q", buf.String())
	}
}

func TestRecording_NilRecorder(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRecording(mock, nil, zerolog.Nop())
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type slowProvider struct{ MockProvider }

func (s *slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Second):
		return &Response{}, nil
	}
}

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(&slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	mock := NewMockProvider()
	if WithTimeout(mock, 0) != Provider(mock) {
		t.Fatal("zero timeout should return the provider unchanged")
	}
}
