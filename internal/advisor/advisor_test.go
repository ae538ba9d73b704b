package advisor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/llm"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/rs/zerolog"
)

func testAssessment() *assess.Assessment {
	in := features.DefaultInputs()
	in.SleepDuration = 4.5
	in.StressLevel = 8
	return &assess.Assessment{
		ID:          "a-1",
		Inputs:      in,
		BMI:         24.2,
		BMICategory: features.BMINormal,
		Prediction:  model.HighRisk,
		Labels:      []disorder.Label{disorder.LabelInsomnia, disorder.LabelSleepAnxiety},
		Entries: []disorder.Entry{
			disorder.MustLookup(disorder.LabelInsomnia),
			disorder.MustLookup(disorder.LabelSleepAnxiety),
		},
	}
}

func TestAdvise_ParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "  Your answers point to short sleep and high stress.  ",
			"suggestions": ["Keep a fixed wake time", " ", "Stop screens an hour before bed"]
		}`),
	})
	adv := New(mock, DefaultConfig(), zerolog.Nop())

	got, err := adv.Advise(t.Context(), testAssessment())
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if got.Summary != "Your answers point to short sleep and high stress." {
		t.Errorf("summary = %q", got.Summary)
	}
	if len(got.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions after cleaning, got %v", got.Suggestions)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != AdviceSchema {
		t.Error("expected advice schema on request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Insomnia", "Sleep Anxiety", "4.5 hours", "Stress: 8/10", "high risk"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestAdvise_RejectsTooManySuggestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"ok","suggestions":["a","b","c","d","e","f","g"]}`),
	})
	_, err := New(mock, DefaultConfig(), zerolog.Nop()).Advise(t.Context(), testAssessment())

	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestClean_CapsAndTrims(t *testing.T) {
	got := clean([]string{" a ", "", "b", "c", "d", "e", "f"})
	if len(got) != MaxSuggestions || got[0] != "a" || got[MaxSuggestions-1] != "e" {
		t.Errorf("clean = %q", got)
	}
}

func TestAdvise_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	_, err := New(mock, DefaultConfig(), zerolog.Nop()).Advise(t.Context(), testAssessment())

	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestAdvise_EmptySummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"   ","suggestions":["x"]}`),
	})
	if _, err := New(mock, DefaultConfig(), zerolog.Nop()).Advise(t.Context(), testAssessment()); err == nil {
		t.Fatal("expected error for empty summary")
	}
}

func TestNew_NilProviderDisables(t *testing.T) {
	adv := New(nil, DefaultConfig(), zerolog.Nop())
	if adv.Enabled() {
		t.Fatal("expected disabled advisor")
	}
	if _, err := adv.Advise(t.Context(), testAssessment()); err == nil {
		t.Fatal("expected error from disabled advisor")
	}
}

func TestBuildUserMessage_NoConditions(t *testing.T) {
	a := testAssessment()
	a.Prediction = model.LowRisk
	a.Labels = nil
	a.Entries = nil

	msg := buildUserMessage(a)
	if !strings.Contains(msg, "Detected conditions:\nNone") {
		t.Errorf("expected None marker, got:\n%s", msg)
	}
}
