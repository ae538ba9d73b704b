package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestOpenFile.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"assessment_events", "report_events", "llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestAssessmentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	prob := 0.83
	err := repo.AppendAssessment(ctx, AssessmentEventData{
		AssessmentID: "a-1",
		Source:       "cli",
		Inputs:       json.RawMessage(`{"age":25}`),
		BMI:          24.22,
		BMICategory:  "Normal",
		Prediction:   1,
		Probability:  &prob,
		Labels:       []string{"Insomnia", "Narcolepsy"},
		Latency:      1500 * time.Microsecond,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAssessment(ctx, AssessmentEventData{AssessmentID: "a-2", Source: "tui"}); err != nil {
		t.Fatalf("append second: %v", err)
	}

	recs, err := repo.QueryAssessments(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	// Newest first.
	if recs[0].AssessmentID != "a-2" || recs[1].AssessmentID != "a-1" {
		t.Fatalf("order = %s, %s", recs[0].AssessmentID, recs[1].AssessmentID)
	}
	if recs[0].Probability != nil {
		t.Error("expected nil probability for second event")
	}
	if len(recs[0].Labels) != 0 {
		t.Errorf("labels = %v, want empty", recs[0].Labels)
	}

	first := recs[1]
	if first.Probability == nil || *first.Probability != prob {
		t.Errorf("probability = %v", first.Probability)
	}
	if strings.Join(first.Labels, ",") != "Insomnia,Narcolepsy" {
		t.Errorf("labels = %v", first.Labels)
	}
	if string(first.Inputs) != `{"age":25}` {
		t.Errorf("inputs = %s", first.Inputs)
	}
	if first.Latency != 1500*time.Microsecond {
		t.Errorf("latency = %v", first.Latency)
	}
	if first.Sequence >= recs[0].Sequence {
		t.Errorf("sequence not increasing: %d then %d", first.Sequence, recs[0].Sequence)
	}
}

func TestQueryOptsLimitAndAfter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendAssessment(ctx, AssessmentEventData{AssessmentID: fmt.Sprint(i), Source: "cli"}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.QueryAssessments(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 || recs[0].AssessmentID != "4" {
		t.Fatalf("limit query = %+v", recs)
	}

	recs, err = repo.QueryAssessments(ctx, QueryOpts{After: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("after query returned %d records, want 2", len(recs))
	}
}

func TestReportRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendReport(ctx, ReportEventData{
		AssessmentID: "a-1",
		Destination:  "/tmp/report.pdf",
		Labels:       []string{"Insomnia"},
		Success:      false,
		ErrorMessage: "permission denied",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := repo.QueryReports(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0].Success || recs[0].ErrorMessage != "permission denied" {
		t.Errorf("record = %+v", recs[0])
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "advice", InputTokens: 100, OutputTokens: 40, LatencyMs: 300, Success: true, RequestBody: "[user]\nhi", ResponseBody: "{}"},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "advice", InputTokens: 50, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "summary", Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := repo.QueryLLMEvents(ctx, LLMQueryOpts{QueryOpts: QueryOpts{Limit: 10}})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d events", len(recs))
	}

	got, err := repo.GetLLMEvent(ctx, recs[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nhi" || !got.Success {
		t.Fatalf("get = %+v", got)
	}

	advice, err := repo.QueryLLMEvents(ctx, LLMQueryOpts{QueryOpts: QueryOpts{Limit: 1}, Purpose: "advice"})
	if err != nil {
		t.Fatalf("query advice: %v", err)
	}
	if len(advice) != 1 || advice[0].Purpose != "advice" || advice[0].InputTokens != 50 {
		t.Fatalf("advice events = %+v", advice)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("missing event = %v, %v", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %+v", byPurpose)
	}
	top := byPurpose[0]
	if top.Purpose != "advice" || top.Calls != 2 || top.InputTokens != 150 || top.AvgLatencyMs != 200 {
		t.Errorf("advice usage = %+v", top)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "claude-haiku-4-5" {
		t.Errorf("models = %+v", byModel)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAssessment(ctx, AssessmentEventData{AssessmentID: "a", Source: "cli"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendReport(ctx, ReportEventData{AssessmentID: "a", Destination: "download"}); err != nil {
		t.Fatal(err)
	}

	as, _ := repo.QueryAssessments(ctx, QueryOpts{})
	rs, _ := repo.QueryReports(ctx, QueryOpts{})
	if len(as) != 1 || len(rs) != 1 {
		t.Fatalf("records: %d assessments, %d reports", len(as), len(rs))
	}
	if rs[0].Sequence != as[0].Sequence+1 {
		t.Errorf("report sequence %d should follow assessment %d", rs[0].Sequence, as[0].Sequence)
	}
}

func TestQueryOptsTimeWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	if err := repo.AppendReport(ctx, ReportEventData{AssessmentID: "a", Destination: "download", Success: true}); err != nil {
		t.Fatal(err)
	}

	recs, err := repo.QueryReports(ctx, QueryOpts{From: before})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("from window returned %d records, want 1", len(recs))
	}

	recs, err = repo.QueryReports(ctx, QueryOpts{To: before})
	if err != nil {
		t.Fatalf("query to: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("to window returned %d records, want 0", len(recs))
	}
}
