package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMQueryOpts narrows an LLM event query.
type LLMQueryOpts struct {
	QueryOpts
	Purpose string // exact match; empty matches all
}

// AssessmentEventData captures one completed evaluation.
type AssessmentEventData struct {
	AssessmentID string
	Source       string // "tui", "cli" or "http"
	Inputs       json.RawMessage
	BMI          float64
	BMICategory  string
	Prediction   int
	Probability  *float64 // nil when the classifier reports no score
	Labels       []string
	Latency      time.Duration
}

// AssessmentRecord is a stored assessment event.
type AssessmentRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// ReportEventData captures one report export attempt.
type ReportEventData struct {
	AssessmentID string
	Destination  string // file path, or "download" for in-memory renders
	Labels       []string
	SizeBytes    int
	Success      bool
	ErrorMessage string
}

// ReportRecord is a stored report event.
type ReportRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ReportEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls by purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo is the append-only event log.
type EventRepo interface {
	AppendAssessment(ctx context.Context, data AssessmentEventData) error
	QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error)

	AppendReport(ctx context.Context, data ReportEventData) error
	QueryReports(ctx context.Context, opts QueryOpts) ([]ReportRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts LLMQueryOpts) ([]LLMEventRecord, error)
	// GetLLMEvent returns nil, nil when the event does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
