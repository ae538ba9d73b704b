package assess

import "context"

type contextKey string

const sourceKey contextKey = "assess_source"

// Surfaces an assessment can come from.
const (
	SourceTUI  = "tui"
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

// WithSource tags the context with the calling surface for the event log.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// SourceFrom returns the surface recorded by WithSource, or "unknown".
func SourceFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sourceKey).(string); ok {
		return v
	}
	return "unknown"
}
