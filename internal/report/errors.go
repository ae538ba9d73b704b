package report

import "fmt"

// ExportError reports a failure to render or write the report.
type ExportError struct {
	Path string // empty for in-memory renders
	Err  error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("render report: %v", e.Err)
	}
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
