package assess

import (
	"context"
	"errors"
	"os"

	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/report"
	"github.com/jpsleep/sleepcheck/internal/store"
)

// ErrNothingToExport is returned when a session has no labels.
var ErrNothingToExport = errors.New("no disorder labels to export")

// DownloadDestination marks in-memory report renders in the event log.
const DownloadDestination = "download"

// Export writes the report for the session's labels to path. On failure
// the session is left as it was and the error is an *report.ExportError;
// nothing is retried.
func (s *Service) Export(ctx context.Context, sess *Session, path string) error {
	if !sess.CanExport() {
		return ErrNothingToExport
	}
	id, labels, summary, notes := sess.snapshot()
	doc := report.Build(labels, report.Options{
		GeneratedAt: s.now(),
		Summary:     summary,
		Notes:       notes,
	})

	err := report.WriteFile(path, doc)
	size := 0
	if err == nil {
		if fi, statErr := os.Stat(path); statErr == nil {
			size = int(fi.Size())
		}
	}
	s.recordReport(ctx, id, path, labels, size, err)
	if err != nil {
		return err
	}

	s.log.Info().Str("path", path).Int("labels", len(labels)).Msg("report written")
	return nil
}

// ReportBytes renders a report for labels in memory. Labels must be known
// to the knowledge base and non-empty.
func (s *Service) ReportBytes(ctx context.Context, assessmentID string, labels []disorder.Label, opts report.Options) ([]byte, error) {
	if len(labels) == 0 {
		return nil, ErrNothingToExport
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = s.now()
	}
	b, err := report.Bytes(report.Build(labels, opts))
	s.recordReport(ctx, assessmentID, DownloadDestination, labels, len(b), err)
	return b, err
}

func (s *Service) recordReport(ctx context.Context, id, dest string, labels []disorder.Label, size int, exportErr error) {
	s.metrics.IncReport(exportErr == nil)
	if exportErr != nil {
		s.log.Error().Err(exportErr).Str("destination", dest).Msg("report export failed")
	}
	if s.events == nil {
		return
	}

	data := store.ReportEventData{
		AssessmentID: id,
		Destination:  dest,
		Labels:       make([]string, len(labels)),
		SizeBytes:    size,
		Success:      exportErr == nil,
	}
	for i, l := range labels {
		data.Labels[i] = string(l)
	}
	if exportErr != nil {
		data.ErrorMessage = exportErr.Error()
	}
	if err := s.events.AppendReport(ctx, data); err != nil {
		s.log.Warn().Err(err).Msg("failed to record report event")
	}
}
