package store

import (
	"context"
	"fmt"

	"github.com/jpsleep/sleepcheck/ent"
	"github.com/jpsleep/sleepcheck/ent/predicate"
	"github.com/jpsleep/sleepcheck/ent/reportevent"
)

func (r *eventRepo) AppendReport(ctx context.Context, data ReportEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReportEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetDestination(data.Destination).
		SetLabels(nonNil(data.Labels)).
		SetSizeBytes(data.SizeBytes).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save report event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryReports(ctx context.Context, opts QueryOpts) ([]ReportRecord, error) {
	query := r.client.ReportEvent.Query().
		Where(window[predicate.ReportEvent](opts)...).
		Order(ent.Desc(reportevent.FieldSequence))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query report events: %w", err)
	}

	records := make([]ReportRecord, len(events))
	for i, e := range events {
		records[i] = ReportRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ReportEventData: ReportEventData{
				AssessmentID: e.AssessmentID,
				Destination:  e.Destination,
				Labels:       e.Labels,
				SizeBytes:    e.SizeBytes,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return records, nil
}
