package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jpsleep/sleepcheck/ent"
	"github.com/jpsleep/sleepcheck/ent/assessmentevent"
	"github.com/jpsleep/sleepcheck/ent/predicate"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	inputs := data.Inputs
	if len(inputs) == 0 {
		inputs = json.RawMessage("{}")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetSource(data.Source).
		SetInputs(inputs).
		SetBmi(data.BMI).
		SetBmiCategory(data.BMICategory).
		SetPrediction(data.Prediction).
		SetNillableProbability(data.Probability).
		SetLabels(nonNil(data.Labels)).
		SetLatencyUs(data.Latency.Microseconds()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error) {
	query := r.client.AssessmentEvent.Query().
		Where(window[predicate.AssessmentEvent](opts)...).
		Order(ent.Desc(assessmentevent.FieldSequence))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}

	records := make([]AssessmentRecord, len(events))
	for i, e := range events {
		records[i] = AssessmentRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AssessmentEventData: AssessmentEventData{
				AssessmentID: e.AssessmentID,
				Source:       e.Source,
				Inputs:       e.Inputs,
				BMI:          e.Bmi,
				BMICategory:  e.BmiCategory,
				Prediction:   e.Prediction,
				Probability:  e.Probability,
				Labels:       e.Labels,
				Latency:      time.Duration(e.LatencyUs) * time.Microsecond,
			},
		}
	}
	return records, nil
}
