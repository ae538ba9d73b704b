package assess

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/metrics"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/store"
	"github.com/rs/zerolog"
)

// EventLog is the subset of the event store the pipeline writes to.
type EventLog interface {
	AppendAssessment(ctx context.Context, data store.AssessmentEventData) error
	AppendReport(ctx context.Context, data store.ReportEventData) error
}

// Options configures a Service.
type Options struct {
	Scaler     model.Scaler
	Classifier model.Classifier
	// Rules defaults to disorder.DefaultRules().
	Rules   []disorder.Rule
	Events  EventLog         // optional
	Metrics *metrics.Metrics // optional
	Logger  zerolog.Logger
}

// Service evaluates submissions and exports reports. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	scaler     model.Scaler
	classifier model.Classifier
	rules      []disorder.Rule
	events     EventLog
	metrics    *metrics.Metrics
	log        zerolog.Logger
	now        func() time.Time
}

// New validates opts and returns a Service.
func New(opts Options) (*Service, error) {
	if opts.Scaler == nil {
		return nil, errors.New("assess: scaler is required")
	}
	if opts.Classifier == nil {
		return nil, errors.New("assess: classifier is required")
	}
	rules := opts.Rules
	if rules == nil {
		rules = disorder.DefaultRules()
	}
	return &Service{
		scaler:     opts.Scaler,
		classifier: opts.Classifier,
		rules:      rules,
		events:     opts.Events,
		metrics:    opts.Metrics,
		log:        opts.Logger.With().Str("component", "assess").Logger(),
		now:        time.Now,
	}, nil
}

// Evaluate runs the full pipeline for one submission. Validation failures
// return *features.ValidationError or *features.UnmappedCategoryError;
// model failures return *model.PredictionError. Rules run only on a
// positive prediction.
func (s *Service) Evaluate(ctx context.Context, in features.RawInputs) (*Assessment, error) {
	start := s.now()

	vec, cat, err := features.Build(in)
	if err != nil {
		s.metrics.ObserveAssessment(metrics.OutcomeValidation, s.now().Sub(start), nil)
		return nil, err
	}

	scaled, err := s.scaler.Transform(vec)
	if err != nil {
		s.metrics.ObserveAssessment(metrics.OutcomePrediction, s.now().Sub(start), nil)
		return nil, asPredictionError("transform", err)
	}

	pred, err := s.classifier.Predict(scaled)
	if err != nil {
		s.metrics.ObserveAssessment(metrics.OutcomePrediction, s.now().Sub(start), nil)
		return nil, asPredictionError("predict", err)
	}

	a := &Assessment{
		ID:          uuid.NewString(),
		CreatedAt:   start,
		Inputs:      in,
		BMI:         features.BMI(in.HeightCm, in.WeightKg),
		BMICategory: cat,
		Vector:      vec,
		Scaled:      scaled,
		Prediction:  pred,
		Labels:      []disorder.Label{},
	}

	if scorer, ok := s.classifier.(model.Scorer); ok {
		p, err := scorer.Probability(scaled)
		if err != nil {
			s.log.Warn().Err(err).Str("assessment_id", a.ID).Msg("probability unavailable")
		} else {
			a.Probability = &p
		}
	}

	if pred.Positive() {
		a.Labels = disorder.Evaluate(s.rules, disorder.NewInput(in, cat))
		a.Entries = make([]disorder.Entry, len(a.Labels))
		for i, l := range a.Labels {
			a.Entries[i] = disorder.MustLookup(l)
		}
	}

	elapsed := s.now().Sub(start)
	outcome := metrics.OutcomeLowRisk
	if pred.Positive() {
		outcome = metrics.OutcomeHighRisk
	}
	s.metrics.ObserveAssessment(outcome, elapsed, a.LabelStrings())
	s.record(ctx, a, elapsed)

	s.log.Debug().
		Str("assessment_id", a.ID).
		Str("prediction", pred.String()).
		Strs("labels", a.LabelStrings()).
		Dur("elapsed", elapsed).
		Msg("assessment complete")

	return a, nil
}

// record appends the assessment to the event log; failures only warn.
func (s *Service) record(ctx context.Context, a *Assessment, elapsed time.Duration) {
	if s.events == nil {
		return
	}
	inputs, err := json.Marshal(a.Inputs)
	if err != nil {
		s.log.Warn().Err(err).Msg("encode assessment inputs")
		return
	}
	err = s.events.AppendAssessment(ctx, store.AssessmentEventData{
		AssessmentID: a.ID,
		Source:       SourceFrom(ctx),
		Inputs:       inputs,
		BMI:          a.BMI,
		BMICategory:  a.BMICategory.String(),
		Prediction:   int(a.Prediction),
		Probability:  a.Probability,
		Labels:       a.LabelStrings(),
		Latency:      elapsed,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("assessment_id", a.ID).Msg("failed to record assessment event")
	}
}

func asPredictionError(stage string, err error) error {
	var pe *model.PredictionError
	if errors.As(err, &pe) {
		return err
	}
	return &model.PredictionError{Stage: stage, Err: err}
}
