package assess

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/metrics"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/report"
	"github.com/jpsleep/sleepcheck/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityScaler struct{ err error }

func (s identityScaler) Transform(v features.Vector) (features.Vector, error) {
	return v, s.err
}

type fixedClassifier struct {
	pred model.Prediction
	err  error
}

func (c *fixedClassifier) Predict(features.Vector) (model.Prediction, error) {
	return c.pred, c.err
}

type fakeEvents struct {
	mu          sync.Mutex
	assessments []store.AssessmentEventData
	reports     []store.ReportEventData
	err         error
}

func (f *fakeEvents) AppendAssessment(_ context.Context, d store.AssessmentEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assessments = append(f.assessments, d)
	return f.err
}

func (f *fakeEvents) AppendReport(_ context.Context, d store.ReportEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, d)
	return f.err
}

func newService(t *testing.T, clf model.Classifier, events EventLog) *Service {
	t.Helper()
	svc, err := New(Options{
		Scaler:     identityScaler{},
		Classifier: clf,
		Events:     events,
		Metrics:    metrics.MustNewMetrics(prometheus.NewRegistry()),
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)
	return svc
}

// riskyInputs fires every rule except the fallback.
func riskyInputs() features.RawInputs {
	in := features.DefaultInputs()
	in.SleepDuration = 4
	in.QualityOfSleep = 8
	in.StressLevel = 7
	in.HeightCm = 170
	in.WeightKg = 90
	in.HeartRate = 95
	in.Systolic = 150
	in.Diastolic = 95
	in.DailySteps = 1000
	in.PhysicalActivity = 10
	return in
}

func TestNew_RequiresModels(t *testing.T) {
	_, err := New(Options{Classifier: &fixedClassifier{}})
	assert.Error(t, err)
	_, err = New(Options{Scaler: identityScaler{}})
	assert.Error(t, err)
}

func TestEvaluate_PositiveRunsRules(t *testing.T) {
	events := &fakeEvents{}
	svc := newService(t, &fixedClassifier{pred: model.HighRisk}, events)

	ctx := WithSource(context.Background(), SourceCLI)
	a, err := svc.Evaluate(ctx, riskyInputs())
	require.NoError(t, err)

	assert.True(t, a.Positive())
	assert.Equal(t, []disorder.Label{
		disorder.LabelInsomnia,
		disorder.LabelSleepAnxiety,
		disorder.LabelObstructiveApnea,
		disorder.LabelHypertensionRelated,
		disorder.LabelRestlessLeg,
		disorder.LabelNarcolepsy,
	}, a.Labels)
	require.Len(t, a.Entries, len(a.Labels))
	for i, e := range a.Entries {
		assert.Equal(t, a.Labels[i], e.Label)
		assert.NotEmpty(t, e.Definition)
		assert.NotEmpty(t, e.Tip)
	}
	assert.Equal(t, features.BMIObese, a.BMICategory)
	assert.InDelta(t, 31.1, a.BMI, 0.05)
	assert.NotEmpty(t, a.ID)

	require.Len(t, events.assessments, 1)
	ev := events.assessments[0]
	assert.Equal(t, a.ID, ev.AssessmentID)
	assert.Equal(t, SourceCLI, ev.Source)
	assert.Equal(t, "Obese", ev.BMICategory)
	assert.Equal(t, 1, ev.Prediction)
	assert.Len(t, ev.Labels, 6)
}

func TestEvaluate_NegativeSkipsRules(t *testing.T) {
	svc := newService(t, &fixedClassifier{pred: model.LowRisk}, nil)

	a, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	assert.False(t, a.Positive())
	assert.Empty(t, a.Labels)
	assert.Empty(t, a.Entries)
}

func TestEvaluate_ValidationErrorBeforeModel(t *testing.T) {
	clf := &fixedClassifier{pred: model.HighRisk}
	svc := newService(t, clf, nil)

	in := features.DefaultInputs()
	in.HeightCm = 0
	_, err := svc.Evaluate(context.Background(), in)

	var verr *features.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, features.FieldHeight, verr.Field)
}

func TestEvaluate_PredictionErrors(t *testing.T) {
	tests := []struct {
		name   string
		scaler model.Scaler
		clf    model.Classifier
		stage  string
	}{
		{"transform", identityScaler{err: errors.New("shape mismatch")}, &fixedClassifier{}, "transform"},
		{"predict", identityScaler{}, &fixedClassifier{err: errors.New("runtime gone")}, "predict"},
		{"typed passthrough", identityScaler{}, &fixedClassifier{err: &model.PredictionError{Stage: "predict", Err: model.ErrNonFinite}}, "predict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := New(Options{Scaler: tt.scaler, Classifier: tt.clf, Logger: zerolog.Nop()})
			require.NoError(t, err)

			_, err = svc.Evaluate(context.Background(), features.DefaultInputs())
			var perr *model.PredictionError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.stage, perr.Stage)
		})
	}
}

func TestEvaluate_StoreFailureDoesNotFailEvaluation(t *testing.T) {
	events := &fakeEvents{err: errors.New("database is locked")}
	svc := newService(t, &fixedClassifier{pred: model.HighRisk}, events)

	a, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	assert.NotEmpty(t, a.Labels)
	assert.Len(t, events.assessments, 1)
}

func TestEvaluate_ProbabilityFromScorer(t *testing.T) {
	svc, err := New(Options{
		Scaler:     identityScaler{},
		Classifier: &model.LogisticClassifier{Threshold: 0.5},
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)

	a, err := svc.Evaluate(context.Background(), features.DefaultInputs())
	require.NoError(t, err)
	require.NotNil(t, a.Probability)
	assert.InDelta(t, 0.5, *a.Probability, 1e-9)
	assert.False(t, a.Positive())
}

type failingScorer struct{ fixedClassifier }

func (failingScorer) Probability(features.Vector) (float64, error) {
	return 0, errors.New("no calibration")
}

func TestEvaluate_ProbabilityFailureLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	svc, err := New(Options{
		Scaler:     identityScaler{},
		Classifier: &failingScorer{fixedClassifier{pred: model.HighRisk}},
		Logger:     zerolog.New(&buf),
	})
	require.NoError(t, err)

	a, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	assert.Nil(t, a.Probability)
	assert.True(t, a.Positive())

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"error":"no calibration"`)
	assert.Contains(t, out, `"assessment_id":"`+a.ID+`"`)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.Equal(t, 1, strings.Count(line, `"component"`), line)
	}
}

func TestSession_NegativeClearsLabels(t *testing.T) {
	clf := &fixedClassifier{pred: model.HighRisk}
	svc := newService(t, clf, nil)
	var sess Session

	a, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	sess.Apply(a)
	require.True(t, sess.CanExport())
	require.NotEmpty(t, sess.Labels())

	clf.pred = model.LowRisk
	a, err = svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	sess.Apply(a)

	assert.False(t, sess.CanExport())
	assert.Empty(t, sess.Labels())
	assert.Equal(t, model.LowRisk, sess.Prediction())
	assert.Same(t, a, sess.Current())
}

func TestSession_AttachNotes(t *testing.T) {
	svc := newService(t, &fixedClassifier{pred: model.HighRisk}, nil)
	var sess Session

	first, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	sess.Apply(first)
	second, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	sess.Apply(second)

	assert.False(t, sess.AttachNotes(first.ID, "stale", nil))
	assert.True(t, sess.AttachNotes(second.ID, "fresh", []string{"n1"}))

	_, _, summary, notes := sess.snapshot()
	assert.Equal(t, "fresh", summary)
	assert.Equal(t, []string{"n1"}, notes)
}

func TestExport_WritesReport(t *testing.T) {
	events := &fakeEvents{}
	svc := newService(t, &fixedClassifier{pred: model.HighRisk}, events)
	var sess Session

	a, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	sess.Apply(a)

	path := filepath.Join(t.TempDir(), report.DefaultFileName)
	require.NoError(t, svc.Export(context.Background(), &sess, path))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Len(t, events.reports, 1)
	assert.True(t, events.reports[0].Success)
	assert.Equal(t, int(fi.Size()), events.reports[0].SizeBytes)
	assert.Equal(t, a.ID, events.reports[0].AssessmentID)
}

func TestExport_NothingToExport(t *testing.T) {
	svc := newService(t, &fixedClassifier{pred: model.LowRisk}, nil)
	var sess Session

	err := svc.Export(context.Background(), &sess, filepath.Join(t.TempDir(), "r.pdf"))
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExport_FailurePreservesSession(t *testing.T) {
	events := &fakeEvents{}
	svc := newService(t, &fixedClassifier{pred: model.HighRisk}, events)
	var sess Session

	a, err := svc.Evaluate(context.Background(), riskyInputs())
	require.NoError(t, err)
	sess.Apply(a)
	before := sess.Labels()

	path := filepath.Join(t.TempDir(), "missing", "r.pdf")
	err = svc.Export(context.Background(), &sess, path)

	var exportErr *report.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, before, sess.Labels())
	assert.True(t, sess.CanExport())
	require.Len(t, events.reports, 1)
	assert.False(t, events.reports[0].Success)
	assert.NotEmpty(t, events.reports[0].ErrorMessage)
}

func TestReportBytes(t *testing.T) {
	events := &fakeEvents{}
	svc := newService(t, &fixedClassifier{}, events)

	b, err := svc.ReportBytes(context.Background(), "", []disorder.Label{disorder.LabelInsomnia}, report.Options{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(b[:5]))
	require.Len(t, events.reports, 1)
	assert.Equal(t, DownloadDestination, events.reports[0].Destination)

	_, err = svc.ReportBytes(context.Background(), "", nil, report.Options{})
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestSourceContext(t *testing.T) {
	assert.Equal(t, "unknown", SourceFrom(context.Background()))
	assert.Equal(t, SourceHTTP, SourceFrom(WithSource(context.Background(), SourceHTTP)))
}
