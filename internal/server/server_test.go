package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/llm"
	"github.com/jpsleep/sleepcheck/internal/metrics"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passScaler struct{}

func (passScaler) Transform(v features.Vector) (features.Vector, error) { return v, nil }

type stubClassifier struct {
	pred model.Prediction
	err  error
}

func (c stubClassifier) Predict(features.Vector) (model.Prediction, error) { return c.pred, c.err }

type fixture struct {
	srv *Server
}

func newFixture(t *testing.T, clf model.Classifier, adv *advisor.Advisor) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.MustNewMetrics(reg)
	svc, err := assess.New(assess.Options{
		Scaler:     passScaler{},
		Classifier: clf,
		Metrics:    m,
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)

	return fixture{
		srv: New(Options{
			Service:  svc,
			Advisor:  adv,
			Metrics:  m,
			Gatherer: reg,
			Logger:   zerolog.Nop(),
		}),
	}
}

func (f fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)
	return w
}

// fullBody is a complete submission at the form defaults with overrides applied.
func fullBody(overrides map[string]any) map[string]any {
	raw, _ := json.Marshal(features.DefaultInputs())
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func riskyBody() map[string]any {
	return fullBody(map[string]any{
		"sleep_duration_hours":    4,
		"quality_of_sleep":        8,
		"stress_level":            7,
		"weight_kg":               90,
		"heart_rate_bpm":          95,
		"systolic_mmhg":           150,
		"diastolic_mmhg":          95,
		"daily_steps":             1000,
		"physical_activity_level": 10,
	})
}

func TestAssess_Positive(t *testing.T) {
	f := newFixture(t, stubClassifier{pred: model.HighRisk}, nil)

	w := f.do(http.MethodPost, "/api/v1/assessments", riskyBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		ID          string           `json:"id"`
		Prediction  int              `json:"prediction"`
		Result      string           `json:"result"`
		BMICategory string           `json:"bmi_category"`
		Labels      []string         `json:"labels"`
		Entries     []disorder.Entry `json:"entries"`
		Habits      []disorder.Habit `json:"habits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 1, got.Prediction)
	assert.Equal(t, "high risk", got.Result)
	assert.Equal(t, "Obese", got.BMICategory)
	assert.Len(t, got.Labels, 6)
	assert.Contains(t, got.Labels, string(disorder.LabelNarcolepsy))
	assert.Len(t, got.Entries, 6)
	assert.Empty(t, got.Habits)

	metricsBody := f.do(http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, metricsBody, `sleepcheck_assessments_total{outcome="high_risk"} 1`)
}

func TestAssess_NegativeReturnsHabits(t *testing.T) {
	f := newFixture(t, stubClassifier{pred: model.LowRisk}, nil)

	w := f.do(http.MethodPost, "/api/v1/assessments", fullBody(nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		Labels  []string         `json:"labels"`
		Entries []disorder.Entry `json:"entries"`
		Habits  []disorder.Habit `json:"habits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotNil(t, got.Labels)
	assert.Empty(t, got.Labels)
	assert.Empty(t, got.Entries)
	assert.Len(t, got.Habits, 5)
}

func TestAssess_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		clf  model.Classifier
		body any
		want int
	}{
		{"out of range", stubClassifier{}, fullBody(map[string]any{"age": 5}), http.StatusBadRequest},
		{"unknown gender", stubClassifier{}, fullBody(map[string]any{"gender": "Robot"}), http.StatusBadRequest},
		{"malformed json", stubClassifier{}, `{"age":`, http.StatusBadRequest},
		{"empty body", stubClassifier{}, ``, http.StatusBadRequest},
		{"classifier failure", stubClassifier{err: errors.New("boom")}, fullBody(nil), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.clf, nil)
			w := f.do(http.MethodPost, "/api/v1/assessments", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestAssess_RejectsIncompleteBody(t *testing.T) {
	f := newFixture(t, stubClassifier{pred: model.HighRisk}, nil)

	t.Run("empty object names every field", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/assessments", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var got struct {
			Error  string   `json:"error"`
			Fields []string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got.Fields, 13)
		assert.Equal(t, "age", got.Fields[0])
		assert.Contains(t, got.Error, "heart_rate_bpm")
	})

	t.Run("one field missing", func(t *testing.T) {
		body := fullBody(nil)
		delete(body, "systolic_mmhg")
		w := f.do(http.MethodPost, "/api/v1/assessments", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"fields":["systolic_mmhg"]`)
	})

	t.Run("misspelled key", func(t *testing.T) {
		body := fullBody(map[string]any{"heart_rate": 110})
		delete(body, "heart_rate_bpm")
		w := f.do(http.MethodPost, "/api/v1/assessments", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `unknown field \"heart_rate\"`)
	})

	t.Run("zero is a value, not a missing field", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/assessments", fullBody(map[string]any{"daily_steps": 0}))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func TestAssess_WithAdvice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Short sleep.","suggestions":["Keep a fixed wake time"]}`),
	})
	f := newFixture(t, stubClassifier{pred: model.HighRisk}, advisor.New(mock, advisor.DefaultConfig(), zerolog.Nop()))

	w := f.do(http.MethodPost, "/api/v1/assessments?advice=true", riskyBody())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"summary":"Short sleep."`)
	assert.Equal(t, 1, mock.CallCount())
}

func TestReport(t *testing.T) {
	f := newFixture(t, stubClassifier{}, nil)

	t.Run("pdf attachment", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/reports", map[string]any{
			"labels": []string{"Insomnia", "Narcolepsy"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "Sleep_Disorder_Report.pdf")
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
	})

	t.Run("empty labels", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/reports", map[string]any{"labels": []string{}})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown label", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/v1/reports", map[string]any{"labels": []string{"Sleepwalking"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReferenceRoutes(t *testing.T) {
	f := newFixture(t, stubClassifier{}, nil)

	w := f.do(http.MethodGet, "/api/v1/disorders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var kb struct {
		Disorders []disorder.Entry `json:"disorders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kb))
	assert.Len(t, kb.Disorders, len(disorder.AllLabels()))

	w = f.do(http.MethodGet, "/api/v1/fields", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fields struct {
		Fields []features.Bound `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	assert.Equal(t, features.Bounds(), fields.Fields)

	w = f.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, stubClassifier{}, nil)
	f.do(http.MethodGet, "/healthz", nil)

	w := f.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sleepcheck_http_requests_total")
	assert.Contains(t, w.Body.String(), `sleepcheck_http_requests_total{code="200",method="GET",route="/healthz"} 1`)
}
