package result

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/llm"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/router"
)

type passScaler struct{}

func (passScaler) Transform(v features.Vector) (features.Vector, error) { return v, nil }

type stubClassifier struct{ pred model.Prediction }

func (c stubClassifier) Predict(features.Vector) (model.Prediction, error) { return c.pred, nil }

func riskyInputs() features.RawInputs {
	in := features.DefaultInputs()
	in.SleepDuration = 4
	in.StressLevel = 7
	return in
}

func setup(t *testing.T, pred model.Prediction, adv *advisor.Advisor) (*ResultScreen, Deps) {
	t.Helper()
	svc, err := assess.New(assess.Options{
		Scaler:     passScaler{},
		Classifier: stubClassifier{pred: pred},
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)

	a, err := svc.Evaluate(t.Context(), riskyInputs())
	require.NoError(t, err)

	deps := Deps{
		Service:    svc,
		Session:    &assess.Session{},
		Advisor:    adv,
		ReportPath: filepath.Join(t.TempDir(), "report.pdf"),
		Logger:     zerolog.Nop(),
	}
	deps.Session.Apply(a)
	return New(deps, a), deps
}

func TestPositive_ShowsLabelsAndDownload(t *testing.T) {
	r, _ := setup(t, model.HighRisk, nil)

	view := r.View(120, 200)
	assert.Contains(t, view, "High risk of sleep disorder detected")
	assert.Contains(t, view, "Insomnia")
	assert.Contains(t, view, "Sleep Anxiety")
	assert.Contains(t, view, "Download report")
	assert.False(t, r.menu.Items[itemDownload].Disabled)
}

func TestNegative_ShowsHabitsWithoutDownload(t *testing.T) {
	r, deps := setup(t, model.LowRisk, nil)

	view := r.View(120, 200)
	assert.Contains(t, view, "Low risk of sleep disorder")
	assert.Contains(t, view, "Tips for Healthy Sleep")
	assert.True(t, r.menu.Items[itemDownload].Disabled)
	assert.True(t, r.menu.Items[itemPreview].Disabled)

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	assert.Nil(t, cmd)
	assert.False(t, deps.Session.CanExport())
}

func TestDownload_WritesReport(t *testing.T) {
	r, deps := setup(t, model.HighRisk, nil)

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	require.NotNil(t, cmd)
	assert.True(t, r.menu.Items[itemDownload].Disabled, "download disabled while saving")

	msg := cmd()
	r.Update(msg)

	assert.False(t, r.statusErr)
	assert.Contains(t, r.status, deps.ReportPath)
	fi, err := os.Stat(deps.ReportPath)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
	assert.False(t, r.menu.Items[itemDownload].Disabled)
}

func TestDownload_FailureKeepsSession(t *testing.T) {
	r, deps := setup(t, model.HighRisk, nil)
	r.deps.ReportPath = filepath.Join(t.TempDir(), "missing", "report.pdf")
	labels := deps.Session.Labels()

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	require.NotNil(t, cmd)
	r.Update(cmd())

	assert.True(t, r.statusErr)
	assert.Contains(t, r.status, "Could not save the report")
	assert.Equal(t, labels, deps.Session.Labels())
	assert.False(t, r.menu.Items[itemDownload].Disabled, "download offered again after failure")
}

func TestAdvice_AttachedToSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Short nights and high stress.","suggestions":["Wind down earlier"]}`),
	})
	r, _ := setup(t, model.HighRisk, advisor.New(mock, advisor.DefaultConfig(), zerolog.Nop()))

	cmd := r.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, r.View(120, 200), "Preparing personal notes")

	r.Update(cmd())
	view := r.View(120, 200)
	assert.Contains(t, view, "Personal notes")
	assert.Contains(t, view, "Wind down earlier")
}

func TestAdvice_StaleResultIgnored(t *testing.T) {
	r, _ := setup(t, model.HighRisk, nil)
	r.Update(adviceMsg{assessmentID: "other", advice: &advisor.Advice{Summary: "stale"}})
	assert.Nil(t, r.advice)
}

func TestAdvice_DisabledWithoutProvider(t *testing.T) {
	r, _ := setup(t, model.HighRisk, nil)
	assert.Nil(t, r.Init())
	assert.NotContains(t, r.View(120, 200), "Personal notes")
}

func TestMenuNavigation(t *testing.T) {
	r, _ := setup(t, model.HighRisk, nil)

	r.menu.Selected = itemPreview
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Report preview", push.Screen.Title())
	assert.True(t, strings.Contains(push.Screen.View(100, 200), "Insomnia"))

	r.menu.Selected = itemNew
	_, cmd = r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok = cmd().(router.PopScreenMsg)
	assert.True(t, ok)

	r.menu.Selected = itemHome
	_, cmd = r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok = cmd().(router.PopToRootMsg)
	assert.True(t, ok)
}
