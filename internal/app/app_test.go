package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/jpsleep/sleepcheck/internal/screens/form"
	"github.com/jpsleep/sleepcheck/internal/screens/home"
)

type passScaler struct{}

func (passScaler) Transform(v features.Vector) (features.Vector, error) { return v, nil }

type stubClassifier struct{ pred model.Prediction }

func (c stubClassifier) Predict(features.Vector) (model.Prediction, error) { return c.pred, nil }

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	svc, err := assess.New(assess.Options{
		Scaler:     passScaler{},
		Classifier: stubClassifier{pred: model.HighRisk},
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)
	m := newAppModel(Options{Service: svc, ModelInfo: "onnx", Logger: zerolog.Nop()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

// send applies msg and drains navigation commands through the router.
func send(m AppModel, msg tea.Msg) AppModel {
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd == nil {
		return m
	}
	switch next := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		updated, _ = m.Update(next)
		m = updated.(AppModel)
	}
	return m
}

func TestWelcomeHandsOverToHome(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyPressMsg{Code: 'x', Text: "x"})

	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok, "expected home screen, got %T", m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHeaderShowsModelThenLastResult(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.render(), "onnx")

	a, err := m.opts.Service.Evaluate(context.Background(), features.DefaultInputs())
	require.NoError(t, err)
	m.session.Apply(a)
	assert.Contains(t, m.render(), "last: high risk")
}

func TestFormStartsFromLastInputs(t *testing.T) {
	m := newTestModel(t)
	in := features.DefaultInputs()
	in.Age = 61
	a, err := m.opts.Service.Evaluate(context.Background(), in)
	require.NoError(t, err)
	m.session.Apply(a)

	f, ok := m.formFactory().(*form.FormScreen)
	require.True(t, ok)
	got, err := f.Inputs()
	require.NoError(t, err)
	assert.Equal(t, 61, got.Age)
}

func TestTooSmallTerminal(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "too small")
}

type busyScreen struct{ busy bool }

func (s *busyScreen) Init() tea.Cmd                           { return nil }
func (s *busyScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *busyScreen) View(int, int) string                    { return "" }
func (s *busyScreen) Title() string                           { return "Busy" }
func (s *busyScreen) Busy() bool                              { return s.busy }

func TestEscWaitsForBusyScreen(t *testing.T) {
	m := newTestModel(t)
	s := &busyScreen{busy: true}
	m.router.Push(s)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "busy screen must not be popped")

	s.busy = false
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
