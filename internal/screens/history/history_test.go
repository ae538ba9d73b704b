package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/store"
)

type fakeSource struct {
	records []store.AssessmentRecord
	err     error
	opts    store.QueryOpts
}

func (f *fakeSource) QueryAssessments(_ context.Context, opts store.QueryOpts) ([]store.AssessmentRecord, error) {
	f.opts = opts
	return f.records, f.err
}

func record(t *testing.T, prediction int, labels ...string) store.AssessmentRecord {
	t.Helper()
	inputs, err := json.Marshal(features.DefaultInputs())
	require.NoError(t, err)
	p := 0.75
	return store.AssessmentRecord{
		ID:        1,
		Sequence:  1,
		Timestamp: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		AssessmentEventData: store.AssessmentEventData{
			AssessmentID: "a-1",
			Source:       "tui",
			Inputs:       inputs,
			BMI:          24.2,
			BMICategory:  "Normal",
			Prediction:   prediction,
			Probability:  &p,
			Labels:       labels,
		},
	}
}

func load(t *testing.T, src *fakeSource) *HistoryScreen {
	t.Helper()
	s := New(src)
	msg := s.Init()()
	s.Update(msg)
	return s
}

func TestLoadsWithLimit(t *testing.T) {
	src := &fakeSource{records: []store.AssessmentRecord{record(t, 1, "Insomnia")}}
	s := load(t, src)

	assert.Equal(t, Limit, src.opts.Limit)
	view := s.View(100, 30)
	assert.Contains(t, view, "high risk")
	assert.Contains(t, view, "Insomnia")
	assert.Contains(t, view, "75%")
}

func TestEmptyHistory(t *testing.T) {
	s := load(t, &fakeSource{})
	assert.Contains(t, s.View(100, 30), "No assessments yet")
}

func TestLoadError(t *testing.T) {
	s := load(t, &fakeSource{err: errors.New("db locked")})
	assert.Contains(t, s.View(100, 30), "db locked")
}

func TestExpandShowsInputs(t *testing.T) {
	s := load(t, &fakeSource{records: []store.AssessmentRecord{record(t, 0), record(t, 1)}})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected, "selection stays on last row")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(100, 40)
	assert.Contains(t, view, "Source: tui")
	assert.Contains(t, view, "BMI category: Normal")
}

func TestEscPops(t *testing.T) {
	s := load(t, &fakeSource{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
