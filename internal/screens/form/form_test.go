package form

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/rs/zerolog"
)

type passScaler struct{}

func (passScaler) Transform(v features.Vector) (features.Vector, error) { return v, nil }

type stubClassifier struct {
	pred model.Prediction
	err  error
}

func (c stubClassifier) Predict(features.Vector) (model.Prediction, error) { return c.pred, c.err }

type stubScreen struct{ a *assess.Assessment }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "result" }
func (s *stubScreen) Title() string                           { return "Result" }

func newTestForm(t *testing.T, clf model.Classifier) (*FormScreen, *assess.Session) {
	t.Helper()
	svc, err := assess.New(assess.Options{Scaler: passScaler{}, Classifier: clf, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatal(err)
	}
	sess := &assess.Session{}
	f := New(svc, sess, features.DefaultInputs(), func(a *assess.Assessment) screen.Screen {
		return &stubScreen{a: a}
	})
	f.Init()
	return f, sess
}

func press(f *FormScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = f.Update(k)
	}
	return cmd
}

var (
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyPgUp  = tea.KeyPressMsg{Code: tea.KeyPgUp}
	keyBack  = tea.KeyPressMsg{Code: tea.KeyBackspace}
)

func typeText(f *FormScreen, s string) {
	for _, r := range s {
		f.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestRows_FormOrder(t *testing.T) {
	f, _ := newTestForm(t, stubClassifier{})
	var labels []string
	for _, r := range f.rows {
		labels = append(labels, r.label)
	}
	if labels[0] != "Age" || labels[1] != "Gender" || labels[2] != "Occupation" || labels[3] != "Height (cm)" {
		t.Errorf("unexpected leading rows %v", labels[:4])
	}
	if labels[len(labels)-1] != "Predict" {
		t.Errorf("expected Predict last, got %q", labels[len(labels)-1])
	}
	if len(f.rows) != len(features.Bounds())+3 {
		t.Errorf("expected %d rows, got %d", len(features.Bounds())+3, len(f.rows))
	}
}

func TestInputs_DefaultsRoundTrip(t *testing.T) {
	f, _ := newTestForm(t, stubClassifier{})
	got, err := f.Inputs()
	if err != nil {
		t.Fatalf("Inputs: %v", err)
	}
	if got != features.DefaultInputs() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestChoiceRows(t *testing.T) {
	f, _ := newTestForm(t, stubClassifier{})
	press(f, keyDown, keyRight)
	press(f, keyDown, keyRight, keyRight)

	got, _ := f.Inputs()
	if got.Gender != features.GenderFemale {
		t.Errorf("expected Female, got %s", got.Gender)
	}
	if got.Occupation != features.OccupationEngineer {
		t.Errorf("expected Engineer, got %s", got.Occupation)
	}
}

func TestStep_ClampsToBound(t *testing.T) {
	f, _ := newTestForm(t, stubClassifier{})
	// Focus age (row 0) and step past the maximum.
	for range 200 {
		press(f, keyPgUp)
	}
	got, _ := f.Inputs()
	if got.Age != 100 {
		t.Errorf("expected age clamped to 100, got %d", got.Age)
	}
}

func TestFocusBounds(t *testing.T) {
	f, _ := newTestForm(t, stubClassifier{})
	press(f, keyUp)
	if f.focus != 0 {
		t.Errorf("expected focus to stay at 0, got %d", f.focus)
	}
	for range 50 {
		press(f, keyDown)
	}
	if f.focus != len(f.rows)-1 {
		t.Errorf("expected focus on submit row, got %d", f.focus)
	}
}

func submitForm(f *FormScreen) tea.Msg {
	for range len(f.rows) {
		press(f, keyDown)
	}
	cmd := press(f, keyEnter)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestSubmit_PushesResultAndAppliesSession(t *testing.T) {
	f, sess := newTestForm(t, stubClassifier{pred: model.HighRisk})

	msg := submitForm(f)
	ev, ok := msg.(evaluatedMsg)
	if !ok {
		t.Fatalf("expected evaluatedMsg, got %T", msg)
	}
	if ev.err != nil {
		t.Fatalf("evaluation failed: %v", ev.err)
	}
	if !f.Busy() {
		t.Error("form should report busy while the evaluation is in flight")
	}

	_, cmd := f.Update(ev)
	if f.Busy() {
		t.Error("form should be idle once the evaluation lands")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg")
	}
	if push.Screen.(*stubScreen).a != ev.assessment {
		t.Error("result screen should receive the assessment")
	}
	if !sess.CanExport() {
		t.Error("expected session to hold labels after positive result")
	}
}

func TestSubmit_ValidationErrorFocusesField(t *testing.T) {
	f, sess := newTestForm(t, stubClassifier{pred: model.HighRisk})

	// Clear the age and type an out-of-range value.
	press(f, keyBack, keyBack)
	typeText(f, "5")

	msg := submitForm(f)
	f.Update(msg)

	if f.focus != 0 {
		t.Errorf("expected focus back on age, got row %d", f.focus)
	}
	if !strings.Contains(f.errMsg, "age") {
		t.Errorf("expected age in error, got %q", f.errMsg)
	}
	if sess.Current() != nil {
		t.Error("session should be untouched by a rejected submission")
	}
}

func TestSubmit_PredictionErrorShown(t *testing.T) {
	f, _ := newTestForm(t, stubClassifier{err: errors.New("model exploded")})

	msg := submitForm(f)
	_, cmd := f.Update(msg)
	if cmd != nil {
		t.Error("expected no navigation on failure")
	}
	if !strings.HasPrefix(f.errMsg, "Prediction failed") {
		t.Errorf("unexpected error message %q", f.errMsg)
	}
	if !strings.Contains(f.View(100, 60), "Prediction failed") {
		t.Error("expected error in view")
	}
}

func TestView_ShowsBMIAndHint(t *testing.T) {
	f, _ := newTestForm(t, stubClassifier{})
	// Move to quality of sleep for its guidance hint.
	for f.rows[f.focus].bound.Field != features.FieldQualityOfSleep {
		press(f, keyDown)
	}
	view := f.View(120, 80)
	for _, want := range []string{"BMI Category", "Normal", "Fair (light sleep", "Personal information", "Predict"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
