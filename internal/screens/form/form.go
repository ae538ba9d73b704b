package form

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/jpsleep/sleepcheck/internal/ui/components"
	"github.com/jpsleep/sleepcheck/internal/ui/layout"
)

type rowKind int

const (
	rowNumber rowKind = iota
	rowGender
	rowOccupation
	rowSubmit
)

type row struct {
	kind   rowKind
	label  string
	bound  features.Bound
	num    components.NumberInput
	choice components.Choice
}

type evaluatedMsg struct {
	assessment *assess.Assessment
	err        error
}

// ResultFactory builds the screen shown after a successful evaluation.
type ResultFactory func(*assess.Assessment) screen.Screen

// FormScreen collects one submission and runs the pipeline on Predict.
type FormScreen struct {
	svc      *assess.Service
	session  *assess.Session
	onResult ResultFactory

	rows    []row
	focus   int
	errMsg  string
	pending bool
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.BusyReporter = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a form pre-filled with initial.
func New(svc *assess.Service, session *assess.Session, initial features.RawInputs, onResult ResultFactory) *FormScreen {
	f := &FormScreen{svc: svc, session: session, onResult: onResult}
	f.rows = buildRows(initial)
	return f
}

// buildRows lays the fields out in form order: age, gender, occupation,
// then the remaining numeric fields, then the submit row.
func buildRows(in features.RawInputs) []row {
	bounds := features.Bounds()
	rows := make([]row, 0, len(bounds)+3)
	for _, b := range bounds {
		rows = append(rows, row{
			kind:  rowNumber,
			label: b.Label,
			bound: b,
			num:   components.NewNumberInput(in.Get(b.Field), b.Decimals, charLimit(b)),
		})
		if b.Field == features.FieldAge {
			rows = append(rows,
				row{kind: rowGender, label: "Gender", choice: components.NewChoice(genderOptions(), string(in.Gender))},
				row{kind: rowOccupation, label: "Occupation", choice: components.NewChoice(occupationOptions(), string(in.Occupation))},
			)
		}
	}
	return append(rows, row{kind: rowSubmit, label: "Predict"})
}

func charLimit(b features.Bound) int {
	n := len(fmt.Sprintf("%.*f", b.Decimals, b.Max))
	return n
}

func genderOptions() []string {
	out := make([]string, 0, 3)
	for _, g := range features.Genders() {
		out = append(out, string(g))
	}
	return out
}

func occupationOptions() []string {
	out := make([]string, 0, 9)
	for _, o := range features.Occupations() {
		out = append(out, string(o))
	}
	return out
}

func (f *FormScreen) Init() tea.Cmd {
	return f.setFocus(0)
}

// Busy is true while an evaluation is running.
func (f *FormScreen) Busy() bool { return f.pending }

func (f *FormScreen) Title() string {
	return "Sleep Assessment"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Field"}}
	switch f.rows[f.focus].kind {
	case rowNumber:
		hints = append(hints, layout.KeyHint{Key: "PgUp/PgDn", Description: "Step"})
	case rowGender, rowOccupation:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Choose"})
	case rowSubmit:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Predict"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		f.pending = false
		if msg.err != nil {
			f.errMsg = describeError(msg.err)
			if field, ok := invalidField(msg.err); ok {
				return f, f.focusField(field)
			}
			return f, nil
		}
		f.errMsg = ""
		f.session.Apply(msg.assessment)
		next := f.onResult(msg.assessment)
		return f, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyPressMsg:
		if f.pending {
			return f, nil
		}
		switch msg.String() {
		case "up", "shift+tab":
			return f, f.setFocus(f.focus - 1)
		case "down", "tab":
			return f, f.setFocus(f.focus + 1)
		case "pgup":
			f.step(1)
			return f, nil
		case "pgdown":
			f.step(-1)
			return f, nil
		case "enter":
			if f.rows[f.focus].kind == rowSubmit {
				return f, f.submit()
			}
			return f, f.setFocus(f.focus + 1)
		}
	}

	return f, f.updateFocused(msg)
}

func (f *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	r := &f.rows[f.focus]
	var cmd tea.Cmd
	switch r.kind {
	case rowNumber:
		r.num, cmd = r.num.Update(msg)
	case rowGender, rowOccupation:
		r.choice, cmd = r.choice.Update(msg)
	}
	return cmd
}

func (f *FormScreen) setFocus(i int) tea.Cmd {
	if i < 0 || i >= len(f.rows) {
		return nil
	}
	prev := &f.rows[f.focus]
	switch prev.kind {
	case rowNumber:
		prev.num.Blur()
	case rowGender, rowOccupation:
		prev.choice.Focused = false
	}

	f.focus = i
	cur := &f.rows[i]
	switch cur.kind {
	case rowNumber:
		return cur.num.Focus()
	case rowGender, rowOccupation:
		cur.choice.Focused = true
	}
	return nil
}

func (f *FormScreen) focusField(field features.Field) tea.Cmd {
	for i, r := range f.rows {
		if r.kind == rowNumber && r.bound.Field == field {
			f.rows[i].num.MarkInvalid()
			return f.setFocus(i)
		}
	}
	return nil
}

// step nudges the focused numeric field by its bound step, clamped.
func (f *FormScreen) step(dir float64) {
	r := &f.rows[f.focus]
	if r.kind != rowNumber {
		return
	}
	v, err := r.num.Value()
	if err != nil {
		v = r.bound.Default
	}
	v = min(max(v+dir*r.bound.Step, r.bound.Min), r.bound.Max)
	r.num.SetValue(v)
}

// Inputs collects the current form values. Unparseable numbers are
// reported as a validation error on that field.
func (f *FormScreen) Inputs() (features.RawInputs, error) {
	var in features.RawInputs
	for _, r := range f.rows {
		switch r.kind {
		case rowNumber:
			v, err := r.num.Value()
			if err != nil {
				return in, &features.ValidationError{Field: r.bound.Field, Min: r.bound.Min, Max: r.bound.Max}
			}
			in.Set(r.bound.Field, v)
		case rowGender:
			in.Gender = features.Gender(r.choice.Value())
		case rowOccupation:
			in.Occupation = features.Occupation(r.choice.Value())
		}
	}
	return in, nil
}

func (f *FormScreen) submit() tea.Cmd {
	in, err := f.Inputs()
	if err != nil {
		return func() tea.Msg { return evaluatedMsg{err: err} }
	}
	f.pending = true
	f.errMsg = ""
	svc := f.svc
	return func() tea.Msg {
		ctx := assess.WithSource(context.Background(), assess.SourceTUI)
		a, err := svc.Evaluate(ctx, in)
		return evaluatedMsg{assessment: a, err: err}
	}
}

func invalidField(err error) (features.Field, bool) {
	var verr *features.ValidationError
	if errors.As(err, &verr) {
		return verr.Field, true
	}
	return "", false
}

func describeError(err error) string {
	var perr *model.PredictionError
	if errors.As(err, &perr) {
		return "Prediction failed: " + perr.Error()
	}
	return err.Error()
}
