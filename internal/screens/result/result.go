// Package result shows one assessment and offers the report download.
package result

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/report"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/jpsleep/sleepcheck/internal/screens/preview"
	"github.com/jpsleep/sleepcheck/internal/ui/components"
	"github.com/jpsleep/sleepcheck/internal/ui/layout"
)

const adviceTimeout = 45 * time.Second

// Deps are the collaborators shared by every result screen.
type Deps struct {
	Service    *assess.Service
	Session    *assess.Session
	Advisor    *advisor.Advisor // optional
	ReportPath string
	Logger     zerolog.Logger
}

type adviceMsg struct {
	assessmentID string
	advice       *advisor.Advice
	err          error
}

type exportedMsg struct {
	path string
	err  error
}

// menu item indices
const (
	itemDownload = iota
	itemPreview
	itemNew
	itemHome
)

// ResultScreen renders an assessment.
type ResultScreen struct {
	deps       Deps
	assessment *assess.Assessment
	menu       components.Menu

	advice        *advisor.Advice
	adviceLoading bool

	exporting bool
	status    string
	statusErr bool

	offset int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.BusyReporter = (*ResultScreen)(nil)

// New creates a result screen for a. The session must already hold a.
func New(deps Deps, a *assess.Assessment) *ResultScreen {
	r := &ResultScreen{deps: deps, assessment: a}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "Download report", Action: r.export},
		{Label: "Preview report", Action: r.preview},
		{Label: "New assessment", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
		{Label: "Back to home", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	})
	r.syncMenu()
	return r
}

// syncMenu offers the report actions only while the session has labels.
func (r *ResultScreen) syncMenu() {
	canExport := r.deps.Session.CanExport() && !r.exporting
	r.menu.SetDisabled(itemDownload, !canExport)
	r.menu.SetDisabled(itemPreview, !r.deps.Session.CanExport())
}

func (r *ResultScreen) Init() tea.Cmd {
	if !r.deps.Advisor.Enabled() {
		return nil
	}
	r.adviceLoading = true
	adv, a := r.deps.Advisor, r.assessment
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adviceTimeout)
		defer cancel()
		out, err := adv.Advise(ctx, a)
		return adviceMsg{assessmentID: a.ID, advice: out, err: err}
	}
}

// Busy is true while a report is being written.
func (r *ResultScreen) Busy() bool { return r.exporting }

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if r.deps.Session.CanExport() {
		hints = append(hints, layout.KeyHint{Key: "d", Description: "Download"})
	}
	return append(hints,
		layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"},
		layout.KeyHint{Key: "Esc", Description: "Edit answers"},
	)
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceMsg:
		r.adviceLoading = false
		if msg.err != nil {
			r.deps.Logger.Warn().Err(msg.err).Msg("personal notes unavailable")
			return r, nil
		}
		if r.deps.Session.AttachNotes(msg.assessmentID, msg.advice.Summary, msg.advice.Suggestions) {
			r.advice = msg.advice
		}
		return r, nil

	case exportedMsg:
		r.exporting = false
		switch {
		case msg.err == nil:
			r.status = "Report saved to " + msg.path
			r.statusErr = false
		case errors.Is(msg.err, assess.ErrNothingToExport):
			r.status = "Nothing to export: no disorders were suggested."
			r.statusErr = true
		default:
			r.status = "Could not save the report: " + msg.err.Error()
			r.statusErr = true
		}
		r.syncMenu()
		return r, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "d":
			if r.deps.Session.CanExport() && !r.exporting {
				return r, r.export()
			}
			return r, nil
		case "pgup":
			r.offset = max(r.offset-10, 0)
			return r, nil
		case "pgdown":
			r.offset += 10
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) export() tea.Cmd {
	r.exporting = true
	r.status = "Saving report..."
	r.statusErr = false
	r.syncMenu()

	svc, sess, path := r.deps.Service, r.deps.Session, r.reportPath()
	return func() tea.Msg {
		ctx := assess.WithSource(context.Background(), assess.SourceTUI)
		return exportedMsg{path: path, err: svc.Export(ctx, sess, path)}
	}
}

func (r *ResultScreen) preview() tea.Cmd {
	opts := report.Options{GeneratedAt: time.Now()}
	if r.advice != nil {
		opts.Summary = r.advice.Summary
		opts.Notes = r.advice.Suggestions
	}
	doc := report.Build(r.deps.Session.Labels(), opts)
	next := preview.New("Report preview", report.Markdown(doc))
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (r *ResultScreen) reportPath() string {
	if r.deps.ReportPath != "" {
		return r.deps.ReportPath
	}
	return report.DefaultFileName
}
