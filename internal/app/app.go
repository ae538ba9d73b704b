package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/jpsleep/sleepcheck/internal/screens/form"
	"github.com/jpsleep/sleepcheck/internal/screens/history"
	"github.com/jpsleep/sleepcheck/internal/screens/home"
	"github.com/jpsleep/sleepcheck/internal/screens/result"
	"github.com/jpsleep/sleepcheck/internal/screens/welcome"
	"github.com/jpsleep/sleepcheck/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Service    *assess.Service
	Advisor    *advisor.Advisor // nil disables advice
	History    history.Source   // nil hides the history screen
	ReportPath string
	ModelInfo  string
	Logger     zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *assess.Session
	opts    Options
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts, session: &assess.Session{}}
	m.router = router.New(welcome.New(m.homeFactory))
	return m
}

func (m AppModel) homeFactory() screen.Screen {
	hopts := home.Options{
		NewForm:   m.formFactory,
		ModelInfo: m.opts.ModelInfo,
	}
	if m.opts.History != nil {
		hopts.History = func() screen.Screen { return history.New(m.opts.History) }
	}
	return home.New(hopts)
}

// formFactory starts from the last evaluated inputs so a follow-up
// assessment only needs the changed fields.
func (m AppModel) formFactory() screen.Screen {
	initial := features.DefaultInputs()
	if cur := m.session.Current(); cur != nil {
		initial = cur.Inputs
	}
	return form.New(m.opts.Service, m.session, initial, m.resultFactory)
}

func (m AppModel) resultFactory(a *assess.Assessment) screen.Screen {
	return result.New(result.Deps{
		Service:    m.opts.Service,
		Session:    m.session,
		Advisor:    m.opts.Advisor,
		ReportPath: m.opts.ReportPath,
		Logger:     m.opts.Logger,
	}, a)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && !screen.IsBusy(m.router.Active()) {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status summarises the last result, or the loaded model before any run.
func (m AppModel) status() string {
	cur := m.session.Current()
	if cur == nil {
		return m.opts.ModelInfo + "  "
	}
	if cur.Prediction.Positive() {
		return "last: high risk  "
	}
	return "last: low risk  "
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
