package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/jpsleep/sleepcheck/internal/screens/preview"
	"github.com/jpsleep/sleepcheck/internal/ui/components"
	"github.com/jpsleep/sleepcheck/internal/ui/theme"
)

const moonArt = `    _.--._
  .'  .-'
 /   /      *
|   |    .
 \   '.__.-;
  '-._  _.'`

// Options wires the home menu to the rest of the app.
type Options struct {
	// NewForm builds a fresh assessment form.
	NewForm func() screen.Screen
	// History builds the history screen; nil hides the entry.
	History func() screen.Screen
	// ModelInfo is shown under the title, e.g. the classifier kind.
	ModelInfo string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts Options
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(opts Options) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "New assessment", Action: push(opts.NewForm)},
		{Label: "Disorder guide", Action: push(func() screen.Screen {
			return preview.New("Disorder guide", GuideMarkdown())
		})},
	}
	if opts.History != nil {
		items = append(items, components.MenuItem{Label: "History", Action: push(opts.History)})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})

	return &HomeScreen{opts: opts, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	if height >= 20 {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(moonArt))
	}
	sections = append(sections,
		theme.Title.Render("S L E E P C H E C K"),
		theme.Subtitle.Render("Screen your sleep health in a minute"),
	)
	if h.opts.ModelInfo != "" {
		sections = append(sections, theme.Hint.Render(h.opts.ModelInfo))
	}

	menu := theme.Card.Width(32).Render(strings.TrimRight(h.menu.View(), "\n"))
	sections = append(sections, menu)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// GuideMarkdown lists every disorder in the knowledge base followed by the
// general healthy-sleep habits.
func GuideMarkdown() string {
	var b strings.Builder
	b.WriteString("# Sleep disorder guide\n\n")
	for _, e := range disorder.AllEntries() {
		fmt.Fprintf(&b, "## %s\n\n", e.Label)
		fmt.Fprintf(&b, "**Definition:** %s\n\n", e.Definition)
		fmt.Fprintf(&b, "**Tips:** %s\n\n", e.Tip)
	}
	b.WriteString("## Tips for Healthy Sleep\n\n")
	for i, h := range disorder.HealthyHabits() {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, h.Title, h.Detail)
	}
	return b.String()
}
