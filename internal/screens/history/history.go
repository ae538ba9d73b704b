package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/jpsleep/sleepcheck/internal/store"
	"github.com/jpsleep/sleepcheck/internal/ui/layout"
	"github.com/jpsleep/sleepcheck/internal/ui/theme"
)

// Limit caps how many past assessments are loaded.
const Limit = 50

// Source is the slice of the event log the history screen reads.
type Source interface {
	QueryAssessments(ctx context.Context, opts store.QueryOpts) ([]store.AssessmentRecord, error)
}

type historyLoadedMsg struct {
	Records []store.AssessmentRecord
	Err     error
}

// HistoryScreen lists past assessments, newest first.
type HistoryScreen struct {
	source   Source
	records  []store.AssessmentRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(source Source) *HistoryScreen {
	return &HistoryScreen{
		source:   source,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.source.QueryAssessments(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter", "space":
			if len(s.records) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Run one from the home screen!")
	}

	blockWidth := layout.BlockWidth(width)
	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(prefix+summaryLine(rec)) + "\n")

		if s.expanded[i] {
			for _, line := range detailLines(rec) {
				b.WriteString(theme.Hint.Render("    "+line) + "\n")
			}
		}
	}

	return layout.CenterBlock(b.String(), blockWidth, width)
}

func summaryLine(rec store.AssessmentRecord) string {
	result := theme.LowRisk.Render("low risk")
	if rec.Prediction == 1 {
		result = theme.HighRisk.Render("high risk")
	}
	line := fmt.Sprintf("%s  %-9s  BMI %.1f", rec.Timestamp.Local().Format("Jan 02, 2006 15:04"), result, rec.BMI)
	if rec.Probability != nil {
		line += fmt.Sprintf("  %.0f%%", *rec.Probability*100)
	}
	if len(rec.Labels) > 0 {
		line += "  " + strings.Join(rec.Labels, ", ")
	}
	return line
}

// detailLines renders the stored inputs of one record, one field per line.
func detailLines(rec store.AssessmentRecord) []string {
	var in features.RawInputs
	if err := json.Unmarshal(rec.Inputs, &in); err != nil {
		return []string{"Inputs unavailable: " + err.Error()}
	}
	lines := []string{
		"Source: " + rec.Source,
		fmt.Sprintf("Gender: %s   Occupation: %s", in.Gender, in.Occupation),
	}
	for _, bd := range features.Bounds() {
		lines = append(lines, fmt.Sprintf("%s: %s",
			bd.Label, strconv.FormatFloat(in.Get(bd.Field), 'f', bd.Decimals, 64)))
	}
	lines = append(lines, "BMI category: "+rec.BMICategory)
	return lines
}
