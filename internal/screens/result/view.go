package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/report"
	"github.com/jpsleep/sleepcheck/internal/ui/components"
	"github.com/jpsleep/sleepcheck/internal/ui/layout"
	"github.com/jpsleep/sleepcheck/internal/ui/theme"
)

func (r *ResultScreen) View(width, height int) string {
	bw := layout.BlockWidth(width)
	a := r.assessment

	var sections []string
	sections = append(sections, headline(a, bw))

	stats := fmt.Sprintf("BMI %.1f (%s)", a.BMI, a.BMICategory)
	if a.Probability != nil {
		sections = append(sections, components.NewGauge("Risk score", *a.Probability, true, min(bw, 60)).View())
	}
	sections = append(sections, theme.Hint.Render(stats))

	sections = append(sections, components.RenderMarkdown(detailMarkdown(a), bw))

	if notes := r.renderNotes(bw); notes != "" {
		sections = append(sections, notes)
	}

	sections = append(sections, r.menu.View())
	if r.status != "" {
		style := theme.LowRisk
		if r.statusErr {
			style = theme.HighRisk
		}
		sections = append(sections, style.Width(bw).Render(r.status))
	}
	sections = append(sections, theme.Hint.Width(bw).Render(report.Disclaimer()))

	content := strings.Join(sections, "\n\n")
	view, off := components.Scroll(content, r.offset, height)
	r.offset = off
	return layout.CenterBlock(view, bw, width)
}

func headline(a *assess.Assessment, width int) string {
	style := theme.LowRisk
	icon := "✓ "
	if a.Positive() {
		style = theme.HighRisk
		icon = "⚠ "
	}
	return style.Width(width).Render(icon + a.Headline())
}

// detailMarkdown lists the suggested disorders for a positive result and
// the healthy-sleep habits otherwise.
func detailMarkdown(a *assess.Assessment) string {
	var b strings.Builder
	if a.Positive() {
		fmt.Fprintf(&b, "**Possible Sleep Disorders:** %s\n\n", strings.Join(a.LabelStrings(), ", "))
		for _, e := range a.Entries {
			fmt.Fprintf(&b, "### %s\n\n", e.Label)
			fmt.Fprintf(&b, "**Definition:** %s\n\n", e.Definition)
			fmt.Fprintf(&b, "**Tips:** %s\n\n", e.Tip)
		}
		return b.String()
	}

	b.WriteString("### Tips for Healthy Sleep\n\n")
	for i, h := range disorder.HealthyHabits() {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, h.Title, h.Detail)
	}
	return b.String()
}

func (r *ResultScreen) renderNotes(width int) string {
	if r.adviceLoading {
		return theme.Hint.Render("Preparing personal notes...")
	}
	if r.advice == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Personal notes") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(r.advice.Summary))
	for _, s := range r.advice.Suggestions {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render("• "+s))
	}
	return b.String()
}
