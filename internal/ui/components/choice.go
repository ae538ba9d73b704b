package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jpsleep/sleepcheck/internal/ui/theme"
)

// Choice is an inline selector over a fixed option list, cycled with
// left/right.
type Choice struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a selector starting at the option equal to current,
// or the first option.
func NewChoice(options []string, current string) Choice {
	c := Choice{Options: options}
	for i, o := range options {
		if o == current {
			c.Selected = i
			break
		}
	}
	return c
}

// Update handles left/right cycling.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}
	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// Value returns the selected option.
func (c Choice) Value() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders "‹ value ›" with arrows only while focused.
func (c Choice) View() string {
	if !c.Focused {
		return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + c.Value())
	}
	arrow := lipgloss.NewStyle().Foreground(theme.TextDim)
	return arrow.Render("‹ ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.Value()) +
		arrow.Render(" ›")
}
