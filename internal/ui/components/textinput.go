package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jpsleep/sleepcheck/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for a single numeric value. Only
// digits are accepted, plus one decimal point when Decimals > 0.
type NumberInput struct {
	Model    textinput.Model
	Decimals int
	invalid  bool
}

// NewNumberInput creates a blurred input holding value.
func NewNumberInput(value float64, decimals, charLimit int) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = charLimit
	ti.SetValue(strconv.FormatFloat(value, 'f', decimals, 64))
	return NumberInput{Model: ti, Decimals: decimals}
}

// Focus focuses the input and moves the cursor to the end.
func (n *NumberInput) Focus() tea.Cmd {
	n.Model.CursorEnd()
	return n.Model.Focus()
}

// Blur removes focus.
func (n *NumberInput) Blur() { n.Model.Blur() }

// Update handles messages, dropping keys that cannot be part of a number.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			c := key[0]
			switch {
			case c >= '0' && c <= '9':
			case c == '.' && n.Decimals > 0 && !strings.Contains(n.Model.Value(), "."):
			default:
				return n, nil
			}
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	n.invalid = false
	return n, cmd
}

// View renders the input, marked when the last check failed.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the parsed value.
func (n NumberInput) Value() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(n.Model.Value()), 64)
}

// SetValue replaces the text with v.
func (n *NumberInput) SetValue(v float64) {
	n.Model.SetValue(strconv.FormatFloat(v, 'f', n.Decimals, 64))
	n.invalid = false
}

// MarkInvalid flags the input until the next edit.
func (n *NumberInput) MarkInvalid() { n.invalid = true }
