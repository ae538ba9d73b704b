// Package screen defines what the router stacks: full-body views between
// the header and the footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jpsleep/sleepcheck/internal/ui/layout"
)

// Screen is one page of the terminal UI.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only; the app draws the header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BusyReporter is implemented by screens with work in flight, such as an
// evaluation or a report export. The app does not pop a busy screen on Esc,
// so the result of that work always lands on the screen that started it.
type BusyReporter interface {
	Busy() bool
}

// IsBusy reports whether s has work in flight.
func IsBusy(s Screen) bool {
	b, ok := s.(BusyReporter)
	return ok && b.Busy()
}
