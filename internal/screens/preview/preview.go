// Package preview shows a scrollable rendered markdown document.
package preview

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
	"github.com/jpsleep/sleepcheck/internal/ui/components"
	"github.com/jpsleep/sleepcheck/internal/ui/layout"
)

// PreviewScreen renders markdown with glamour.
type PreviewScreen struct {
	title    string
	markdown string
	offset   int

	width    int
	rendered string
}

var _ screen.Screen = (*PreviewScreen)(nil)
var _ screen.KeyHintProvider = (*PreviewScreen)(nil)

// New creates a preview of markdown under title.
func New(title, markdown string) *PreviewScreen {
	return &PreviewScreen{title: title, markdown: markdown}
}

func (p *PreviewScreen) Init() tea.Cmd { return nil }

func (p *PreviewScreen) Title() string { return p.title }

func (p *PreviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "up", "k":
		p.offset--
	case "down", "j":
		p.offset++
	case "pgup":
		p.offset -= 10
	case "pgdown", "space":
		p.offset += 10
	case "home", "g":
		p.offset = 0
	case "q":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	p.offset = max(p.offset, 0)
	return p, nil
}

func (p *PreviewScreen) View(width, height int) string {
	bw := layout.BlockWidth(width)
	if p.rendered == "" || p.width != bw {
		p.rendered = components.RenderMarkdown(p.markdown, bw)
		p.width = bw
	}
	view, off := components.Scroll(p.rendered, p.offset, height)
	p.offset = off
	return layout.CenterBlock(view, bw, width)
}
