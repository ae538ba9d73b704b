package preview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jpsleep/sleepcheck/internal/router"
)

func longDoc() string {
	var b strings.Builder
	b.WriteString("# Guide\n\n")
	for i := 0; i < 40; i++ {
		b.WriteString("- line\n")
	}
	b.WriteString("\nThe end.\n")
	return b.String()
}

func TestScrollClampsAtBottom(t *testing.T) {
	p := New("Guide", longDoc())
	p.View(80, 10)

	for range 100 {
		p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := p.View(80, 10)
	if !strings.Contains(view, "The end.") {
		t.Errorf("expected bottom of document, got:\n%s", view)
	}
	if p.offset == 0 {
		t.Error("expected non-zero offset")
	}

	p.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if p.offset != 0 {
		t.Errorf("expected offset reset, got %d", p.offset)
	}
}

func TestQuitPops(t *testing.T) {
	p := New("Guide", "text")
	_, cmd := p.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
