package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestChoice_Cycles(t *testing.T) {
	c := NewChoice([]string{"Male", "Female", "Other"}, "Female")
	if c.Value() != "Female" {
		t.Fatalf("expected Female, got %q", c.Value())
	}
	c, _ = c.Update(key("right"))
	c, _ = c.Update(key("right"))
	if c.Value() != "Male" {
		t.Errorf("expected wrap to Male, got %q", c.Value())
	}
	c, _ = c.Update(key("left"))
	if c.Value() != "Other" {
		t.Errorf("expected Other, got %q", c.Value())
	}
}

func TestChoice_UnknownCurrentStartsAtFirst(t *testing.T) {
	c := NewChoice([]string{"a", "b"}, "z")
	if c.Selected != 0 {
		t.Errorf("expected first option, got %d", c.Selected)
	}
}

func TestNumberInput_FiltersKeys(t *testing.T) {
	n := NewNumberInput(7, 1, 5)
	n.Focus()
	n.Model.SetValue("")

	for _, k := range []string{"6", "x", ".", "5", ".", "-"} {
		n, _ = n.Update(key(k))
	}
	if got := n.Model.Value(); got != "6.5" {
		t.Fatalf("expected 6.5, got %q", got)
	}
	v, err := n.Value()
	if err != nil || v != 6.5 {
		t.Errorf("Value() = %v, %v", v, err)
	}
}

func TestNumberInput_IntegerRejectsDecimalPoint(t *testing.T) {
	n := NewNumberInput(25, 0, 3)
	n.Focus()
	n, _ = n.Update(key("."))
	if got := n.Model.Value(); got != "25" {
		t.Errorf("expected 25, got %q", got)
	}
}

func TestNumberInput_InvalidMarkClearsOnEdit(t *testing.T) {
	n := NewNumberInput(25, 0, 3)
	n.Focus()
	n.MarkInvalid()
	if !strings.Contains(n.View(), "✗") {
		t.Fatal("expected invalid marker")
	}
	n, _ = n.Update(key("1"))
	if strings.Contains(n.View(), "✗") {
		t.Error("expected marker cleared after edit")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A"}, {Label: "B", Disabled: true}, {Label: "C"}})
	m, _ = m.Update(key("down"))
	if m.Selected != 2 {
		t.Errorf("expected selection to skip disabled item, got %d", m.Selected)
	}

	m.SetDisabled(2, true)
	if m.Selected != 0 {
		t.Errorf("expected selection to move off disabled item, got %d", m.Selected)
	}
}

func TestGauge_Percent(t *testing.T) {
	g := NewGauge("Risk", 0.5, true, 30)
	view := g.View()
	if !strings.Contains(view, "Risk") || !strings.Contains(view, "50%") {
		t.Errorf("unexpected gauge %q", view)
	}
	if NewGauge("", -1, false, 10).View() == "" {
		t.Error("expected a rendered bar for out-of-range values")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("## Insomnia\n\nDifficulty falling asleep.", 60)
	if !strings.Contains(out, "Insomnia") || !strings.Contains(out, "asleep") {
		t.Errorf("unexpected render %q", out)
	}
}

func TestScroll(t *testing.T) {
	content := "a\nb\nc\nd\ne"
	view, off := Scroll(content, 10, 2)
	if view != "d\ne" || off != 3 {
		t.Errorf("got %q at %d", view, off)
	}
	view, off = Scroll(content, -1, 2)
	if view != "a\nb" || off != 0 {
		t.Errorf("got %q at %d", view, off)
	}
	if view, _ := Scroll(content, 2, 10); view != content {
		t.Errorf("short content should be returned whole, got %q", view)
	}
}
