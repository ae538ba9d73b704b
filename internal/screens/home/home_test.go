package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/router"
	"github.com/jpsleep/sleepcheck/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func TestNewAssessmentPushesForm(t *testing.T) {
	h := New(Options{NewForm: func() screen.Screen { return &stubScreen{title: "form"} }})

	_, cmd := h.Update(enter)
	if cmd == nil {
		t.Fatal("expected command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "form" {
		t.Errorf("expected form screen, got %q", push.Screen.Title())
	}
}

func TestHistoryHiddenWithoutStore(t *testing.T) {
	h := New(Options{NewForm: func() screen.Screen { return &stubScreen{} }})
	for _, it := range h.menu.Items {
		if it.Label == "History" {
			t.Fatal("history should be hidden without a store")
		}
	}

	h = New(Options{
		NewForm: func() screen.Screen { return &stubScreen{} },
		History: func() screen.Screen { return &stubScreen{title: "history"} },
	})
	if !strings.Contains(h.View(100, 40), "History") {
		t.Error("expected History entry")
	}
}

func TestGuideCoversKnowledgeBase(t *testing.T) {
	md := GuideMarkdown()
	for _, l := range disorder.AllLabels() {
		if !strings.Contains(md, "## "+string(l)) {
			t.Errorf("guide missing %q", l)
		}
	}
}
