package screen

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type plain struct{}

func (plain) Init() tea.Cmd                      { return nil }
func (p plain) Update(tea.Msg) (Screen, tea.Cmd) { return p, nil }
func (plain) View(int, int) string               { return "" }
func (plain) Title() string                      { return "" }

type busy struct {
	plain
	on bool
}

func (b busy) Busy() bool { return b.on }

func TestIsBusy(t *testing.T) {
	if IsBusy(plain{}) {
		t.Error("screen without BusyReporter is never busy")
	}
	if IsBusy(busy{}) {
		t.Error("idle screen reported busy")
	}
	if !IsBusy(busy{on: true}) {
		t.Error("busy screen not reported")
	}
}
