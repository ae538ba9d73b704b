package disorder

import "testing"

func TestLookup_TotalOverLabels(t *testing.T) {
	labels := AllLabels()
	if len(labels) != 7 {
		t.Fatalf("got %d labels, want 7", len(labels))
	}
	for _, l := range labels {
		e, ok := Lookup(l)
		if !ok {
			t.Errorf("Lookup(%q) missing", l)
			continue
		}
		if e.Definition == "" || e.Tip == "" {
			t.Errorf("entry %q has empty text", l)
		}
	}
}

func TestLookup_EveryRuleLabelResolves(t *testing.T) {
	for _, r := range DefaultRules() {
		if _, ok := Lookup(r.Label()); !ok {
			t.Errorf("rule label %q has no entry", r.Label())
		}
	}
	if _, ok := Lookup(LabelGeneralSleepDisorder); !ok {
		t.Error("fallback label has no entry")
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("Sleepwalking"); ok {
		t.Error("Lookup(Sleepwalking) should miss")
	}
}

func TestMustLookup_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup should panic for an unknown label")
		}
	}()
	MustLookup("Sleepwalking")
}

func TestSeedData_UniqueLabels(t *testing.T) {
	seen := make(map[Label]bool)
	for _, e := range seedEntries {
		if seen[e.Label] {
			t.Errorf("duplicate label: %s", e.Label)
		}
		seen[e.Label] = true
	}
}

func TestParseLabel(t *testing.T) {
	if l, ok := ParseLabel("Narcolepsy"); !ok || l != LabelNarcolepsy {
		t.Errorf("ParseLabel(Narcolepsy) = %q, %v", l, ok)
	}
	if _, ok := ParseLabel("narcolepsy"); ok {
		t.Error("ParseLabel should be exact")
	}
}

func TestHealthyHabits(t *testing.T) {
	habits := HealthyHabits()
	if len(habits) != 5 {
		t.Fatalf("got %d habits, want 5", len(habits))
	}
	for _, h := range habits {
		if h.Title == "" || h.Detail == "" {
			t.Errorf("habit with empty text: %+v", h)
		}
	}
}
