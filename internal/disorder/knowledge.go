package disorder

import "fmt"

// Entry is the reference text for one label.
type Entry struct {
	Label      Label  `json:"label"`
	Definition string `json:"definition"`
	Tip        string `json:"tip"`
}

// registry is keyed by label and built from seedEntries.
var registry map[Label]*Entry

func init() {
	registry = make(map[Label]*Entry, len(seedEntries))
	for i := range seedEntries {
		e := &seedEntries[i]
		registry[e.Label] = e
	}
}

// Lookup returns the entry for a label.
func Lookup(l Label) (Entry, bool) {
	e, ok := registry[l]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// MustLookup returns the entry for a label the rule engine produced. Every
// such label has an entry, so a miss is a programming error.
func MustLookup(l Label) Entry {
	e, ok := Lookup(l)
	if !ok {
		panic(fmt.Sprintf("disorder: no knowledge base entry for %q", l))
	}
	return e
}

// AllLabels returns every label in canonical order.
func AllLabels() []Label {
	out := make([]Label, len(seedEntries))
	for i, e := range seedEntries {
		out[i] = e.Label
	}
	return out
}

// AllEntries returns every entry in canonical order.
func AllEntries() []Entry {
	out := make([]Entry, len(seedEntries))
	copy(out, seedEntries)
	return out
}

// ParseLabel matches s exactly against the known labels.
func ParseLabel(s string) (Label, bool) {
	l := Label(s)
	_, ok := registry[l]
	return l, ok
}
