package assess

import (
	"sync"

	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/model"
)

// Session carries the latest result of one user's interaction from the
// evaluation step to the export step. It replaces process-wide state: each
// surface owns its own Session.
type Session struct {
	mu         sync.Mutex
	current    *Assessment
	prediction model.Prediction
	labels     []disorder.Label
	summary    string
	notes      []string
}

// Apply stores an assessment's prediction and labels. A negative prediction
// clears the labels. Any advice notes from a previous assessment are
// dropped.
func (s *Session) Apply(a *Assessment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = a
	s.prediction = a.Prediction
	s.labels = nil
	if a.Positive() {
		s.labels = append([]disorder.Label(nil), a.Labels...)
	}
	s.summary = ""
	s.notes = nil
}

// AttachNotes stores advice for the assessment with the given ID. Notes for
// a stale assessment are ignored.
func (s *Session) AttachNotes(assessmentID, summary string, notes []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != assessmentID {
		return false
	}
	s.summary = summary
	s.notes = append([]string(nil), notes...)
	return true
}

// CanExport reports whether there are labels to put in a report.
func (s *Session) CanExport() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.labels) > 0
}

// Labels returns a copy of the stored labels.
func (s *Session) Labels() []disorder.Label {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]disorder.Label(nil), s.labels...)
}

// Prediction returns the stored prediction.
func (s *Session) Prediction() model.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prediction
}

// Current returns the latest assessment, or nil.
func (s *Session) Current() *Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) snapshot() (id string, labels []disorder.Label, summary string, notes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		id = s.current.ID
	}
	return id, append([]disorder.Label(nil), s.labels...), s.summary, append([]string(nil), s.notes...)
}
