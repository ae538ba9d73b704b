// Package report renders assessment results into a downloadable document.
package report

import (
	"time"

	"github.com/jpsleep/sleepcheck/internal/disorder"
)

// DefaultFileName is where the report is written when no path is configured.
const DefaultFileName = "Sleep_Disorder_Report.pdf"

const (
	title         = "Sleep Disorder Prediction Report"
	introDetected = "Based on the provided health parameters, the following sleep disorders have been detected:"
	introNone     = "Based on the provided health parameters, no specific sleep disorders have been detected."
	tipsHeading   = "Tips for Healthy Sleep"
	notesHeading  = "Personal Notes"
	disclaimer    = "This report comes from a screening model and is not a medical diagnosis. Please consult a qualified healthcare professional about any sleep concerns."
)

var generalTips = []string{
	"Maintain a consistent sleep schedule.",
	"Create a relaxing bedtime routine.",
	"Stay physically active but avoid intense workouts before bed.",
	"Optimize your sleep environment (dark, quiet, cool).",
	"Manage stress with meditation, deep breathing, or journaling.",
}

// GeneralTips returns the fixed sleep-hygiene tips every report ends with.
func GeneralTips() []string {
	out := make([]string, len(generalTips))
	copy(out, generalTips)
	return out
}

// Block is the section for one detected disorder.
type Block struct {
	Title      string
	Definition string
	Tip        string
}

// Document is the renderer-independent report content, in reading order.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Intro       string
	Blocks      []Block
	TipsHeading string
	Tips        []string
	// Summary and Notes are optional personal advice.
	Summary    string
	Notes      []string
	Disclaimer string
}

// Options carries the optional parts of a report.
type Options struct {
	GeneratedAt time.Time
	Summary     string
	Notes       []string
}

// Build assembles the document for labels in the given order. Labels are
// expected to come from the rule engine, so each has a knowledge base entry.
func Build(labels []disorder.Label, opts Options) Document {
	doc := Document{
		Title:       title,
		GeneratedAt: opts.GeneratedAt,
		Intro:       introNone,
		TipsHeading: tipsHeading,
		Tips:        GeneralTips(),
		Summary:     opts.Summary,
		Notes:       append([]string(nil), opts.Notes...),
		Disclaimer:  disclaimer,
	}
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now()
	}

	if len(labels) > 0 {
		doc.Intro = introDetected
		doc.Blocks = make([]Block, 0, len(labels))
		for _, l := range labels {
			e := disorder.MustLookup(l)
			doc.Blocks = append(doc.Blocks, Block{
				Title:      string(e.Label),
				Definition: e.Definition,
				Tip:        e.Tip,
			})
		}
	}
	return doc
}

// HasNotes reports whether the document carries personal advice.
func (d Document) HasNotes() bool {
	return d.Summary != "" || len(d.Notes) > 0
}

// Disclaimer returns the notice closing every report.
func Disclaimer() string { return disclaimer }
