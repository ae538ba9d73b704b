package report

import (
	"fmt"
	"strings"
)

// Markdown renders doc as Markdown for terminal preview.
func Markdown(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	b.WriteString(doc.Intro + "\n\n")

	for _, blk := range doc.Blocks {
		fmt.Fprintf(&b, "## %s\n\n", blk.Title)
		fmt.Fprintf(&b, "**Definition:** %s\n\n", blk.Definition)
		fmt.Fprintf(&b, "**Tips:** %s\n\n", blk.Tip)
	}

	fmt.Fprintf(&b, "## %s\n\n", doc.TipsHeading)
	for _, tip := range doc.Tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	b.WriteString("\n")

	if doc.HasNotes() {
		fmt.Fprintf(&b, "## %s\n\n", notesHeading)
		if doc.Summary != "" {
			b.WriteString(doc.Summary + "\n\n")
		}
		for _, n := range doc.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "_%s_\n", doc.Disclaimer)
	return b.String()
}
