package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdMu        sync.Mutex
	mdRenderers = map[int]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for a terminal of the given width. When the
// renderer cannot be built the raw markdown is returned.
func RenderMarkdown(md string, width int) string {
	wrap := max(width-4, 20)

	mdMu.Lock()
	r, ok := mdRenderers[wrap]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			mdMu.Unlock()
			return md
		}
		mdRenderers[wrap] = r
	}
	out, err := r.Render(md)
	mdMu.Unlock()

	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// Scroll returns the height-line window of content starting at offset,
// with offset clamped to the content.
func Scroll(content string, offset, height int) (string, int) {
	lines := strings.Split(content, "\n")
	if height <= 0 || len(lines) <= height {
		return content, 0
	}
	offset = min(max(offset, 0), len(lines)-height)
	return strings.Join(lines[offset:offset+height], "\n"), offset
}
