package form

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/ui/components"
	"github.com/jpsleep/sleepcheck/internal/ui/layout"
	"github.com/jpsleep/sleepcheck/internal/ui/theme"
)

const labelWidth = 28

// section headings are printed above the row holding that field.
var sections = map[features.Field]string{
	features.FieldAge:           "Personal information",
	features.FieldSleepDuration: "Sleep details",
	features.FieldStressLevel:   "Health details",
}

func (f *FormScreen) View(width, height int) string {
	bw := layout.BlockWidth(width)
	in, inErr := f.Inputs()

	var lines []string
	focusLine := 0
	for i, r := range f.rows {
		if i == f.focus {
			focusLine = len(lines)
		}
		if r.kind == rowNumber {
			if title, ok := sections[r.bound.Field]; ok {
				if len(lines) > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, theme.Heading.Render(title))
			}
		}
		if r.kind == rowSubmit {
			lines = append(lines, "")
			focusLine = len(lines)
			lines = append(lines, components.NewButton(r.label, i == f.focus, nil).View())
			continue
		}
		lines = append(lines, f.renderRow(i, r))

		if r.kind == rowNumber && r.bound.Field == features.FieldWeight && inErr == nil && in.HeightCm > 0 {
			lines = append(lines, renderBMI(in))
		}
		if i == f.focus && r.kind == rowNumber {
			if hint := rowHint(r, in, inErr == nil); hint != "" {
				lines = append(lines, strings.Repeat(" ", labelWidth+2)+theme.Hint.Render(hint))
			}
		}
	}

	if f.pending {
		lines = append(lines, "", theme.Hint.Render("Evaluating..."))
	}
	if f.errMsg != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Error).Width(bw).Render(f.errMsg))
	}

	content := strings.Join(lines, "\n")
	// Keep the focused row visible on short terminals.
	if h := lipgloss.Height(content); h > height && height > 0 {
		all := strings.Split(content, "\n")
		start := min(max(focusLine-height/2, 0), len(all)-height)
		content = strings.Join(all[start:start+height], "\n")
	}
	return layout.CenterBlock(content, bw, width)
}

func (f *FormScreen) renderRow(i int, r row) string {
	label := r.label
	style := theme.Unselected
	marker := "  "
	if i == f.focus {
		style = theme.Selected
		marker = "▸ "
	}
	left := style.Render(fmt.Sprintf("%s%-*s", marker, labelWidth, label))

	var value string
	switch r.kind {
	case rowNumber:
		value = r.num.View()
	default:
		value = r.choice.View()
	}
	return left + value
}

func renderBMI(in features.RawInputs) string {
	bmi := features.BMI(in.HeightCm, in.WeightKg)
	cat := features.CategorizeBMI(bmi)
	text := fmt.Sprintf("%-*s  %.1f (%s)", labelWidth, "BMI Category", bmi, cat)
	return theme.Hint.Render(text)
}

func rowHint(r row, in features.RawInputs, parsed bool) string {
	b := r.bound
	rng := fmt.Sprintf("%.*f–%.*f", b.Decimals, b.Min, b.Decimals, b.Max)
	if !parsed {
		return rng
	}
	if h := features.Hint(b.Field, in); h != "" {
		return h + " · " + rng
	}
	return rng
}
