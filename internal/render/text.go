package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/creditimpact/internal/impact"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
	colorReset  = "\033[0m"
)

// TextOptions control terminal rendering.
type TextOptions struct {
	Color bool
}

// ColorFor maps a severity tag to an ANSI colour sequence.
func ColorFor(tag impact.Tag) string {
	switch tag {
	case impact.TagNegativeSevere:
		return colorRed
	case impact.TagNegativeMild:
		return colorYellow
	case impact.TagPositive:
		return colorGreen
	default:
		return colorGray
	}
}

// Text writes a report as a title header, an aligned terminal summary, the
// breakdown table and then the tips and footer.
func Text(w io.Writer, r *impact.Report, opts TextOptions) error {
	paint := func(tag impact.Tag, s string) string {
		if !opts.Color {
			return s
		}
		return ColorFor(tag) + s + colorReset
	}
	bold := func(s string) string {
		if !opts.Color {
			return s
		}
		return colorBold + s + colorReset
	}

	res := r.Result
	var b strings.Builder
	if r.Title != "" {
		fmt.Fprintf(&b, "%s\n", bold(r.Title))
		if r.Subtitle != "" {
			fmt.Fprintf(&b, "%s\n", r.Subtitle)
		}
		b.WriteString("\n")
	}
	if r.Source.Scenario != "" {
		fmt.Fprintf(&b, "%s\n", bold(r.Source.Scenario))
	}
	fmt.Fprintf(&b, "Estimated Credit Impact: %s (%+d)\n", paint(res.LabelTag, string(res.Label)), res.TotalImpact)
	fmt.Fprintf(&b, "Risk Level:              %s\n", paint(res.RiskTag, string(res.Risk)))
	fmt.Fprintf(&b, "Factors Affecting:       %d\n", len(res.Factors))
	if r.Source.Clamped {
		fmt.Fprintf(&b, "Utilization clamped to:  %+d%%\n", r.Input.UtilizationChange)
	}
	b.WriteString("\n")

	// Cells are padded before colouring so escape codes do not skew the columns.
	rows := make([][3]string, 0, len(res.Factors)+1)
	rows = append(rows, [3]string{"ACTION", "IMPACT", "WEIGHT"})
	for _, f := range res.Factors {
		rows = append(rows, [3]string{f.Action, string(f.Impact), string(f.Weight)})
	}
	widths := columnWidths(rows)
	for i, row := range rows {
		impactCell := pad(row[1], widths[1])
		if i > 0 {
			impactCell = paint(res.Factors[i-1].Tag, impactCell)
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", pad(row[0], widths[0]), impactCell, row[2])
	}

	if len(r.Tips) > 0 {
		b.WriteString("\nTips:\n")
		for _, tip := range r.Tips {
			fmt.Fprintf(&b, "  - %s\n", tip)
		}
	}
	if r.Disclaimer != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Disclaimer)
	}
	if len(r.Notes) > 0 || r.Copyright != "" {
		b.WriteString("\n")
		if len(r.Notes) > 0 {
			fmt.Fprintf(&b, "%s\n", strings.Join(prefixAll(r.Notes, "• "), " "))
		}
		if r.Copyright != "" {
			fmt.Fprintf(&b, "%s\n", r.Copyright)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Tips writes the tip list, one per line.
func Tips(w io.Writer, tips []string) error {
	var b strings.Builder
	for _, tip := range tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func columnWidths(rows [][3]string) [3]int {
	var widths [3]int
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
