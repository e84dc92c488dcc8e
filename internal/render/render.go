// Package render produces Markdown and terminal output from an impact report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/creditimpact/internal/impact"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *impact.Report) string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "Credit Impact Estimate"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if r.Subtitle != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Subtitle)
	}
	if r.Source.Scenario != "" {
		fmt.Fprintf(&b, "**Scenario:** %s\n", r.Source.Scenario)
	}

	// Summary
	res := r.Result
	fmt.Fprintf(&b, "**Estimated Credit Impact:** %s\n", res.Label)
	fmt.Fprintf(&b, "**Risk Level:** %s\n", res.Risk)
	fmt.Fprintf(&b, "**Factors Affecting:** %d\n", len(res.Factors))
	fmt.Fprintf(&b, "**Score:** %+d\n\n", res.TotalImpact)
	if r.Source.Clamped {
		fmt.Fprintf(&b, "_Utilization change was clamped to %+d%%._\n\n", r.Input.UtilizationChange)
	}

	// Tips
	if len(r.Tips) > 0 {
		b.WriteString("## Credit Score Factors\n\n")
		for _, tip := range r.Tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
		b.WriteString("\n")
	}

	// Breakdown
	b.WriteString("## Impact Breakdown\n\n")
	b.WriteString("| Action | Impact | Weight |\n")
	b.WriteString("|:--|:-:|--:|\n")
	for _, f := range res.Factors {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(f.Action), f.Impact, f.Weight)
	}
	b.WriteString("\n")

	if r.Disclaimer != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Disclaimer)
	}

	if len(r.Notes) > 0 {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "%s\n", strings.Join(prefixAll(r.Notes, "• "), " "))
	}
	if r.Copyright != "" {
		if len(r.Notes) == 0 {
			b.WriteString("---\n\n")
		} else {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", r.Copyright)
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func prefixAll(items []string, prefix string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = prefix + s
	}
	return out
}
