// internal/summary/report.go
package summary

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const timeSpanFormat = "2006-01-02 15:04:05"

// Render produces the report text for an aggregate. Rendering the same
// aggregate twice yields identical bytes.
func Render(a *Aggregate, topN int) string {
	if topN <= 0 {
		topN = 5
	}

	var b strings.Builder
	b.WriteString("===== LOG SUMMARY =====\n")
	fmt.Fprintf(&b, "File: %s\n", a.Path)
	if a.FirstSeen.IsZero() {
		b.WriteString("Time span: N/A\n")
	} else {
		fmt.Fprintf(&b, "Time span: %s → %s\n",
			a.FirstSeen.Format(timeSpanFormat), a.LastSeen.Format(timeSpanFormat))
	}
	fmt.Fprintf(&b, "Total lines processed: %s\n", humanize.Comma(int64(a.TotalLines)))

	b.WriteString("\nLog Level Counts:\n")
	for _, lc := range a.Levels() {
		fmt.Fprintf(&b, "  %s: %d\n", lc.Level, lc.Count)
	}

	fmt.Fprintf(&b, "\nTop %d Repeated Error Messages:\n", topN)
	for _, sc := range a.TopErrors(topN) {
		fmt.Fprintf(&b, "  (%dx) %s\n", sc.Count, sc.Signature)
	}
	return b.String()
}
