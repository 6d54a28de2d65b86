package output

import (
	"fmt"

	"github.com/sshblend/sshblend/internal/core/domain"
)

// ReportTable lays out a run report's per-fragment outcomes. The wide
// layout adds the skip reason column.
func ReportTable(r *domain.RunReport, wide bool) *Table {
	t := &Table{Headers: []string{"FRAGMENT", "SECTION", "MATCHED"}}
	if wide {
		t.Headers = append(t.Headers, "REASON")
	}

	for _, fr := range r.Fragments {
		matched := "-"
		if fr.Matched != nil {
			matched = fr.Matched.String()
		}
		row := []string{fr.Name, fr.Section(), matched}
		if wide {
			reason := fr.Reason
			if reason == "" {
				reason = "-"
			}
			row = append(row, reason)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ReportSummary is the one-line human summary of a run.
func ReportSummary(r *domain.RunReport) string {
	return fmt.Sprintf("%d fragment(s): %d composed, %d skipped; %d bytes",
		len(r.Fragments), r.Composed(), r.SkippedCount(), r.Bytes)
}
