package wizard

import (
	"fmt"
	"strings"

	"github.com/hmuraoka/shinkoku-navi/internal/table"
)

// BuildProfile renders the answer map as a freeform Japanese profile string
// for the advice fetcher: one line per answered question in table order,
// question text plus the chosen option's label. Unanswered questions are
// skipped, so a partial map produces a shorter profile rather than failing.
func BuildProfile(tbl *table.Table, answers Answers) string {
	var sb strings.Builder
	for _, q := range tbl.Questions {
		optID, answered := answers[q.ID]
		if !answered {
			continue
		}
		opt, ok := q.Option(optID)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "- %s → %s\n", q.Text, opt.Label)
	}
	return sb.String()
}
