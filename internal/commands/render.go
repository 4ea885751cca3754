package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/pocketbook-dev/pocketbook/internal/export"
	"github.com/pocketbook-dev/pocketbook/internal/metrics"
	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/report"
)

func formatAmount(v int64) string {
	return humanize.Comma(v)
}

func renderSummary(w io.Writer, owner string, s metrics.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s's allowance\n", owner)
	fmt.Fprintf(tw, "  Balance:\t%s\n", formatAmount(s.Balance))
	fmt.Fprintf(tw, "  Received:\t%s\n", formatAmount(s.TotalIncome))
	fmt.Fprintf(tw, "  Spent:\t%s\n", formatAmount(-s.TotalExpense))

	switch {
	case !s.HasProgress:
		fmt.Fprintf(tw, "  Goal:\tnot set\n")
	case s.Standing.Reached:
		fmt.Fprintf(tw, "  Goal:\t%s%% of %s, reached! %s over the goal\n",
			s.Progress.StringFixed(0), formatAmount(s.Goal), formatAmount(s.Standing.Excess))
	default:
		fmt.Fprintf(tw, "  Goal:\t%s%% of %s, %s to go\n",
			s.Progress.StringFixed(0), formatAmount(s.Goal), formatAmount(s.Standing.Remaining))
	}
	fmt.Fprintf(tw, "  Entries:\t%d\n", s.Count)
	tw.Flush()
}

func renderList(w io.Writer, txns []model.Transaction) {
	if len(txns) == 0 {
		fmt.Fprintln(w, "No entries yet. Use \"add\" to record one.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tDate\tKind\tCategory\tAmount\tMemo")
	for i, t := range txns {
		sign := "+"
		if t.Kind == model.KindExpense {
			sign = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s%s\t%s\n",
			i+1, t.ID, t.Timestamp.Format(export.DateFormat), t.Kind, t.Category,
			sign, formatAmount(t.Magnitude()), t.Memo)
	}
	tw.Flush()
}

func renderBreakdown(w io.Writer, totals []report.CategoryTotal) {
	if len(totals) == 0 {
		fmt.Fprintln(w, "No expense data yet.")
		return
	}
	sum := report.ExpenseTotal(totals)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tSpent\tShare")
	for _, c := range totals {
		fmt.Fprintf(tw, "%s\t%s\t%s%%\n", c.Category, formatAmount(c.Total), c.Share(sum).StringFixed(1))
	}
	tw.Flush()
}
