package aggregate

import (
	"time"

	"budgethub/internal/core"
)

// Dashboard bundles every derived figure shown on the dashboard.
type Dashboard struct {
	GoalName    string
	Summary     core.Summary
	Progress    Progress
	Month       core.MonthTotals
	Categories  []core.CategoryShare
	Top         core.CategoryAmount
	HasTop      bool
	Spending    SpendingNote
	Balance     BalanceNote
	MonthStatus MonthNote
}

// Build computes the dashboard for l as seen at now.
func Build(l core.Ledger, now time.Time) Dashboard {
	summary := Summarize(l.Transactions)
	progress := GoalProgress(l.Goal, summary.Saved)
	month := Month(l.Transactions, now)
	totals := CategoryTotals(l.Transactions)
	top, hasTop := TopCategory(totals)

	return Dashboard{
		GoalName:    l.Goal.DisplayName(),
		Summary:     summary,
		Progress:    progress,
		Month:       month,
		Categories:  Breakdown(totals),
		Top:         top,
		HasTop:      hasTop,
		Spending:    SpendingNoteFor(summary.Spent, summary.Saved),
		Balance:     BalanceNoteFor(summary.Balance, progress.Goal),
		MonthStatus: MonthNoteFor(month.Saved, month.Spent),
	}
}

// All matches any person or type in a Filter.
const All = "all"

// Filter selects transactions for the table view. Empty fields and All
// match everything.
type Filter struct {
	Person string
	Type   string
}

// Apply returns the matching transactions in their original order.
func (f Filter) Apply(txs []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if !matches(f.Person, string(t.Person)) || !matches(f.Type, string(t.Type)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(want, got string) bool {
	return want == "" || want == All || want == got
}
