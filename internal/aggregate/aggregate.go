// Package aggregate derives dashboard figures from a ledger snapshot.
//
// Every function here is a pure reduction over the transactions it is given:
// no storage access and no wall clock. Sums are computed in exact decimal
// arithmetic so category totals add up to the spent total to the cent.
package aggregate

import (
	"sort"
	"time"

	"budgethub/internal/core"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summarize computes the all-time totals. Contributions from anyone other
// than "you" or "partner" are left out of both per-person totals, and
// therefore out of Saved.
func Summarize(txs []core.Transaction) core.Summary {
	var s core.Summary
	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case core.Contribution:
			switch t.Person {
			case core.You:
				s.YouAdded = s.YouAdded.Add(amount)
			case core.Partner:
				s.PartnerAdded = s.PartnerAdded.Add(amount)
			}
		case core.Expense:
			s.Spent = s.Spent.Add(amount)
		}
	}
	s.Saved = s.YouAdded.Add(s.PartnerAdded)
	s.Balance = s.Saved.Sub(s.Spent)
	return s
}

// Month computes saved/spent for the calendar month containing now, judged
// in now's location. Transactions without a parsable dateISO are skipped.
// Dates and timestamps written without a zone are read in now's location.
func Month(txs []core.Transaction, now time.Time) core.MonthTotals {
	m := core.MonthTotals{Year: now.Year(), Month: int(now.Month())}
	for _, t := range txs {
		at, ok := parseInstant(t.DateISO, now.Location())
		if !ok {
			continue
		}
		at = at.In(now.Location())
		if at.Year() != now.Year() || at.Month() != now.Month() {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case core.Contribution:
			m.Saved = m.Saved.Add(amount)
		case core.Expense:
			m.Spent = m.Spent.Add(amount)
		}
	}
	return m
}

// CategoryTotals sums expenses per category. Uncategorised expenses are
// bucketed under core.DefaultCategory.
func CategoryTotals(txs []core.Transaction) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{}
	for _, t := range txs {
		if t.Type != core.Expense {
			continue
		}
		cat := t.CategoryOrDefault()
		totals[cat] = totals[cat].Add(decimal.NewFromFloat(t.Amount))
	}
	return totals
}

// SortedCategories orders totals by amount, largest first. Equal amounts
// are ordered by name.
func SortedCategories(totals map[string]decimal.Decimal) []core.CategoryAmount {
	out := make([]core.CategoryAmount, 0, len(totals))
	for name, amount := range totals {
		out = append(out, core.CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopCategory returns the category with the largest total.
func TopCategory(totals map[string]decimal.Decimal) (core.CategoryAmount, bool) {
	sorted := SortedCategories(totals)
	if len(sorted) == 0 {
		return core.CategoryAmount{}, false
	}
	return sorted[0], true
}

// Breakdown returns the sorted categories with bar widths relative to the
// largest one.
func Breakdown(totals map[string]decimal.Decimal) []core.CategoryShare {
	sorted := SortedCategories(totals)
	out := make([]core.CategoryShare, 0, len(sorted))
	if len(sorted) == 0 {
		return out
	}
	largest := sorted[0].Amount
	for _, c := range sorted {
		width := decimal.Zero
		if largest.IsPositive() {
			width = c.Amount.Div(largest).Mul(hundred)
		}
		out = append(out, core.CategoryShare{CategoryAmount: c, Width: width})
	}
	return out
}

// zonelessLayouts are ISO-8601 forms without an offset.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

func parseInstant(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
