package render

import (
	"testing"
	"time"

	"budgethub/internal/aggregate"
	"budgethub/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestDashboardEmpty(t *testing.T) {
	out := Dashboard(aggregate.Build(core.NewLedger(), time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)))

	assert.Contains(t, out, core.DefaultGoalName)
	assert.Contains(t, out, "Set a goal amount to start tracking progress")
	assert.Contains(t, out, "$0.00")
	assert.Contains(t, out, "2025-01")
	assert.Contains(t, out, emptyBars)
	assert.Contains(t, out, "Top: "+noTopCatText)
}

func TestDashboardScenario(t *testing.T) {
	l := core.Ledger{
		Goal: core.Goal{Name: "Trip", Amount: 200},
		Transactions: []core.Transaction{
			{ID: "2", Type: core.Expense, Person: core.You, Amount: 40, Category: "food"},
			{ID: "1", Type: core.Contribution, Person: core.You, Amount: 100},
		},
	}

	out := Dashboard(aggregate.Build(l, time.Now()))

	assert.Contains(t, out, "Trip")
	assert.Contains(t, out, "50% complete")
	assert.Contains(t, out, "$100.00")
	assert.Contains(t, out, "$60.00")
	assert.Contains(t, out, "food (")
	assert.Contains(t, out, "$40.00")
}

func TestTransactions(t *testing.T) {
	assert.Contains(t, Transactions(nil), emptyTable)

	out := Transactions([]core.Transaction{
		{ID: "abc", Type: core.Contribution, Person: core.Partner, Amount: 12.5, Category: "gift", Note: "birthday", Date: "3/7/2025"},
	})

	for _, want := range []string{"Partner", "Contribution", "$12.50", "gift", "birthday", "3/7/2025", "abc"} {
		assert.Contains(t, out, want)
	}
}

func TestBarClamps(t *testing.T) {
	assert.Contains(t, bar(150), "█")
	assert.NotPanics(t, func() { bar(-20) })
}
