package aggregate

import (
	"fmt"

	"budgethub/internal/core"

	"github.com/shopspring/decimal"
)

const noGoalLabel = "Set a goal amount to start tracking progress"

// Progress is the goal progress view: how much is saved against the target.
type Progress struct {
	Goal      decimal.Decimal
	Saved     decimal.Decimal
	Remaining decimal.Decimal
	Percent   decimal.Decimal
	HasGoal   bool
}

// GoalProgress clamps Remaining to >= 0 and Percent to [0, 100]. A goal of
// zero yields zero percent.
func GoalProgress(goal core.Goal, saved decimal.Decimal) Progress {
	g := decimal.Zero
	if goal.Validate() == nil {
		g = decimal.NewFromFloat(goal.Amount)
	}

	p := Progress{
		Goal:      g,
		Saved:     saved,
		Remaining: decimal.Max(g.Sub(saved), decimal.Zero),
		Percent:   decimal.Zero,
		HasGoal:   g.IsPositive(),
	}
	if p.HasGoal {
		pct := saved.Div(g).Mul(hundred)
		p.Percent = decimal.Min(decimal.Max(pct, decimal.Zero), hundred)
	}
	return p
}

// Label is the caption shown under the progress bar.
func (p Progress) Label() string {
	if !p.HasGoal {
		return noGoalLabel
	}
	return fmt.Sprintf("%s%% complete", p.Percent.StringFixed(0))
}
