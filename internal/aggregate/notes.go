package aggregate

import (
	"github.com/shopspring/decimal"
)

type SpendingNote int

const (
	SpendingCalm SpendingNote = iota
	SpendingUnderControl
	SpendingHigh
)

type BalanceNote int

const (
	BalanceNegative BalanceNote = iota
	BalanceGrowing
	BalanceStrong
)

type MonthNote int

const (
	MonthEmpty MonthNote = iota
	MonthSaving
	MonthSpending
)

var three = decimal.NewFromInt(3)
var two = decimal.NewFromInt(2)

// SpendingNoteFor compares spent against a third of saved.
func SpendingNoteFor(spent, saved decimal.Decimal) SpendingNote {
	switch {
	case spent.IsZero():
		return SpendingCalm
	case spent.LessThan(saved.Div(three)):
		return SpendingUnderControl
	default:
		return SpendingHigh
	}
}

// BalanceNoteFor compares the balance against half the goal amount.
func BalanceNoteFor(balance, goal decimal.Decimal) BalanceNote {
	switch {
	case !balance.IsPositive():
		return BalanceNegative
	case balance.LessThan(goal.Div(two)):
		return BalanceGrowing
	default:
		return BalanceStrong
	}
}

func MonthNoteFor(saved, spent decimal.Decimal) MonthNote {
	switch {
	case saved.IsZero() && spent.IsZero():
		return MonthEmpty
	case saved.GreaterThanOrEqual(spent):
		return MonthSaving
	default:
		return MonthSpending
	}
}

func (n SpendingNote) String() string {
	switch n {
	case SpendingCalm:
		return "So far... very calm."
	case SpendingUnderControl:
		return "Spending under control."
	default:
		return "Spending is catching up with savings."
	}
}

func (n BalanceNote) String() string {
	switch n {
	case BalanceNegative:
		return "Spending has caught up with savings. Time to save again."
	case BalanceGrowing:
		return "Slow and steady, the balance is growing."
	default:
		return "Healthy balance."
	}
}

func (n MonthNote) String() string {
	switch n {
	case MonthEmpty:
		return "Add a few entries to see how this month is going."
	case MonthSaving:
		return "Saving more than spending this month."
	default:
		return "Spending more than saving this month."
	}
}
