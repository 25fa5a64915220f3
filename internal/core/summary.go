package core

import "github.com/shopspring/decimal"

// Summary holds all-time totals for the dashboard cards.
type Summary struct {
	YouAdded     decimal.Decimal
	PartnerAdded decimal.Decimal
	Spent        decimal.Decimal
	Saved        decimal.Decimal
	Balance      decimal.Decimal
}

// MonthTotals is the saved/spent pair for a single calendar month.
type MonthTotals struct {
	Year  int
	Month int // 1-12
	Saved decimal.Decimal
	Spent decimal.Decimal
}

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// CategoryShare is a category total with its bar width relative to the
// largest category, in percent.
type CategoryShare struct {
	CategoryAmount
	Width decimal.Decimal
}
