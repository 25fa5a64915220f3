// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts typed by users
// and formatting totals for display.
package core

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "$"

var ErrMalformedAmount = errors.New("malformed amount")

// ParseAmount converts a decimal string to an amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and keeps
// every digit given; display rounds to cents. Signs are rejected; zero is
// returned as-is so that callers decide whether zero is acceptable (goals
// allow it, transactions do not).
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("12.345") -> 12.345, nil
//	ParseAmount("-1")     -> 0, ErrMalformedAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMalformedAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrMalformedAmount
	}
	if strings.Count(s, ".") > 1 {
		return 0, ErrMalformedAmount
	}
	for _, r := range s {
		if r != '.' && !unicode.IsDigit(r) {
			return 0, ErrMalformedAmount
		}
	}
	if s == "." {
		return 0, ErrMalformedAmount
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(s, "."))
	if err != nil {
		return 0, ErrMalformedAmount
	}
	return d.InexactFloat64(), nil
}

// FormatCurrency renders an amount as the currency symbol followed by a
// two-decimal fixed representation.
func FormatCurrency(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}

// FormatFloat formats a raw stored amount. Non-finite values render as zero.
func FormatFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return FormatCurrency(decimal.NewFromFloat(amount))
}
