package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	Contribution TransactionType = "contribution"
	Expense      TransactionType = "expense"
)

const (
	You     Person = "you"
	Partner Person = "partner"
)

const (
	// DefaultGoalName is used whenever a goal has no usable name.
	DefaultGoalName = "Our shared goal"

	// DefaultCategory buckets expenses recorded without a category.
	DefaultCategory = "other"

	// DisplayDateLayout is the short form shown in transaction tables.
	DisplayDateLayout = "1/2/2006"

	// ISODateLayout matches the millisecond UTC instants written to dateISO.
	ISODateLayout = "2006-01-02T15:04:05.000Z"
)

type (
	TransactionType string

	Person string

	Goal struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
	}

	Transaction struct {
		ID       string          `json:"id"`
		Type     TransactionType `json:"type"`
		Person   Person          `json:"person"`
		Amount   float64         `json:"amount"`
		Category string          `json:"category"`
		Note     string          `json:"note"`
		Date     string          `json:"date"`
		DateISO  string          `json:"dateISO"`
	}

	// Ledger is the whole persisted state. Transactions are newest first.
	Ledger struct {
		Goal         Goal          `json:"goal"`
		Transactions []Transaction `json:"transactions"`
	}
)

var (
	ErrInvalidAmount     = errors.New("amount must be a finite number greater than zero")
	ErrInvalidGoalAmount = errors.New("goal amount must be a finite number not below zero")
	ErrInvalidPerson     = errors.New("person must be \"you\" or \"partner\"")
	ErrInvalidType       = errors.New("type must be \"contribution\" or \"expense\"")
)

// ValidationError reports rejected user input. The ledger is left unchanged
// whenever one is returned.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultGoal returns the goal used when none has been set.
func DefaultGoal() Goal {
	return Goal{Name: DefaultGoalName, Amount: 0}
}

// NewLedger returns an empty ledger with the default goal.
func NewLedger() Ledger {
	return Ledger{Goal: DefaultGoal(), Transactions: []Transaction{}}
}

func (t TransactionType) Valid() bool {
	return t == Contribution || t == Expense
}

func (p Person) Valid() bool {
	return p == You || p == Partner
}

// DisplayName is the capitalised label used in tables.
func (p Person) DisplayName() string {
	if p == You {
		return "You"
	}
	return "Partner"
}

func (t TransactionType) DisplayName() string {
	if t == Contribution {
		return "Contribution"
	}
	return "Expense"
}

// ValidateAmount accepts finite amounts strictly above zero.
func ValidateAmount(amount float64) error {
	if !isFinite(amount) || amount <= 0 {
		return &ValidationError{Field: "amount", Value: amount, Err: ErrInvalidAmount}
	}
	return nil
}

// ValidateGoalAmount accepts finite amounts at or above zero.
func ValidateGoalAmount(amount float64) error {
	if !isFinite(amount) || amount < 0 {
		return &ValidationError{Field: "goal amount", Value: amount, Err: ErrInvalidGoalAmount}
	}
	return nil
}

func (g Goal) Validate() error {
	return ValidateGoalAmount(g.Amount)
}

// DisplayName falls back to the default name for a blank goal name.
func (g Goal) DisplayName() string {
	if strings.TrimSpace(g.Name) == "" {
		return DefaultGoalName
	}
	return g.Name
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return &ValidationError{Field: "type", Value: t.Type, Err: ErrInvalidType}
	}
	if !t.Person.Valid() {
		return &ValidationError{Field: "person", Value: t.Person, Err: ErrInvalidPerson}
	}
	return ValidateAmount(t.Amount)
}

// CategoryOrDefault returns the category used for expense breakdowns.
func (t Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
