package ledger

import (
	"strings"
	"time"

	"budgethub/internal/core"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh transaction id.
type IDGenerator func() string

// NewID generates a random UUID.
func NewID() string {
	return uuid.NewString()
}

// NewTransaction carries the user-supplied fields of a transaction.
type NewTransaction struct {
	Type     core.TransactionType
	Person   core.Person
	Amount   float64
	Category string
	Note     string
}

// AddTransaction validates the input and returns a copy of l with the new
// transaction at the head. l itself is never modified.
func AddTransaction(l core.Ledger, in NewTransaction, now time.Time, newID IDGenerator) (core.Ledger, core.Transaction, error) {
	if newID == nil {
		newID = NewID
	}

	tx := core.Transaction{
		Type:     in.Type,
		Person:   in.Person,
		Amount:   in.Amount,
		Category: in.Category,
		Note:     strings.TrimSpace(in.Note),
	}
	if err := tx.Validate(); err != nil {
		return l, core.Transaction{}, err
	}

	tx.ID = newID()
	tx.Date = now.Format(core.DisplayDateLayout)
	tx.DateISO = now.UTC().Format(core.ISODateLayout)

	txs := make([]core.Transaction, 0, len(l.Transactions)+1)
	txs = append(txs, tx)
	txs = append(txs, l.Transactions...)

	return core.Ledger{Goal: l.Goal, Transactions: txs}, tx, nil
}

// DeleteTransaction returns a copy of l without the transaction matching id.
// The boolean reports whether anything was removed; an unknown id is not an
// error.
func DeleteTransaction(l core.Ledger, id string) (core.Ledger, bool) {
	idx := -1
	for i, tx := range l.Transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return l, false
	}

	txs := make([]core.Transaction, 0, len(l.Transactions)-1)
	txs = append(txs, l.Transactions[:idx]...)
	txs = append(txs, l.Transactions[idx+1:]...)
	return core.Ledger{Goal: l.Goal, Transactions: txs}, true
}

// SetGoal returns a copy of l with the goal replaced. A blank name falls
// back to the default goal name.
func SetGoal(l core.Ledger, name string, amount float64) (core.Ledger, error) {
	if err := core.ValidateGoalAmount(amount); err != nil {
		return l, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = core.DefaultGoalName
	}
	return core.Ledger{
		Goal:         core.Goal{Name: name, Amount: amount},
		Transactions: l.Transactions,
	}, nil
}
