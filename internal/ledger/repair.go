// Package ledger owns the persisted budget record: decoding it with
// field-level repair, applying mutations and reading/writing it through a
// key-value backend.
package ledger

import (
	"bytes"
	"encoding/json"

	"budgethub/internal/core"
)

// Repairs records which parts of a stored snapshot had to be replaced by
// defaults. A zero value means the snapshot was used as-is.
type Repairs struct {
	Unparsable          bool
	GoalReset           bool
	TransactionsReset   bool
	DroppedTransactions int
}

// Any reports whether anything was repaired.
func (r Repairs) Any() bool {
	return r.Unparsable || r.GoalReset || r.TransactionsReset ||
		r.DroppedTransactions > 0
}

// ParseLedger decodes a stored snapshot, falling back to defaults field by
// field. It never fails: the worst case is an empty ledger with the default
// goal. Goal and transactions are repaired independently.
func ParseLedger(raw []byte) (core.Ledger, Repairs) {
	var rep Repairs
	l := core.NewLedger()

	if len(bytes.TrimSpace(raw)) == 0 {
		return l, rep
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		rep.Unparsable = true
		return l, rep
	}

	goal, goalRep := parseGoal(fields["goal"])
	l.Goal = goal
	rep.GoalReset = goalRep.GoalReset

	txs, txRep := parseTransactions(fields["transactions"])
	l.Transactions = txs
	rep.TransactionsReset = txRep.TransactionsReset
	rep.DroppedTransactions = txRep.DroppedTransactions

	return l, rep
}

func parseGoal(raw json.RawMessage) (core.Goal, Repairs) {
	var rep Repairs
	if !isJSONObject(raw) {
		rep.GoalReset = true
		return core.DefaultGoal(), rep
	}

	var stored struct {
		Name   string   `json:"name"`
		Amount *float64 `json:"amount"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		rep.GoalReset = true
		return core.DefaultGoal(), rep
	}

	g := core.Goal{Name: stored.Name}
	if stored.Amount != nil {
		g.Amount = *stored.Amount
	}
	if g.Validate() != nil {
		rep.GoalReset = true
		return core.DefaultGoal(), rep
	}
	return g, rep
}

func parseTransactions(raw json.RawMessage) ([]core.Transaction, Repairs) {
	var rep Repairs
	var items []json.RawMessage
	if !isJSONArray(raw) || json.Unmarshal(raw, &items) != nil {
		rep.TransactionsReset = true
		return []core.Transaction{}, rep
	}

	txs := make([]core.Transaction, 0, len(items))
	for _, item := range items {
		if !isJSONObject(item) {
			rep.DroppedTransactions++
			continue
		}
		var tx core.Transaction
		if err := json.Unmarshal(item, &tx); err != nil {
			rep.DroppedTransactions++
			continue
		}
		txs = append(txs, tx)
	}
	return txs, rep
}

func isJSONObject(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '{'
}

func isJSONArray(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '['
}
