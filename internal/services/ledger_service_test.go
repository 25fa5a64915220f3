package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"budgethub/internal/aggregate"
	"budgethub/internal/core"
	"budgethub/internal/ledger"
	applog "budgethub/internal/log"
	"budgethub/internal/storage/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now time.Time) (*LedgerService, *memory.Store) {
	t.Helper()
	kv := memory.New()
	repo := ledger.NewRepository(kv, "test", nil)
	n := 0
	svc := NewLedgerService(repo, nil,
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	return svc, kv
}

func TestLedgerServiceScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC))

	_, err := svc.SetGoal(ctx, "Vacation", 200)
	require.NoError(t, err)
	c, err := svc.AddContribution(ctx, Entry{Person: core.You, Amount: 100, Category: "salary"})
	require.NoError(t, err)
	e, err := svc.AddExpense(ctx, Entry{Person: core.Partner, Amount: 40, Category: "food", Note: "groceries"})
	require.NoError(t, err)

	assert.Equal(t, "id-1", c.ID)
	assert.Equal(t, "id-2", e.ID)

	d := svc.Dashboard(ctx)
	assert.True(t, d.Summary.YouAdded.Equal(decimal.NewFromInt(100)))
	assert.True(t, d.Summary.Spent.Equal(decimal.NewFromInt(40)))
	assert.True(t, d.Summary.Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, d.Progress.Percent.Equal(decimal.NewFromInt(50)))
	assert.True(t, d.Month.Saved.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Vacation", d.GoalName)

	txs := svc.Ledger(ctx).Transactions
	require.Len(t, txs, 2)
	assert.Equal(t, "id-2", txs[0].ID, "newest first")

	expenses := svc.Transactions(ctx, aggregate.Filter{Type: "expense"})
	require.Len(t, expenses, 1)
	assert.Equal(t, "groceries", expenses[0].Note)
}

func TestLedgerServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Now())

	for i := 0; i < 3; i++ {
		_, err := svc.AddContribution(ctx, Entry{Person: core.Partner, Amount: float64(i + 1)})
		require.NoError(t, err)
	}

	removed, err := svc.DeleteTransaction(ctx, "id-2")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.DeleteTransaction(ctx, "id-2")
	require.NoError(t, err)
	assert.False(t, removed)

	txs := svc.Ledger(ctx).Transactions
	require.Len(t, txs, 2)
	assert.Equal(t, "id-3", txs[0].ID)
	assert.Equal(t, "id-1", txs[1].ID)
}

func TestLedgerServiceValidationLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(t, time.Now())

	_, err := svc.AddExpense(ctx, Entry{Person: core.You, Amount: 0})
	var verr *core.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, core.ErrInvalidAmount)

	_, err = svc.SetGoal(ctx, "x", -10)
	assert.ErrorIs(t, err, core.ErrInvalidGoalAmount)

	assert.Empty(t, kv.Keys(), "nothing should have been written")
}

func TestLedgerServiceRecoversFromCorruption(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewSeeded(map[string][]byte{"test": []byte("{{{")})
	svc := NewLedgerService(ledger.NewRepository(kv, "test", nil), nil)

	assert.Equal(t, core.NewLedger(), svc.Ledger(ctx))

	_, err := svc.AddContribution(ctx, Entry{Person: core.You, Amount: 12.5})
	require.NoError(t, err)
	assert.Len(t, svc.Ledger(ctx).Transactions, 1)
}

func TestLedgerServiceUsesContextLogger(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	var buf bytes.Buffer
	logger := applog.New(applog.Config{Output: &buf}).With(applog.FieldCommand, "spend")
	ctx := applog.WithContext(context.Background(), logger)

	_, err := svc.AddExpense(ctx, Entry{Person: core.You, Amount: 5, Category: "fun"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Transaction added")
	assert.Contains(t, out, "command=spend")
	assert.Contains(t, out, "component=service")
}
