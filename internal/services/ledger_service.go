package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budgethub/internal/aggregate"
	"budgethub/internal/core"
	"budgethub/internal/ledger"
	applog "budgethub/internal/log"
)

// Entry is what a user types when recording a contribution or expense.
type Entry struct {
	Person   core.Person
	Amount   float64
	Category string
	Note     string
}

// LedgerService runs every user action as a load, mutate, save cycle
// against the repository.
type LedgerService struct {
	repo   *ledger.Repository
	logger *applog.Logger
	now    func() time.Time
	newID  ledger.IDGenerator
}

type Option func(*LedgerService)

// WithClock overrides the evaluation instant used for new transactions
// and monthly totals.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

func WithIDGenerator(gen ledger.IDGenerator) Option {
	return func(s *LedgerService) { s.newID = gen }
}

func NewLedgerService(repo *ledger.Repository, logger *applog.Logger, opts ...Option) *LedgerService {
	if logger == nil {
		logger = applog.Discard()
	}
	s := &LedgerService{
		repo:   repo,
		logger: logger.WithComponent(applog.ComponentService),
		now:    time.Now,
		newID:  ledger.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddContribution records money put toward the goal.
func (s *LedgerService) AddContribution(ctx context.Context, e Entry) (core.Transaction, error) {
	return s.add(ctx, core.Contribution, e)
}

// AddExpense records money spent.
func (s *LedgerService) AddExpense(ctx context.Context, e Entry) (core.Transaction, error) {
	return s.add(ctx, core.Expense, e)
}

func (s *LedgerService) add(ctx context.Context, typ core.TransactionType, e Entry) (core.Transaction, error) {
	l := s.repo.Load(ctx)

	l, tx, err := ledger.AddTransaction(l, ledger.NewTransaction{
		Type:     typ,
		Person:   e.Person,
		Amount:   e.Amount,
		Category: e.Category,
		Note:     e.Note,
	}, s.now(), s.newID)
	if err != nil {
		s.logValidation(ctx, applog.OpAdd, err)
		return core.Transaction{}, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return core.Transaction{}, fmt.Errorf("add %s: %w", typ, err)
	}

	fields := applog.NewFields().WithOperation(applog.OpAdd).WithTransaction(tx)
	s.log(ctx).InfoContext(ctx, "Transaction added", fields.ToSlice()...)

	return tx, nil
}

// DeleteTransaction removes the transaction with the given id. It reports
// false, with no error, when no such transaction exists.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	l, removed := ledger.DeleteTransaction(s.repo.Load(ctx), id)
	if !removed {
		s.log(ctx).DebugContext(ctx, "Nothing to delete",
			applog.FieldOperation, applog.OpDelete,
			applog.FieldTxID, id)
		return false, nil
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return false, fmt.Errorf("delete transaction %s: %w", id, err)
	}

	s.log(ctx).InfoContext(ctx, "Transaction deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldTxID, id)

	return true, nil
}

// SetGoal replaces the shared goal.
func (s *LedgerService) SetGoal(ctx context.Context, name string, amount float64) (core.Goal, error) {
	l, err := ledger.SetGoal(s.repo.Load(ctx), name, amount)
	if err != nil {
		s.logValidation(ctx, applog.OpSetGoal, err)
		return core.Goal{}, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return core.Goal{}, fmt.Errorf("set goal: %w", err)
	}

	fields := applog.NewFields().WithOperation(applog.OpSetGoal).WithGoal(l.Goal)
	s.log(ctx).InfoContext(ctx, "Goal updated", fields.ToSlice()...)

	return l.Goal, nil
}

// Ledger returns the current snapshot without modifying it.
func (s *LedgerService) Ledger(ctx context.Context) core.Ledger {
	return s.repo.Load(ctx)
}

// Dashboard computes the dashboard for the current snapshot at the
// service's current time.
func (s *LedgerService) Dashboard(ctx context.Context) aggregate.Dashboard {
	return aggregate.Build(s.repo.Load(ctx), s.now())
}

// Transactions returns the filtered transaction table, newest first.
func (s *LedgerService) Transactions(ctx context.Context, f aggregate.Filter) []core.Transaction {
	return f.Apply(s.repo.Load(ctx).Transactions)
}

func (s *LedgerService) logValidation(ctx context.Context, op string, err error) {
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	s.log(ctx).WarnContext(ctx, "Rejected invalid input",
		applog.FieldOperation, op,
		applog.FieldErrorType, applog.ErrorTypeValidation,
		applog.FieldError, err)
}

// log prefers the command-scoped logger carried by ctx.
func (s *LedgerService) log(ctx context.Context) *applog.Logger {
	return applog.ForContext(ctx, applog.ComponentService, s.logger)
}
