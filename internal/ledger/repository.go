package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"budgethub/internal/core"
	applog "budgethub/internal/log"
	"budgethub/internal/storage"
)

// DefaultKey is the storage key the ledger snapshot lives under.
const DefaultKey = "ourBudgetHub_data_v2"

// Repository loads and saves the whole ledger under a single key.
type Repository struct {
	kv     storage.KV
	key    string
	logger *applog.Logger
}

func NewRepository(kv storage.KV, key string, logger *applog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &Repository{
		kv:     kv,
		key:    key,
		logger: logger.WithComponent(applog.ComponentLedger),
	}
}

// Key returns the storage key in use.
func (r *Repository) Key() string {
	return r.key
}

// Load returns the stored ledger. It never fails: missing, unreadable or
// corrupt snapshots are replaced by repaired defaults and only logged.
func (r *Repository) Load(ctx context.Context) core.Ledger {
	raw, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, storage.ErrNotFound) {
		return core.NewLedger()
	}
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to read ledger snapshot, using defaults",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldKey, r.key,
			applog.FieldErrorType, applog.ErrorTypeStorage,
			applog.FieldError, err)
		return core.NewLedger()
	}

	l, rep := ParseLedger(raw)
	if rep.Any() {
		r.logger.WarnContext(ctx, "Repaired corrupt ledger snapshot",
			applog.FieldOperation, applog.OpRepair,
			applog.FieldKey, r.key,
			applog.FieldErrorType, applog.ErrorTypeCorruption,
			applog.FieldRepairs, fmt.Sprintf("%+v", rep),
			applog.FieldDroppedTxns, rep.DroppedTransactions)
	}
	return l
}

// Save overwrites the stored snapshot with l.
func (r *Repository) Save(ctx context.Context, l core.Ledger) error {
	if l.Transactions == nil {
		l.Transactions = []core.Transaction{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := r.kv.Put(ctx, r.key, data); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	r.logger.DebugContext(ctx, "Ledger saved",
		applog.FieldOperation, applog.OpSave,
		applog.FieldKey, r.key,
		applog.FieldTxCount, len(l.Transactions))

	return nil
}
