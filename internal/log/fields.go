package log

import "budgethub/internal/core"

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldBackend     = "backend"
	FieldKey         = "key"
	FieldTxID        = "tx_id"
	FieldTxType      = "tx_type"
	FieldPerson      = "person"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldGoalName    = "goal_name"
	FieldGoalAmount  = "goal_amount"
	FieldTxCount     = "tx_count"
	FieldErrorType   = "error_type"
	FieldRepairs     = "repairs"
	FieldDroppedTxns = "dropped_transactions"
	FieldCommand     = "command"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentService = "service"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpAdd      = "add"
	OpDelete   = "delete"
	OpSetGoal  = "set_goal"
	OpRepair   = "repair"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeCorruption    = "corruption"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithTransaction adds transaction-related fields
func (f LogFields) WithTransaction(tx core.Transaction) LogFields {
	f[FieldTxID] = tx.ID
	f[FieldTxType] = string(tx.Type)
	f[FieldPerson] = string(tx.Person)
	f[FieldAmount] = tx.Amount
	f[FieldCategory] = tx.Category
	return f
}

func (f LogFields) WithGoal(g core.Goal) LogFields {
	f[FieldGoalName] = g.Name
	f[FieldGoalAmount] = g.Amount
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
