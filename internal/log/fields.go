package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldTxnID     = "txn_id"
	FieldKind      = "kind"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldIndex     = "index"
	FieldGoal      = "goal"
	FieldOwner     = "owner"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldCommand   = "command"
)

// Components
const (
	ComponentApp     = "app"
	ComponentBook    = "book"
	ComponentSession = "session"
	ComponentExport  = "export"
)

// Operations
const (
	OpAdd    = "add"
	OpDelete = "delete"
	OpReset  = "reset"
	OpGoal   = "set_goal"
	OpOwner  = "set_owner"
	OpExport = "export"
)
