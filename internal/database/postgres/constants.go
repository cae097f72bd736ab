package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Ingredient Operations
const (
	ErrMsgFailedToQueryIngredients       = "failed to query ingredients"
	ErrMsgFailedToGetIngredient          = "failed to get ingredient"
	ErrMsgFailedToUpdateExpectedQuantity = "failed to update expected quantity"
	ErrMsgFailedToRecordCount            = "failed to record count"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToQueryRecipes         = "failed to query recipes"
	ErrMsgFailedToQueryIngredientLines = "failed to query ingredient lines"
)

// Error Messages - Sales Operations
const (
	ErrMsgFailedToQuerySaleLines  = "failed to query sale lines"
	ErrMsgFailedToInsertSaleLines = "failed to insert sale lines"
)

// Error Messages - Alert Operations
const (
	ErrMsgFailedToGetAlert     = "failed to get alert"
	ErrMsgFailedToInsertAlert  = "failed to insert alert"
	ErrMsgFailedToResolveAlert = "failed to resolve alert"
	ErrMsgFailedToQueryAlerts  = "failed to query alerts"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)
