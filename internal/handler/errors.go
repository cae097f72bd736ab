package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query/path parameter error messages
	ErrMsgMissingQueryParam  = "Missing %s query parameter"
	ErrMsgMissingIngredient  = "Missing ingredient ID"
	ErrMsgInvalidResolvedArg = "Invalid resolved parameter, expected true or false"

	// Inventory operation error messages
	ErrMsgRecalculateFailed     = "Failed to recalculate inventory"
	ErrMsgListIngredientsFailed = "Failed to list ingredients"
	ErrMsgRecordCountFailed     = "Failed to record count"

	// Alert operation error messages
	ErrMsgListAlertsFailed = "Failed to list alerts"

	// Sales operation error messages
	ErrMsgImportSalesFailed = "Failed to import sale lines"
	ErrMsgEmptySalesImport  = "At least one sale line is required"
)

// Success messages for API responses
const (
	MsgCountRecordedSuccess = "Count recorded successfully"
)
