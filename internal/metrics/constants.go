package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRecalcPasses       = "inventory_recalc_passes_total"
	MetricNameRecalcPassDuration = "inventory_recalc_pass_duration_seconds"
	MetricNameIngredientsUpdated = "inventory_ingredients_updated_total"
	MetricNameIngredientsFailed  = "inventory_ingredients_failed_total"
	MetricNameAlertsRaised       = "inventory_alerts_raised_total"
	MetricNameSaleLinesIngested  = "sale_lines_ingested_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextRecalcPasses       = "Total number of expected-inventory recalculation passes"
	HelpTextRecalcPassDuration = "Duration of expected-inventory recalculation passes in seconds"
	HelpTextIngredientsUpdated = "Total number of ingredient expected quantities persisted"
	HelpTextIngredientsFailed  = "Total number of ingredients skipped due to errors during a pass"
	HelpTextAlertsRaised       = "Total number of restock alerts raised"
	HelpTextSaleLinesIngested  = "Total number of POS sale lines ingested"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
)
