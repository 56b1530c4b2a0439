package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPGuardEvents      = "http_guard_events_total"
)

// Item database metric names
const (
	MetricNameItemDBLines        = "itemdb_lines_total"
	MetricNameItemDBLoadDuration = "itemdb_load_duration_seconds"
	MetricNameItemDBRecords      = "itemdb_records"
	MetricNameItemDBLookups      = "itemdb_lookups_total"
	MetricNameItemDBScripts      = "itemdb_scripts_released_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPGuardEvents      = "Client guard events, by kind"
)

// Item database metric help text
const (
	HelpTextItemDBLines        = "Item database lines processed, by result"
	HelpTextItemDBLoadDuration = "Time spent loading one item database file in seconds"
	HelpTextItemDBRecords      = "Number of item records currently in the registry"
	HelpTextItemDBLookups      = "Item registry lookups, by operation and result"
	HelpTextItemDBScripts      = "Item scripts released on overwrite or teardown"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelOp     = "op"
	LabelEvent  = "event"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LoadDurationBuckets covers item database loads from 1ms to 30s
var LoadDurationBuckets = []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
