package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidItemID      = "Item id must be an integer"
	ErrMsgMissingQueryParam  = "Missing %s query parameter"
	ErrMsgItemNotFound       = "Item not found"
	ErrMsgReloadFailed       = "Failed to reload item database"
	ErrMsgRegistryEmpty      = "item registry is empty"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReloadRequested = "Reloading item database"
	LogMsgReloadFailed    = "Failed to reload item database"
	LogMsgReloadPartial   = "Item database reloaded with bad lines"
	LogMsgReloadDone      = "Item database reloaded successfully"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgItemNotFound    = "Item not found"
	LogMsgAliasNotFound   = "No item with alias"
)

// Query parameters and route params
const (
	QueryParamAlias = "alias"
	URLParamItemID  = "id"
)
