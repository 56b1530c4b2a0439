package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
	SecurityAlertItemScan   = "SECURITY ALERT: Client is scanning unknown item ids"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "No API key configured, admin routes are open"
	LogMsgBadTrustedProxy  = "Ignoring invalid trusted proxy"
)

// HTTP header names
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderAuthorization      = "Authorization"
	HeaderForwardedFor       = "X-Forwarded-For"
	HeaderRetryAfter         = "Retry-After"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
	HeaderCacheControl       = "Cache-Control"
)

// Response header values
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

// Route prefixes
const (
	ItemRoutePrefix  = "/api/v1/items/"
	AdminRoutePrefix = "/api/v1/admin/"
)

// Paths that are never request-logged
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Limits
const (
	MaxRequestBodyBytes  = 1 << 16
	FailedAuthAlertCount = 5
	NotFoundAlertCount   = 50
	RateLimitPerWindow   = 1000
	RateLimitWindow      = 5 * time.Minute
	ReadHeaderTimeout    = 5 * time.Second
)

// Client guard event labels
const (
	guardEventRateLimited = "rate_limited"
	guardEventAuthFailed  = "auth_failed"
	guardEventNotFound    = "item_not_found"
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
