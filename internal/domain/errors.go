package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item database errors
	ErrMsgOpenDatabase    = "cannot read item database"
	ErrMsgMalformedLine   = "bad item line"
	ErrMsgScriptCompile   = "script compile failed"
	ErrMsgLoadIncomplete  = "item database loaded with errors"
	ErrMsgInvalidItemName = "invalid item name"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrOpenDatabase    = errors.New(ErrMsgOpenDatabase)
	ErrMalformedLine   = errors.New(ErrMsgMalformedLine)
	ErrScriptCompile   = errors.New(ErrMsgScriptCompile)
	ErrLoadIncomplete  = errors.New(ErrMsgLoadIncomplete)
	ErrInvalidItemName = errors.New(ErrMsgInvalidItemName)
)
