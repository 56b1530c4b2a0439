package item

// ==================== Database File Format ====================

// Item line layout
const (
	// FieldCount is the number of comma-separated fields before the script tail
	FieldCount = 17

	// FieldSeparator separates the fixed fields of an item line
	FieldSeparator = ","

	// ScriptOpen starts a script block in the tail of an item line
	ScriptOpen = '{'

	// CommentPrefix marks a line the loader skips
	CommentPrefix = "//"

	// MaxLineLength bounds a single database line
	MaxLineLength = 1 << 20

	readBufferSize   = 64 << 10
	lineErrorTextLen = 80
)

// Defaults applied to items created on first reference
const (
	DefaultBuyPrice   = 10
	DefaultSellPrice  = DefaultBuyPrice / 2
	DefaultWeight     = 10
	DefaultEquipLevel = 0
)

// ==================== Error Messages ====================

// Field extraction error messages
const (
	ErrMsgFieldCount    = "expected %d fields, got %d"
	ErrMsgEmptyName     = "is empty"
	ErrMsgNameTooLong   = "is longer than %d bytes"
	ErrMsgNegativePrice = "is negative"
	ErrMsgUnknownClass  = "unknown item class %d"
	ErrMsgUnknownSex    = "unknown sex %d"
	ErrMsgLineTooLong   = "line is longer than %d bytes"
)

// Loader error messages
const (
	ErrFmtBadItemLine = "%s:%d: bad item line: %s"
	ErrFmtScriptLine  = "%s:%d: %v"
	ErrFmtReadFailed  = "failed to read %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgOpenFailed     = "Can't read item database"
	LogMsgReadFailed     = "Item database read failed"
	LogMsgScriptFailed   = "Item script failed to compile"
	LogMsgLoadCompleted  = "Item database loaded"
	LogMsgReloadStarted  = "Reloading item database"
	LogMsgReloadFinished = "Item database reloaded"
	LogMsgRegistryClear  = "Item registry cleared"
)

// ==================== Metric Label Values ====================

const (
	lineResultLoaded      = "loaded"
	lineResultMalformed   = "malformed"
	lineResultScriptError = "script_error"

	lookupOpID          = "lookup"
	lookupOpAlias       = "alias"
	lookupOpGetOrCreate = "get_or_create"

	lookupHit     = "hit"
	lookupMiss    = "miss"
	lookupCreated = "created"
)
