package jsonbuf

const (
	// Depth and Formatting Limits
	MaxDepth              = 8 // maximum container nesting depth
	DefaultFloatPrecision = 3 // decimal digits for float values after Reset

	// Scratch capacity for integer rendering; wide enough for
	// the longest int64/uint64 decimal form including sign.
	intScratchSize = 24
)

// Literal tokens emitted without escaping.
const (
	tokenTrue  = "true"
	tokenFalse = "false"
	tokenNull  = "null"
)
