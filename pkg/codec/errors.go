package codec

import "errors"

// Codec errors. Failures wrap one of these sentinels with positional
// context; match with errors.Is. A failed decode never returns a
// partial value, and codec errors are not retryable.
var (
	// ErrUnknownTag reports a tag byte outside the wire format table.
	ErrUnknownTag = errors.New("codec: unknown tag")

	// ErrTruncatedInput reports a read past the end of the input buffer.
	ErrTruncatedInput = errors.New("codec: truncated input")

	// ErrUnsupportedValue reports a value the wire format cannot carry.
	ErrUnsupportedValue = errors.New("codec: unsupported value")
)
