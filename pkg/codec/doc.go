// Package codec implements the tagpack binary wire format: a compact,
// schema-free encoding of dynamic values where every value starts with
// a single tag byte selecting its kind and, for variable-length kinds,
// its size class.
//
// # Wire Format
//
// Fixed one-byte forms:
//
//	0x00-0x7F  positive integer, the byte itself
//	0xE0-0xFF  negative integer, byte - 256 (range -32..-1)
//	0xC0       nil
//	0xC2/0xC3  false / true
//
// Tagged forms (multi-byte fields are big-endian):
//
//	0xA0|len   text, len <= 31, UTF-8 payload follows
//	0xD9       text, 1-byte length, payload follows
//	0xDA       text, 2-byte length, payload follows
//	0xDB       text, 4-byte length, payload follows (decode + long-text encode)
//	0xC4       bytes, 1-byte length, payload follows
//	0xC5       bytes, 2-byte length, payload follows
//	0xD2       integer, 4-byte signed two's complement
//	0xD3       integer, 8-byte signed two's complement (opt-in encode)
//	0xCA       float, 4-byte IEEE-754 single precision
//	0xCB       float, 8-byte IEEE-754 double precision (opt-in encode)
//	0x90|n     list of n elements, n <= 15, elements follow
//	0xDC       list, 2-byte element count
//	0xDD       list, 4-byte element count
//	0x80|n     map of n pairs, n <= 15, key/value pairs follow
//	0xDE       map, 2-byte pair count
//	0xDF       map, 4-byte pair count
//
// The encoding is self-describing: the length of any value can be
// determined from its tag and size field alone, with no external
// framing. Concatenating encoded values is the only batching mechanism;
// Decoder consumes such streams one value at a time.
//
// # Numeric Policy
//
// Dispatch is on the numeric value, not the Go kind: a Float holding an
// integral value takes the integer path. Integers outside the inline
// ranges encode as 4-byte signed (truncating beyond 32 bits) and
// non-integral floats as single precision (narrowing doubles). Both are
// deliberate wire-compatibility behaviors; Options.WideIntegers and
// Options.DoublePrecision opt into the 8-byte forms as a documented
// format revision.
//
// # Error Handling
//
// Decoding checks bounds before every read and fails with
// ErrTruncatedInput rather than returning a partial value. A tag byte
// outside the table above fails with ErrUnknownTag. Encoding fails only
// with ErrUnsupportedValue (bytes too large for any tag, or a depth
// guard trip). Errors are typed sentinels, matchable with errors.Is.
//
// # Thread Safety
//
// Encode and Decode are stateless and reentrant. Encoder and Decoder
// instances each own their buffer and cursor and must not be shared
// without external synchronization.
package codec
