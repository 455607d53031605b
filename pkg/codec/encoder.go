package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tagpack/tagpack/pkg/value"
)

// Options configures a single encode call. The zero value is the
// default wire format: 4-byte integers, single-precision floats, no
// depth guard.
type Options struct {
	// WideIntegers emits the 8-byte integer form (0xD3) for values
	// outside the 32-bit signed range instead of truncating them into
	// the 4-byte form. Off by default for wire compatibility.
	WideIntegers bool

	// DoublePrecision emits the 8-byte float form (0xCB) instead of
	// narrowing to single precision. Off by default for wire
	// compatibility.
	DoublePrecision bool

	// MaxDepth fails the encode with ErrUnsupportedValue when value
	// nesting exceeds this depth. Zero disables the guard; the codec
	// does not detect cycles, so callers encoding values of unknown
	// provenance should set a limit.
	MaxDepth int

	// Compression names the transport compression algorithm ("", "none",
	// "s2", "lz4") and Level its strength. Both are carried for the
	// transport layer's benefit; the encoder itself never compresses,
	// so the wire bytes are identical regardless of these fields.
	Compression      string
	CompressionLevel int
}

// Encode serializes a value into the tagpack wire format with default
// options.
func Encode(v value.Value) ([]byte, error) {
	return EncodeOptions(v, Options{})
}

// EncodeOptions serializes a value into the tagpack wire format. The
// walk is depth-first; arbitrarily nested values are bounded only by
// Options.MaxDepth (when set) and the host stack.
func EncodeOptions(v value.Value, opts Options) ([]byte, error) {
	e := encodeState{opts: opts}
	if err := e.value(v, 0); err != nil {
		return nil, err
	}
	return e.buf, nil
}

type encodeState struct {
	buf  []byte
	opts Options
}

func (e *encodeState) value(v value.Value, depth int) error {
	if e.opts.MaxDepth > 0 && depth > e.opts.MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrUnsupportedValue, e.opts.MaxDepth)
	}
	switch v.Kind() {
	case value.KindNil:
		e.buf = append(e.buf, tagNil)
	case value.KindBool:
		if v.Bool() {
			e.buf = append(e.buf, tagTrue)
		} else {
			e.buf = append(e.buf, tagFalse)
		}
	case value.KindInt:
		e.integer(v.Int())
	case value.KindFloat:
		e.float(v.Float())
	case value.KindText:
		return e.text(v.Text())
	case value.KindBytes:
		return e.bytes(v.Bytes())
	case value.KindList:
		return e.list(v.Elems(), depth)
	case value.KindMap:
		return e.pairs(v.Pairs(), depth)
	default:
		return fmt.Errorf("%w: kind %d", ErrUnsupportedValue, v.Kind())
	}
	return nil
}

// integer picks the smallest inline form, falling back to the 4-byte
// signed form. Values beyond 32 bits truncate there unless
// WideIntegers selects the 8-byte form.
func (e *encodeState) integer(n int64) {
	switch {
	case n >= 0 && n <= posFixintMax:
		e.buf = append(e.buf, byte(n))
	case n >= negFixintMin && n < 0:
		e.buf = append(e.buf, negFixBase|byte(n&0x1F))
	case e.opts.WideIntegers && (n > math.MaxInt32 || n < math.MinInt32):
		e.buf = append(e.buf, tagInt64)
		e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(n))
	default:
		e.buf = append(e.buf, tagInt32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(int32(n)))
	}
}

// float dispatches on the numeric value: integral floats take the
// integer path, everything else (including NaN and the infinities)
// encodes as a float. Narrowing to single precision is lossy and is
// the default for wire compatibility.
func (e *encodeState) float(f float64) {
	if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
		e.integer(int64(f))
		return
	}
	if e.opts.DoublePrecision {
		e.buf = append(e.buf, tagFloat64)
		e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(f))
		return
	}
	e.buf = append(e.buf, tagFloat32)
	e.buf = binary.BigEndian.AppendUint32(e.buf, math.Float32bits(float32(f)))
}

func (e *encodeState) text(s string) error {
	n := len(s)
	switch {
	case n <= fixstrMax:
		e.buf = append(e.buf, fixstrBase|byte(n))
	case n <= max8:
		e.buf = append(e.buf, tagStr8, byte(n))
	case n <= max16:
		e.buf = append(e.buf, tagStr16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = append(e.buf, tagStr32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
	e.buf = append(e.buf, s...)
	return nil
}

func (e *encodeState) bytes(b []byte) error {
	n := len(b)
	switch {
	case n <= max8:
		e.buf = append(e.buf, tagBin8, byte(n))
	case n <= max16:
		e.buf = append(e.buf, tagBin16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		// The format has no bytes tag with a 4-byte length, so larger
		// payloads cannot be represented.
		return fmt.Errorf("%w: bytes payload of %d exceeds %d", ErrUnsupportedValue, n, max16)
	}
	e.buf = append(e.buf, b...)
	return nil
}

func (e *encodeState) list(elems []value.Value, depth int) error {
	n := len(elems)
	switch {
	case n <= fixlistMax:
		e.buf = append(e.buf, fixlistBase|byte(n))
	case n <= max16:
		e.buf = append(e.buf, tagList16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = append(e.buf, tagList32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
	for _, el := range elems {
		if err := e.value(el, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (e *encodeState) pairs(pairs []value.Pair, depth int) error {
	n := len(pairs)
	switch {
	case n <= fixmapMax:
		e.buf = append(e.buf, fixmapBase|byte(n))
	case n <= max16:
		e.buf = append(e.buf, tagMap16)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = append(e.buf, tagMap32)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	}
	for _, p := range pairs {
		if err := e.value(p.Key, depth+1); err != nil {
			return err
		}
		if err := e.value(p.Value, depth+1); err != nil {
			return err
		}
	}
	return nil
}
