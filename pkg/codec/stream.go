package codec

import (
	"fmt"
	"io"

	"github.com/tagpack/tagpack/pkg/value"
)

// Encoder writes a stream of encoded values to w. There is no framing
// beyond the values themselves: the output is the concatenation of the
// single-value encodings, which a Decoder consumes back one at a time.
type Encoder struct {
	w    io.Writer
	opts Options
}

// NewEncoder returns an Encoder writing to w with default options.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// NewEncoderOptions returns an Encoder writing to w with the given
// options applied to every value.
func NewEncoderOptions(w io.Writer, opts Options) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode appends one value to the stream.
func (e *Encoder) Encode(v value.Value) error {
	data, err := EncodeOptions(v, e.opts)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}
	return nil
}

// Decoder reads a stream of concatenated encoded values from a buffer,
// advancing a cursor monotonically. The cursor only moves on success;
// a decode error leaves it at the failed value.
type Decoder struct {
	d decodeState
}

// NewDecoder returns a Decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{d: decodeState{data: data}}
}

// More reports whether undecoded bytes remain.
func (d *Decoder) More() bool {
	return d.d.off < len(d.d.data)
}

// Decode reads the next value from the stream. It returns io.EOF once
// the buffer is exhausted.
func (d *Decoder) Decode() (value.Value, error) {
	if !d.More() {
		return value.Value{}, io.EOF
	}
	start := d.d.off
	v, err := d.d.value()
	if err != nil {
		d.d.off = start
		return value.Value{}, err
	}
	return v, nil
}

// Offset returns the cursor position in bytes.
func (d *Decoder) Offset() int {
	return d.d.off
}
