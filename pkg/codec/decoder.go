package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tagpack/tagpack/pkg/value"
)

// Decode deserializes the first value in data. Trailing bytes are not
// an error; use a Decoder to consume a stream of concatenated values.
func Decode(data []byte) (value.Value, error) {
	d := decodeState{data: data}
	return d.value()
}

type decodeState struct {
	data []byte
	off  int
}

// need fails with ErrTruncatedInput unless n more bytes are available.
// Every read goes through need first; the decoder never returns a
// partial value from a short buffer.
func (d *decodeState) need(n int) error {
	if n > len(d.data)-d.off {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncatedInput, n, d.off, len(d.data)-d.off)
	}
	return nil
}

func (d *decodeState) value() (value.Value, error) {
	if err := d.need(1); err != nil {
		return value.Value{}, err
	}
	b := d.data[d.off]
	d.off++

	// Packed one-byte forms, checked in dispatch order: inline
	// positive, inline negative, fixstr, fixlist, fixmap.
	switch {
	case b&0x80 == 0:
		return value.Int(int64(b)), nil
	case b&0xE0 == negFixBase:
		return value.Int(int64(b) - 256), nil
	case b&0xE0 == fixstrBase:
		return d.text(int(b & 0x1F))
	case b&0xF0 == fixlistBase:
		return d.list(int(b & 0x0F))
	case b&0xF0 == fixmapBase:
		return d.pairs(int(b & 0x0F))
	}

	switch b {
	case tagNil:
		return value.Nil(), nil
	case tagFalse:
		return value.Bool(false), nil
	case tagTrue:
		return value.Bool(true), nil
	case tagInt32:
		if err := d.need(4); err != nil {
			return value.Value{}, err
		}
		n := int32(binary.BigEndian.Uint32(d.data[d.off:]))
		d.off += 4
		return value.Int(int64(n)), nil
	case tagInt64:
		if err := d.need(8); err != nil {
			return value.Value{}, err
		}
		n := int64(binary.BigEndian.Uint64(d.data[d.off:]))
		d.off += 8
		return value.Int(n), nil
	case tagFloat32:
		if err := d.need(4); err != nil {
			return value.Value{}, err
		}
		f := math.Float32frombits(binary.BigEndian.Uint32(d.data[d.off:]))
		d.off += 4
		return value.Float(float64(f)), nil
	case tagFloat64:
		if err := d.need(8); err != nil {
			return value.Value{}, err
		}
		f := math.Float64frombits(binary.BigEndian.Uint64(d.data[d.off:]))
		d.off += 8
		return value.Float(f), nil
	case tagStr8:
		n, err := d.length(1)
		if err != nil {
			return value.Value{}, err
		}
		return d.text(n)
	case tagStr16:
		n, err := d.length(2)
		if err != nil {
			return value.Value{}, err
		}
		return d.text(n)
	case tagStr32:
		n, err := d.length(4)
		if err != nil {
			return value.Value{}, err
		}
		return d.text(n)
	case tagBin8:
		n, err := d.length(1)
		if err != nil {
			return value.Value{}, err
		}
		return d.bytes(n)
	case tagBin16:
		n, err := d.length(2)
		if err != nil {
			return value.Value{}, err
		}
		return d.bytes(n)
	case tagList16:
		n, err := d.length(2)
		if err != nil {
			return value.Value{}, err
		}
		return d.list(n)
	case tagList32:
		n, err := d.length(4)
		if err != nil {
			return value.Value{}, err
		}
		return d.list(n)
	case tagMap16:
		n, err := d.length(2)
		if err != nil {
			return value.Value{}, err
		}
		return d.pairs(n)
	case tagMap32:
		n, err := d.length(4)
		if err != nil {
			return value.Value{}, err
		}
		return d.pairs(n)
	default:
		return value.Value{}, fmt.Errorf("%w: 0x%02X at offset %d", ErrUnknownTag, b, d.off-1)
	}
}

// length reads an unsigned big-endian size field of 1, 2 or 4 bytes.
func (d *decodeState) length(width int) (int, error) {
	if err := d.need(width); err != nil {
		return 0, err
	}
	var n int
	switch width {
	case 1:
		n = int(d.data[d.off])
	case 2:
		n = int(binary.BigEndian.Uint16(d.data[d.off:]))
	case 4:
		n = int(binary.BigEndian.Uint32(d.data[d.off:]))
	}
	d.off += width
	return n, nil
}

func (d *decodeState) text(n int) (value.Value, error) {
	if err := d.need(n); err != nil {
		return value.Value{}, err
	}
	s := string(d.data[d.off : d.off+n])
	d.off += n
	return value.Text(s), nil
}

func (d *decodeState) bytes(n int) (value.Value, error) {
	if err := d.need(n); err != nil {
		return value.Value{}, err
	}
	b := make([]byte, n)
	copy(b, d.data[d.off:])
	d.off += n
	return value.Bytes(b), nil
}

func (d *decodeState) list(count int) (value.Value, error) {
	// count comes from the wire; cap the pre-allocation so a hostile
	// header cannot force a huge up-front allocation.
	elems := make([]value.Value, 0, min(count, 1024))
	for i := 0; i < count; i++ {
		el, err := d.value()
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, el)
	}
	return value.List(elems...), nil
}

func (d *decodeState) pairs(count int) (value.Value, error) {
	pairs := make([]value.Pair, 0, min(count, 1024))
	for i := 0; i < count; i++ {
		k, err := d.value()
		if err != nil {
			return value.Value{}, err
		}
		v, err := d.value()
		if err != nil {
			return value.Value{}, err
		}
		pairs = append(pairs, value.Pair{Key: k, Value: v})
	}
	return value.Map(pairs...), nil
}
