// Package compress provides the transport compression collaborators
// for tagpack payloads. Compression sits outside the codec: the wire
// bytes of an encoded value are never compressed by the encoder
// itself, and the codec options only carry the algorithm name for
// surfaces like the CLI and the HTTP API, which wrap payloads through
// this package.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// Compressor wraps and unwraps a payload with one algorithm.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// ForAlgorithm returns the compressor for an algorithm name. The empty
// name and "none" return the passthrough compressor.
func ForAlgorithm(name string) (Compressor, error) {
	switch name {
	case "", "none":
		return None{}, nil
	case "s2":
		return S2{}, nil
	case "lz4":
		return LZ4{}, nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %q", name)
	}
}

// None is the passthrough compressor.
type None struct{}

func (None) Compress(data []byte) ([]byte, error)   { return data, nil }
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }
func (None) Name() string                           { return "none" }

// S2 compresses with the s2 block format.
type S2 struct{}

func (S2) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (S2) Decompress(data []byte) ([]byte, error) {
	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("compress: s2 decode: %w", err)
	}
	return out, nil
}

func (S2) Name() string { return "s2" }

// LZ4 compresses with the lz4 frame format.
type LZ4 struct{}

func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: lz4 write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: lz4 close: %w", err)
	}
	return buf.Bytes(), nil
}

func (LZ4) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("compress: lz4 read: %w", err)
	}
	return out, nil
}

func (LZ4) Name() string { return "lz4" }
