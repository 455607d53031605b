// Package backend chooses which codec implementation serves encode and
// decode calls: the in-process reference codec, which is always
// available, or an externally supplied accelerated service reached
// through a narrow handle-based memory ABI.
//
// Every backend speaks the same wire format. For any value v, a
// conforming accelerated backend produces bytes identical to the
// reference backend, and either side can decode the other's output.
// The interchange with the accelerated service is the tagged binary
// format itself; bridging through a textual format is non-conformant
// because it destroys binary payloads, collapses the integer/float
// distinction, and cannot carry non-text map keys.
//
// Selection happens once per process. If the accelerated service
// cannot be acquired, the process falls back permanently to the
// reference backend; the fallback is an observability event (log line
// and counter), never an error surfaced to callers.
package backend

import (
	"github.com/tagpack/tagpack/pkg/codec"
	"github.com/tagpack/tagpack/pkg/value"
)

// Backend is one implementation of the codec.
type Backend interface {
	// Encode serializes v into the wire format.
	Encode(v value.Value) ([]byte, error)

	// Decode deserializes the first value in data.
	Decode(data []byte) (value.Value, error)

	// Name identifies the backend in logs and metrics.
	Name() string
}

// Reference is the in-process codec backend. The zero value is ready
// to use with default options.
type Reference struct {
	Options codec.Options
}

func (r *Reference) Encode(v value.Value) ([]byte, error) {
	return codec.EncodeOptions(v, r.Options)
}

func (r *Reference) Decode(data []byte) (value.Value, error) {
	return codec.Decode(data)
}

func (r *Reference) Name() string {
	return "reference"
}
