package backend

import (
	"fmt"

	"github.com/tagpack/tagpack/pkg/codec"
	"github.com/tagpack/tagpack/pkg/value"
)

// Accelerated is a backend that delegates both operations to an
// external Service. Values cross the service boundary in the tagged
// binary format: Encode flattens the value with the in-process codec
// and hands the bytes to the service for canonical encoding, Decode
// hands the wire bytes over and parses the returned canonical bytes.
type Accelerated struct {
	svc  Service
	opts codec.Options
}

// NewAccelerated returns a backend over svc with default options.
func NewAccelerated(svc Service) *Accelerated {
	return &Accelerated{svc: svc}
}

// NewAcceleratedOptions returns a backend over svc applying opts to
// the host-side flattening of values.
func NewAcceleratedOptions(svc Service, opts codec.Options) *Accelerated {
	return &Accelerated{svc: svc, opts: opts}
}

func (a *Accelerated) Encode(v value.Value) ([]byte, error) {
	in, err := codec.EncodeOptions(v, a.opts)
	if err != nil {
		return nil, err
	}
	out, err := a.invoke(a.svc.Encode, in)
	if err != nil {
		return nil, fmt.Errorf("backend: accelerated encode: %w", err)
	}
	return out, nil
}

func (a *Accelerated) Decode(data []byte) (value.Value, error) {
	out, err := a.invoke(a.svc.Decode, data)
	if err != nil {
		return value.Value{}, fmt.Errorf("backend: accelerated decode: %w", err)
	}
	return codec.Decode(out)
}

func (a *Accelerated) Name() string {
	return "accelerated"
}

// invoke runs one service operation. Both the input handle and the
// result handle are released on every exit path; the service cannot
// garbage-collect on our behalf.
func (a *Accelerated) invoke(op func(Handle, int) (Handle, error), in []byte) ([]byte, error) {
	h, err := a.svc.Allocate(len(in))
	if err != nil {
		return nil, fmt.Errorf("allocate %d bytes: %w", len(in), err)
	}
	defer a.svc.Release(h)

	buf, err := a.svc.Buffer(h)
	if err != nil {
		return nil, fmt.Errorf("input buffer: %w", err)
	}
	copy(buf, in)

	rh, err := op(h, len(in))
	if err != nil {
		return nil, err
	}
	defer a.svc.Release(rh)

	n, err := a.svc.Length(rh)
	if err != nil {
		return nil, fmt.Errorf("result length: %w", err)
	}
	rbuf, err := a.svc.Buffer(rh)
	if err != nil {
		return nil, fmt.Errorf("result buffer: %w", err)
	}
	out := make([]byte, n)
	copy(out, rbuf[:n])
	return out, nil
}
