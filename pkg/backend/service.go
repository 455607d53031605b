package backend

import "errors"

// ErrUnavailable reports that the accelerated service could not be
// acquired. It is absorbed by backend selection, which falls back to
// the reference backend; callers of the codec never see it.
var ErrUnavailable = errors.New("backend: accelerated service unavailable")

// Handle identifies a buffer owned by the accelerated service.
type Handle uint32

// Service is the memory ABI of an accelerated codec service. The
// service owns every buffer it allocates and cannot reclaim them on
// the caller's behalf: for each call the caller allocates input space,
// copies the input verbatim, invokes the operation, copies out exactly
// Length bytes of result, and releases both handles on every exit
// path.
type Service interface {
	// Allocate reserves size bytes of service-owned memory.
	Allocate(size int) (Handle, error)

	// Release frees a handle. Releasing an unknown handle is a no-op.
	Release(h Handle)

	// Buffer exposes the memory behind a handle for copying in and out.
	Buffer(h Handle) ([]byte, error)

	// Encode runs the encode operation over size bytes of h, returning
	// a handle to the result.
	Encode(h Handle, size int) (Handle, error)

	// Decode runs the decode operation over size bytes of h, returning
	// a handle to the result.
	Decode(h Handle, size int) (Handle, error)

	// Length reports the byte length of a result handle.
	Length(h Handle) (int, error)
}
