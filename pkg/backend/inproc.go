package backend

import (
	"fmt"
	"sync"

	"github.com/tagpack/tagpack/pkg/codec"
)

// InProcService is an in-process implementation of the accelerated
// Service ABI, backed by the reference codec. It exists as the
// conformance harness for the ABI: equivalence tests drive values
// through it and compare the bytes against the reference backend, and
// it doubles as a stand-in service in examples. Both operations
// decode the incoming tagged bytes and re-encode them canonically.
type InProcService struct {
	mu   sync.Mutex
	opts codec.Options
	next Handle
	bufs map[Handle][]byte
}

// NewInProcService returns a service whose canonical encoding uses
// opts.
func NewInProcService(opts codec.Options) *InProcService {
	return &InProcService{opts: opts, bufs: make(map[Handle][]byte)}
}

func (s *InProcService) Allocate(size int) (Handle, error) {
	if size < 0 {
		return 0, fmt.Errorf("backend: negative allocation %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := s.next
	s.bufs[h] = make([]byte, size)
	return h, nil
}

func (s *InProcService) Release(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bufs, h)
}

func (s *InProcService) Buffer(h Handle) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok := s.bufs[h]
	if !ok {
		return nil, fmt.Errorf("backend: unknown handle %d", h)
	}
	return buf, nil
}

func (s *InProcService) Encode(h Handle, size int) (Handle, error) {
	return s.transform(h, size)
}

func (s *InProcService) Decode(h Handle, size int) (Handle, error) {
	return s.transform(h, size)
}

func (s *InProcService) Length(h Handle) (int, error) {
	buf, err := s.Buffer(h)
	if err != nil {
		return 0, err
	}
	return len(buf), nil
}

// Live reports the number of outstanding handles. A caller honoring
// the ownership contract leaves this at zero between calls.
func (s *InProcService) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bufs)
}

func (s *InProcService) transform(h Handle, size int) (Handle, error) {
	in, err := s.Buffer(h)
	if err != nil {
		return 0, err
	}
	if size > len(in) {
		return 0, fmt.Errorf("backend: size %d exceeds buffer %d", size, len(in))
	}
	v, err := codec.Decode(in[:size])
	if err != nil {
		return 0, err
	}
	out, err := codec.EncodeOptions(v, s.opts)
	if err != nil {
		return 0, err
	}
	rh, err := s.Allocate(len(out))
	if err != nil {
		return 0, err
	}
	rbuf, _ := s.Buffer(rh)
	copy(rbuf, out)
	return rh, nil
}
