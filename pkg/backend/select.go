package backend

import (
	"log"
	"sync"
)

// Locator acquires the accelerated service. It is attempted at most
// once per process; a nil locator or a failed acquisition selects the
// reference backend for the process lifetime.
type Locator func() (Service, error)

var (
	locatorMu sync.Mutex
	locator   Locator

	selectOnce sync.Once
	selected   Backend
)

// Register installs the accelerated service locator. It must be called
// before the first Default call; registrations after selection has
// resolved are ignored.
func Register(l Locator) {
	locatorMu.Lock()
	defer locatorMu.Unlock()
	locator = l
}

// Default returns the process-wide backend. The first call resolves
// the selection; afterwards the decision is immutable and safe to read
// concurrently without synchronization.
func Default() Backend {
	selectOnce.Do(func() {
		locatorMu.Lock()
		l := locator
		locatorMu.Unlock()
		selected = Select(l)
	})
	return selected
}

// Select resolves a backend from a locator without touching the
// process-wide state. A nil locator or an acquisition failure yields
// the reference backend; the failure is logged and counted, not
// returned.
func Select(l Locator) Backend {
	if l == nil {
		return &Reference{}
	}
	svc, err := l()
	if err != nil {
		log.Printf("backend: falling back to reference codec: %v", err)
		fallbacksTotal.Inc()
		return &Reference{}
	}
	return NewAccelerated(svc)
}
