package center

import (
	"sync"

	"github.com/cwbudde/algo-sphere/sphere/field"
)

// Synchronized serializes calls to a shared Preprocessor. Calls queue on one
// mutex; for parallel throughput give each goroutine its own Preprocessor.
type Synchronized struct {
	mu sync.Mutex
	p  *Preprocessor
}

// NewSynchronized wraps p. p must not be used directly afterwards.
func NewSynchronized(p *Preprocessor) *Synchronized {
	return &Synchronized{p: p}
}

// CenterAndRotate is [Preprocessor.CenterAndRotate] under the lock.
func (s *Synchronized) CenterAndRotate(f *field.Field, lat, lon, twist float64) (*field.Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.CenterAndRotate(f, lat, lon, twist)
}

// CenterAndRotateInPlace is [Preprocessor.CenterAndRotateInPlace] under the
// lock.
func (s *Synchronized) CenterAndRotateInPlace(f *field.Field, lat, lon, twist float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.CenterAndRotateInPlace(f, lat, lon, twist)
}

// Restore is [Preprocessor.Restore] under the lock.
func (s *Synchronized) Restore(f *field.Field, lat, lon, twist float64) (*field.Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Restore(f, lat, lon, twist)
}

// RestoreInPlace is [Preprocessor.RestoreInPlace] under the lock.
func (s *Synchronized) RestoreInPlace(f *field.Field, lat, lon, twist float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.RestoreInPlace(f, lat, lon, twist)
}
