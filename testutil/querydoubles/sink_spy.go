package querydoubles

import (
	"sync"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// SinkSpy is a debug-probe sink that captures every observation for testing.
type SinkSpy[E, A any] struct {
	mu      sync.Mutex
	records []SinkRecord[E, A]
}

// SinkRecord represents one captured probe observation.
type SinkRecord[E, A any] struct {
	Tag    string
	Result querydb.Result[E, A]
}

// NewSinkSpy creates a new SinkSpy instance.
func NewSinkSpy[E, A any]() *SinkSpy[E, A] {
	return &SinkSpy[E, A]{}
}

// Sink returns the spy as a querydb.Sink to thread through Debug.
func (s *SinkSpy[E, A]) Sink() querydb.Sink[E, A] {
	return func(tag string, result querydb.Result[E, A]) {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.records = append(s.records, SinkRecord[E, A]{Tag: tag, Result: result})
	}
}

// Records returns a copy of all captured observations in order.
func (s *SinkSpy[E, A]) Records() []SinkRecord[E, A] {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]SinkRecord[E, A], len(s.records))
	copy(copied, s.records)

	return copied
}

// CallCount returns the number of captured observations.
func (s *SinkSpy[E, A]) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}
