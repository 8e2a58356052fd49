// Package softassert collects assertion failures instead of
// surfacing them immediately. Soft-mode fluent assertions
// redirect their failures into a Sink; the caller drains the
// sink as a batch report at the end of the test.
package softassert

import (
	"errors"
	"fmt"
	"sync"
)

// Sink accumulates assertion failures. It is safe for
// concurrent use.
type Sink struct {
	mu       sync.Mutex
	failures []error
	limit    int
}

// NewSink creates an unbounded Sink.
func NewSink() *Sink {
	return &Sink{}
}

// NewSinkWithLimit creates a Sink that keeps at most limit
// failures; further failures are counted but dropped. A limit of
// zero or less means unbounded.
func NewSinkWithLimit(limit int) *Sink {
	return &Sink{limit: limit}
}

// Collect records a failure. nil errors are ignored.
func (s *Sink) Collect(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 && len(s.failures) >= s.limit {
		return
	}
	s.failures = append(s.failures, err)
}

// Failures returns a copy of the collected failures in
// collection order.
func (s *Sink) Failures() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]error, len(s.failures))
	copy(out, s.failures)
	return out
}

// Count returns the number of collected failures.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.failures)
}

// Report joins all collected failures into a single error, or
// returns nil when nothing was collected.
func (s *Sink) Report() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.failures) == 0 {
		return nil
	}
	return fmt.Errorf(
		"%d soft assertion(s) failed: %w",
		len(s.failures),
		errors.Join(s.failures...),
	)
}

// Clear removes all collected failures.
func (s *Sink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = nil
}
