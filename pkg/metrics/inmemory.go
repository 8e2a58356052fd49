package metrics

import (
	"sync"
	"time"
)

// InMemoryMetrics implements AssertionMetrics using counters and
// duration samples held in process memory. It is safe for
// concurrent use.
type InMemoryMetrics struct {
	mu          sync.Mutex
	dispatches  map[string]int
	durations   map[string][]time.Duration
	softs       map[string]int
	extendTotal int
	registered  int
}

// NewInMemoryMetrics creates a new InMemoryMetrics instance.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		dispatches: make(map[string]int),
		durations:  make(map[string][]time.Duration),
		softs:      make(map[string]int),
	}
}

// RecordDispatch records one fluent matcher invocation.
func (m *InMemoryMetrics) RecordDispatch(
	matcher string, passed bool, duration time.Duration,
) {
	status := "failed"
	if passed {
		status = "passed"
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatches[matcher+":"+status]++
	m.durations[matcher] = append(m.durations[matcher], duration)
}

// RecordSoftCollected records a soft-collected failure.
func (m *InMemoryMetrics) RecordSoftCollected(matcher string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.softs[matcher]++
}

// IncrementExtendTotal increments the Extend call counter.
func (m *InMemoryMetrics) IncrementExtendTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extendTotal++
}

// SetRegisteredMatchers sets the registered matcher gauge.
func (m *InMemoryMetrics) SetRegisteredMatchers(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registered = count
}

// DispatchCount returns the count for a matcher+status
// combination, where status is "passed" or "failed".
func (m *InMemoryMetrics) DispatchCount(
	matcher, status string,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatches[matcher+":"+status]
}

// SoftCollectedCount returns the soft-collected counter for a
// matcher.
func (m *InMemoryMetrics) SoftCollectedCount(matcher string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.softs[matcher]
}

// ExtendTotal returns the total number of Extend calls.
func (m *InMemoryMetrics) ExtendTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.extendTotal
}

// RegisteredMatchers returns the registered matcher gauge.
func (m *InMemoryMetrics) RegisteredMatchers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registered
}
