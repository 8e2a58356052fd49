// Package metrics records matcher dispatch outcomes in memory.
// Exposition to a real monitoring system is left to the host
// application; this package only keeps the counters.
package metrics

import "time"

// AssertionMetrics defines the interface for recording matcher
// dispatch metrics.
type AssertionMetrics interface {
	// RecordDispatch records one fluent matcher invocation.
	RecordDispatch(matcher string, passed bool, duration time.Duration)
	// RecordSoftCollected records a failure redirected into a
	// soft-assertion sink.
	RecordSoftCollected(matcher string)
	// IncrementExtendTotal increments the total number of
	// Extend calls.
	IncrementExtendTotal()
	// SetRegisteredMatchers sets the gauge of registered
	// matcher names.
	SetRegisteredMatchers(count int)
}

// NoopMetrics is a no-op implementation of AssertionMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordDispatch(_ string, _ bool, _ time.Duration) {}
func (NoopMetrics) RecordSoftCollected(_ string)                     {}
func (NoopMetrics) IncrementExtendTotal()                            {}
func (NoopMetrics) SetRegisteredMatchers(_ int)                      {}
