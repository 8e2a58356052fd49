package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryMetrics_RecordDispatch(t *testing.T) {
	m := NewInMemoryMetrics()

	m.RecordDispatch("toBeFoo", true, time.Millisecond)
	m.RecordDispatch("toBeFoo", true, time.Millisecond)
	m.RecordDispatch("toBeFoo", false, time.Millisecond)

	assert.Equal(t, 2, m.DispatchCount("toBeFoo", "passed"))
	assert.Equal(t, 1, m.DispatchCount("toBeFoo", "failed"))
	assert.Equal(t, 0, m.DispatchCount("other", "passed"))
}

func TestInMemoryMetrics_SoftCollected(t *testing.T) {
	m := NewInMemoryMetrics()

	m.RecordSoftCollected("toBeFoo")
	m.RecordSoftCollected("toBeFoo")

	assert.Equal(t, 2, m.SoftCollectedCount("toBeFoo"))
	assert.Equal(t, 0, m.SoftCollectedCount("other"))
}

func TestInMemoryMetrics_ExtendAndGauge(t *testing.T) {
	m := NewInMemoryMetrics()

	m.IncrementExtendTotal()
	m.IncrementExtendTotal()
	m.SetRegisteredMatchers(4)

	assert.Equal(t, 2, m.ExtendTotal())
	assert.Equal(t, 4, m.RegisteredMatchers())
}

func TestNoopMetrics_DoesNothing(t *testing.T) {
	var m AssertionMetrics = NoopMetrics{}

	m.RecordDispatch("x", true, 0)
	m.RecordSoftCollected("x")
	m.IncrementExtendTotal()
	m.SetRegisteredMatchers(1)
}
