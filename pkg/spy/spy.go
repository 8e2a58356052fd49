// Package spy provides a call-recording stub whose invocations
// are stamped with a process-wide monotonic order, so matchers
// can compare call ordering across independent spies.
package spy

import (
	"sync"
	"sync/atomic"
)

// sequence is the process-wide invocation counter shared by all
// spies. Orders are strictly increasing across the process.
var sequence atomic.Int64

// Recorder is the capability exposed by anything whose
// invocation order can be asserted on. The built-in call-order
// matcher accepts any value implementing it.
type Recorder interface {
	// InvocationOrder returns the global order stamps of every
	// recorded call, oldest first.
	InvocationOrder() []int
}

// IsSpy reports whether a value exposes the invocation-order
// capability.
func IsSpy(v any) bool {
	_, ok := v.(Recorder)
	return ok
}

// Spy records calls with their arguments and global order.
// It is safe for concurrent use.
type Spy struct {
	mu     sync.Mutex
	name   string
	orders []int
	calls  [][]any
}

// New creates a named Spy. The name appears in failure messages.
func New(name string) *Spy {
	return &Spy{name: name}
}

// Name returns the spy's name.
func (s *Spy) Name() string {
	return s.name
}

// Call records one invocation with the given arguments and
// returns the global order assigned to it.
func (s *Spy) Call(args ...any) int {
	order := int(sequence.Add(1))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	s.calls = append(s.calls, args)
	return order
}

// InvocationOrder returns a copy of the recorded order stamps.
func (s *Spy) InvocationOrder() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.orders))
	copy(out, s.orders)
	return out
}

// Calls returns a copy of the recorded argument lists.
func (s *Spy) Calls() [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]any, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of recorded invocations.
func (s *Spy) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// Reset discards recorded calls. The global sequence is not
// rewound.
func (s *Spy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.calls = nil
}
