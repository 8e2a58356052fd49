package expect

import (
	"context"
	"sync"
)

// Outcome is the result of a matcher invocation: either an
// immediate Verdict or a *Pending that settles later. The
// interface is sealed; no other implementations exist.
type Outcome interface {
	settle(ctx context.Context) (Verdict, error)
}

// Verdict is the pass/fail result of a matcher. Message is
// evaluated lazily, only when a failure must be reported,
// because rendering may involve deep stringification. Actual
// and Expected are optional and feed diff reporting.
type Verdict struct {
	Pass     bool
	Message  func() string
	Actual   any
	Expected any
}

func (v Verdict) settle(_ context.Context) (Verdict, error) {
	return v, nil
}

// Pending is a deferred Verdict. A matcher returns one when its
// verdict resolves asynchronously; the producer calls Resolve
// exactly once, and consumers suspend on settle until then.
type Pending struct {
	once    sync.Once
	done    chan struct{}
	verdict Verdict
}

// NewPending creates an unresolved Pending.
func NewPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolve settles the pending verdict. Subsequent calls are
// no-ops.
func (p *Pending) Resolve(v Verdict) {
	p.once.Do(func() {
		p.verdict = v
		close(p.done)
	})
}

// settle blocks until the verdict is resolved or the context is
// cancelled. Cancellation abandons the wait only; the matcher
// itself runs to verdict.
func (p *Pending) settle(ctx context.Context) (Verdict, error) {
	select {
	case <-p.done:
		return p.verdict, nil
	case <-ctx.Done():
		return Verdict{}, ctx.Err()
	}
}
