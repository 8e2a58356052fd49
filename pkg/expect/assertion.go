package expect

import (
	"context"
	"fmt"

	"github.com/askadityapandey/vitest/pkg/softassert"
)

// Assertion is a live fluent assertion: a subject plus the
// call-site flags (negation, promise tag, soft and poll modes)
// read by the context builder. Chaining methods return modified
// copies; an Assertion value is cheap and single-use.
type Assertion struct {
	ep      *Expect
	subject any
	negated bool
	promise string
	soft    bool
	poll    bool
	sink    *softassert.Sink
}

// Subject returns the value under test.
func (a *Assertion) Subject() any {
	return a.subject
}

// Not toggles the negation flag.
func (a *Assertion) Not() *Assertion {
	b := *a
	b.negated = !a.negated
	return &b
}

// Resolves tags the assertion as chained off a resolved
// promise.
func (a *Assertion) Resolves() *Assertion {
	b := *a
	b.promise = PromiseResolves
	return &b
}

// Rejects tags the assertion as chained off a rejected promise.
func (a *Assertion) Rejects() *Assertion {
	b := *a
	b.promise = PromiseRejects
	return &b
}

// Polling marks the assertion as running under an
// eventually-true retry loop. The retry itself is owned by the
// caller; this layer only exposes the flag to matchers.
func (a *Assertion) Polling() *Assertion {
	b := *a
	b.poll = true
	return &b
}

// To invokes the matcher registered under name against the
// subject and blocks until its verdict settles. It returns nil
// on success and a *Failure when the verdict and the negation
// flag disagree. Unknown names and matcher-internal errors are
// returned as ordinary errors, not failures.
func (a *Assertion) To(name string, args ...any) error {
	return a.ToContext(context.Background(), name, args...)
}

// ToContext is To with a context bounding the wait for a
// deferred verdict. The matcher itself always runs to verdict;
// cancellation abandons only the wait.
func (a *Assertion) ToContext(
	ctx context.Context, name string, args ...any,
) error {
	fn, ok := a.ep.lookup(name)
	if !ok {
		return fmt.Errorf("unknown matcher: %s", name)
	}
	return fn(ctx, a, args...)
}

// ToAsync invokes the matcher without blocking and returns an
// AsyncAssertion that settles once the verdict does.
func (a *Assertion) ToAsync(
	name string, args ...any,
) *AsyncAssertion {
	out := &AsyncAssertion{done: make(chan struct{})}

	go func() {
		defer close(out.done)
		out.err = a.ToContext(
			context.Background(), name, args...,
		)
	}()
	return out
}

// AsyncAssertion is a deferred assertion outcome.
type AsyncAssertion struct {
	done chan struct{}
	err  error
}

// Await suspends until the assertion settles or the context is
// cancelled, and returns the assertion's error (nil, a
// *Failure, or a matcher-internal error).
func (x *AsyncAssertion) Await(ctx context.Context) error {
	select {
	case <-x.done:
		return x.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
