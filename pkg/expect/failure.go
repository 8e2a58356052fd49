package expect

import (
	"sync"

	"github.com/askadityapandey/vitest/pkg/render"
)

// Failure is the structured assertion failure raised when a
// verdict and the negation flag disagree. It implements error;
// discriminate it from matcher-internal errors with errors.As.
type Failure struct {
	// Matcher is the name the matcher was registered under.
	Matcher string

	// Actual and Expected carry the verdict's operands for
	// downstream diff rendering.
	Actual   any
	Expected any

	// Inverted reports whether the assertion was negated at
	// the call site.
	Inverted bool

	message     func() string
	includeDiff bool

	once     sync.Once
	rendered string
}

// Error renders the failure message. Rendering happens once,
// on first call, honouring the lazy-message contract.
func (f *Failure) Error() string {
	f.once.Do(func() {
		msg := "assertion failed"
		if f.message != nil {
			msg = f.message()
		}
		f.rendered = msg

		if f.includeDiff {
			if d := render.Diff(f.Expected, f.Actual); d != "" {
				f.rendered += "\n" + d
			}
		}
	})
	return f.rendered
}
