package expect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEntryPoint returns a fresh entry point against empty
// shared registries, restoring them after the test.
func newTestEntryPoint(t *testing.T) *Expect {
	t.Helper()

	SharedMatchers.Clear()
	SharedAsymmetric.Clear()
	t.Cleanup(func() {
		SharedMatchers.Clear()
		SharedAsymmetric.Clear()
	})
	return New()
}

// toBeDivisibleBy is the workhorse test matcher.
func toBeDivisibleBy(
	mc *Context, subject any, args ...any,
) Outcome {
	n, _ := subject.(int)
	d := 0
	if len(args) > 0 {
		d, _ = args[0].(int)
	}
	pass := d != 0 && n%d == 0

	return Verdict{
		Pass:     pass,
		Actual:   n,
		Expected: d,
		Message: func() string {
			if mc.IsNot {
				return fmt.Sprintf(
					"expected %d not to be divisible by %d", n, d,
				)
			}
			return fmt.Sprintf(
				"expected %d to be divisible by %d", n, d,
			)
		},
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New()

	require.NotNil(t, e.Not)
	require.NotNil(t, e.Config())
	assert.Equal(t, 256, e.Config().TruncateThreshold)
	assert.Empty(t, e.CustomTesters())
}

func TestExpect_ValueCarriesSubject(t *testing.T) {
	e := newTestEntryPoint(t)

	a := e.Value(42)
	assert.Equal(t, 42, a.Subject())
}

func TestExpect_StateSnapshot(t *testing.T) {
	e := newTestEntryPoint(t)
	e.Extend(MatcherMap{"toBeDivisibleBy": toBeDivisibleBy})

	st := e.State()

	assert.Equal(t, *e.Config(), st.Config)
	assert.Contains(t, st.Matchers, "toBeDivisibleBy")
	assert.Contains(t, st.Matchers, MatcherCalledBefore)
}

func TestExpect_CloneSeesSharedMatchers(t *testing.T) {
	e := newTestEntryPoint(t)
	e.Extend(MatcherMap{"toBeDivisibleBy": toBeDivisibleBy})

	clone := e.Clone()

	// A clone has an empty local table but resolves through
	// the shared registries.
	require.NoError(t, clone.Value(10).To("toBeDivisibleBy", 5))

	// Matchers registered after cloning are visible too.
	e.Extend(MatcherMap{"toBeDivisibleBy2": toBeDivisibleBy})
	require.NoError(t, clone.Value(10).To("toBeDivisibleBy2", 5))
}

func TestExpect_AddCustomTestersObservedAtInvocation(t *testing.T) {
	e := newTestEntryPoint(t)

	sawTesters := 0
	e.Extend(MatcherMap{
		"probe": func(mc *Context, _ any, _ ...any) Outcome {
			sawTesters = len(mc.CustomTesters)
			return Verdict{
				Pass:    true,
				Message: func() string { return "probe" },
			}
		},
	})

	require.NoError(t, e.Value(nil).To("probe"))
	assert.Equal(t, 0, sawTesters)

	// Testers added after registration are read through.
	e.AddCustomTesters(func(_, _ any) (bool, bool) {
		return false, false
	})
	require.NoError(t, e.Value(nil).To("probe"))
	assert.Equal(t, 1, sawTesters)
}
