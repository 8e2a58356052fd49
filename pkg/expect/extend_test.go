package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askadityapandey/vitest/pkg/metrics"
)

func TestExtend_InstallsOnAllThreeSurfaces(t *testing.T) {
	e := newTestEntryPoint(t)

	e.Extend(MatcherMap{"toBeDivisibleBy": toBeDivisibleBy})

	for _, name := range []string{
		"toBeDivisibleBy", MatcherCalledBefore,
	} {
		// Local table.
		_, ok := e.lookup(name)
		assert.True(t, ok, "local table missing %s", name)

		// Shared fluent registry.
		_, ok = SharedMatchers.Lookup(name)
		assert.True(t, ok, "shared registry missing %s", name)

		// Shared asymmetric registry.
		_, ok = SharedAsymmetric.Lookup(name)
		assert.True(
			t, ok, "asymmetric registry missing %s", name,
		)
	}
}

func TestExtend_MergesBuiltins(t *testing.T) {
	e := newTestEntryPoint(t)

	// Even an empty batch installs the built-ins.
	e.Extend(nil)

	_, ok := e.lookup(MatcherCalledBefore)
	assert.True(t, ok)
}

func TestExtend_UserEntryShadowsBuiltin(t *testing.T) {
	e := newTestEntryPoint(t)

	e.Extend(MatcherMap{
		MatcherCalledBefore: func(
			_ *Context, _ any, _ ...any,
		) Outcome {
			return Verdict{
				Pass:    true,
				Message: func() string { return "shadowed" },
			}
		},
	})

	// The shadow passes unconditionally where the built-in
	// would reject a non-spy subject.
	require.NoError(
		t, e.Value("not a spy").To(MatcherCalledBefore),
	)
}

func TestExtend_Idempotent(t *testing.T) {
	e := newTestEntryPoint(t)
	batch := MatcherMap{"toBeDivisibleBy": toBeDivisibleBy}

	e.Extend(batch)
	first := SharedMatchers.Names()
	firstCount := SharedAsymmetric.Count()

	e.Extend(batch)

	assert.Equal(t, first, SharedMatchers.Names())
	assert.Equal(t, firstCount, SharedAsymmetric.Count())
	require.NoError(t, e.Value(10).To("toBeDivisibleBy", 5))
}

func TestExtend_SecondEntryPointSeesSharedSet(t *testing.T) {
	e := newTestEntryPoint(t)
	e.Extend(MatcherMap{"toBeDivisibleBy": toBeDivisibleBy})

	other := New()
	require.NoError(t, other.Value(10).To("toBeDivisibleBy", 5))

	m, err := other.Matcher("toBeDivisibleBy", 5)
	require.NoError(t, err)
	assert.True(t, m.Match(10))
}

func TestExtend_RecordsMetrics(t *testing.T) {
	rec := metrics.NewInMemoryMetrics()

	SharedMatchers.Clear()
	SharedAsymmetric.Clear()
	t.Cleanup(func() {
		SharedMatchers.Clear()
		SharedAsymmetric.Clear()
	})
	e := New(WithMetrics(rec))

	e.Extend(MatcherMap{"toBeDivisibleBy": toBeDivisibleBy})

	assert.Equal(t, 1, rec.ExtendTotal())
	assert.Equal(t, 2, rec.RegisteredMatchers())

	require.NoError(t, e.Value(10).To("toBeDivisibleBy", 5))
	_ = e.Value(10).To("toBeDivisibleBy", 3)

	assert.Equal(
		t, 1, rec.DispatchCount("toBeDivisibleBy", "passed"),
	)
	assert.Equal(
		t, 1, rec.DispatchCount("toBeDivisibleBy", "failed"),
	)
}

func TestRegistry_OverwriteAndClear(t *testing.T) {
	r := NewRegistry()

	r.Register("a", nil)
	r.Register("a", nil)
	r.Register("b", nil)

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []string{"a", "b"}, r.Names())

	r.Clear()
	assert.Equal(t, 0, r.Count())
	_, ok := r.Lookup("a")
	assert.False(t, ok)
}

func TestAsymmetricRegistry_OverwriteAndClear(t *testing.T) {
	r := NewAsymmetricRegistry()

	r.Register("a", nil)
	r.Register("a", nil)

	assert.Equal(t, 1, r.Count())
	assert.Equal(t, []string{"a"}, r.Names())

	r.Clear()
	assert.Equal(t, 0, r.Count())
}
