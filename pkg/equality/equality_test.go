package equality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubMatcher implements Matchable for tests.
type stubMatcher struct {
	result bool
	name   string
}

func (s stubMatcher) Match(_ any) bool { return s.result }
func (s stubMatcher) Describe() string { return s.name }

func TestEquals_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		a, b  any
		equal bool
	}{
		{"equal strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"equal ints", 1, 1, true},
		{"int vs int64 loose", 1, int64(1), true},
		{"int vs float loose", 2, 2.0, true},
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 1, false},
		{"bools", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equals(tt.a, tt.b, nil))
		})
	}
}

func TestEquals_StrictNumerics(t *testing.T) {
	assert.True(t, Equals(1, int64(1), nil))
	assert.False(t, Equals(1, int64(1), nil, true))
	assert.True(t, Equals(1, 1, nil, true))
}

func TestEquals_Composites(t *testing.T) {
	tests := []struct {
		name  string
		a, b  any
		equal bool
	}{
		{
			"equal slices",
			[]int{1, 2, 3}, []int{1, 2, 3}, true,
		},
		{
			"different slice length",
			[]int{1}, []int{1, 2}, false,
		},
		{
			"equal maps",
			map[string]int{"a": 1},
			map[string]int{"a": 1},
			true,
		},
		{
			"missing key",
			map[string]int{"a": 1},
			map[string]int{"b": 1},
			false,
		},
		{
			"nested",
			map[string][]int{"a": {1, 2}},
			map[string][]int{"a": {1, 2}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equals(tt.a, tt.b, nil))
		})
	}
}

func TestEquals_AsymmetricMatcher(t *testing.T) {
	// Matcher decides the outcome at its position regardless
	// of the concrete value.
	assert.True(t, Equals(
		map[string]any{"x": 99},
		map[string]any{"x": stubMatcher{result: true}},
		nil,
	))
	assert.False(t, Equals(
		map[string]any{"x": 99},
		map[string]any{"x": stubMatcher{result: false}},
		nil,
	))
}

func TestEquals_CustomTesterWins(t *testing.T) {
	alwaysEqual := func(_, _ any) (bool, bool) {
		return true, true
	}

	assert.True(t, Equals("a", "b", []Tester{alwaysEqual}))
}

func TestEquals_Pointers(t *testing.T) {
	x, y := 5, 5
	var nilPtr *int

	assert.True(t, Equals(&x, &y, nil))
	assert.False(t, Equals(&x, nilPtr, nil))
}

func TestEquals_Structs(t *testing.T) {
	type point struct{ X, Y int }

	assert.True(t, Equals(point{1, 2}, point{1, 2}, nil))
	assert.False(t, Equals(point{1, 2}, point{1, 3}, nil))
}

func TestIterableEquality(t *testing.T) {
	handled, equal := IterableEquality([]int{1, 2}, [2]int{1, 2})
	assert.True(t, handled)
	assert.True(t, equal)

	handled, equal = IterableEquality([]int{1}, []int{2})
	assert.True(t, handled)
	assert.False(t, equal)

	handled, _ = IterableEquality("nope", []int{1})
	assert.False(t, handled)
}

func TestSubsetEquality(t *testing.T) {
	full := map[string]any{"a": 1, "b": 2, "c": 3}

	handled, equal := SubsetEquality(
		full, map[string]any{"a": 1},
	)
	assert.True(t, handled)
	assert.True(t, equal)

	handled, equal = SubsetEquality(
		full, map[string]any{"a": 2},
	)
	assert.True(t, handled)
	assert.False(t, equal)

	handled, _ = SubsetEquality(full, []int{1})
	assert.False(t, handled)
}

func TestSubsetEquality_Nested(t *testing.T) {
	full := map[string]any{
		"outer": map[string]any{"x": 1, "y": 2},
	}

	handled, equal := SubsetEquality(full, map[string]any{
		"outer": map[string]any{"x": 1},
	})
	assert.True(t, handled)
	assert.True(t, equal)
}
