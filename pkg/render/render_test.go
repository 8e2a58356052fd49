package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		contains string
	}{
		{"nil", nil, "<nil>"},
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"slice", []int{1, 2}, "1"},
		{"map", map[string]int{"a": 1}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Stringify(tt.value)
			assert.Contains(t, out, tt.contains)
			assert.NotContains(t, out, "\n")
		})
	}
}

func TestStringifyTruncated(t *testing.T) {
	long := strings.Repeat("x", 200)

	out := StringifyTruncated(long, 50)
	assert.LessOrEqual(t, len(out), 53)
	assert.True(t, strings.HasSuffix(out, "..."))

	// Zero disables truncation.
	out = StringifyTruncated(long, 0)
	assert.False(t, strings.HasSuffix(out, "..."))
}

func TestDiff_EqualValues(t *testing.T) {
	assert.Empty(t, Diff(42, 42))
	assert.Empty(t, Diff(nil, nil))
	assert.Empty(t, Diff([]int{1, 2}, []int{1, 2}))
}

func TestDiff_DifferentValues(t *testing.T) {
	out := Diff(
		map[string]int{"a": 1},
		map[string]int{"a": 2},
	)

	assert.Contains(t, out, "Expected")
	assert.Contains(t, out, "Actual")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "+")
}
