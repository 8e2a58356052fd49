package equality

import (
	reflect "github.com/goccy/go-reflect"
)

// IterableEquality is a composable Tester that compares two
// iterables (slices or arrays, including mixed kinds)
// element-wise. It applies only when both sides are iterable.
func IterableEquality(a, b any) (handled, equal bool) {
	if a == nil || b == nil {
		return false, false
	}

	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if !isIterable(av) || !isIterable(bv) {
		return false, false
	}

	if av.Len() != bv.Len() {
		return true, false
	}
	for i := 0; i < av.Len(); i++ {
		if !Equals(
			av.Index(i).Interface(),
			bv.Index(i).Interface(),
			[]Tester{IterableEquality},
		) {
			return true, false
		}
	}
	return true, true
}

// SubsetEquality is a composable Tester that treats the expected
// side (b) as a partial map: equality holds when every key in b
// is present in a and its value matches. Nested maps are matched
// as subsets too. It applies only when b is a map.
func SubsetEquality(a, b any) (handled, equal bool) {
	if b == nil {
		return false, false
	}

	bv := reflect.ValueOf(b)
	if bv.Kind() != reflect.Map {
		return false, false
	}
	if a == nil {
		return true, false
	}
	av := reflect.ValueOf(a)
	if av.Kind() != reflect.Map {
		return true, false
	}

	for _, key := range bv.MapKeys() {
		other := av.MapIndex(key)
		if !other.IsValid() {
			return true, false
		}
		if !Equals(
			other.Interface(),
			bv.MapIndex(key).Interface(),
			[]Tester{SubsetEquality},
		) {
			return true, false
		}
	}
	return true, true
}

// isIterable reports whether a value can be indexed
// element-wise.
func isIterable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}
