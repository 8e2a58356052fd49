// Package equality implements the deep-equality algorithm used
// by matcher contexts. It supports pluggable custom testers and
// honours asymmetric matchers embedded inside compared
// structures.
package equality

import (
	reflect "github.com/goccy/go-reflect"
)

// Matchable is implemented by asymmetric matcher instances.
// When Equals encounters a Matchable on either side of a
// comparison, the matcher decides the outcome for that position.
type Matchable interface {
	// Match reports whether the other value satisfies the
	// matcher.
	Match(other any) bool

	// Describe returns the matcher name for failure output.
	Describe() string
}

// Tester is a custom equality tester. The first return value
// reports whether the tester applies to the pair at all; the
// second is the verdict when it does. Testers run before any
// built-in comparison.
type Tester func(a, b any) (handled, equal bool)

// Equals reports deep equality of a and b. Custom testers are
// consulted first, in order. Asymmetric matchers on either side
// are honoured at every depth. The optional strict flag disables
// cross-kind numeric comparison (e.g. int vs int64).
func Equals(a, b any, testers []Tester, strict ...bool) bool {
	strictCheck := len(strict) > 0 && strict[0]
	return deepEqual(a, b, testers, strictCheck)
}

func deepEqual(a, b any, testers []Tester, strict bool) bool {
	for _, tester := range testers {
		if handled, equal := tester(a, b); handled {
			return equal
		}
	}

	if m, ok := b.(Matchable); ok {
		return m.Match(a)
	}
	if m, ok := a.(Matchable); ok {
		return m.Match(b)
	}

	if a == nil || b == nil {
		return a == b
	}

	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)

	if !strict {
		if c, ok := numericEqual(av, bv); ok {
			return c
		}
	}

	if av.Kind() != bv.Kind() {
		return false
	}

	switch av.Kind() {
	case reflect.Slice, reflect.Array:
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !deepEqual(
				av.Index(i).Interface(),
				bv.Index(i).Interface(),
				testers, strict,
			) {
				return false
			}
		}
		return true

	case reflect.Map:
		if av.Len() != bv.Len() {
			return false
		}
		for _, key := range bv.MapKeys() {
			other := av.MapIndex(key)
			if !other.IsValid() {
				return false
			}
			if !deepEqual(
				other.Interface(),
				bv.MapIndex(key).Interface(),
				testers, strict,
			) {
				return false
			}
		}
		return true

	case reflect.Ptr:
		if av.IsNil() || bv.IsNil() {
			return av.IsNil() && bv.IsNil()
		}
		return deepEqual(
			av.Elem().Interface(),
			bv.Elem().Interface(),
			testers, strict,
		)

	case reflect.Struct:
		if av.Type() != bv.Type() {
			return false
		}
		// Unexported fields cannot be projected through
		// Interface; compare the whole struct reflectively.
		if hasUnexported(av.Type()) {
			return reflect.DeepEqual(a, b)
		}
		for i := 0; i < av.NumField(); i++ {
			if !deepEqual(
				av.Field(i).Interface(),
				bv.Field(i).Interface(),
				testers, strict,
			) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}

// hasUnexported reports whether a struct type has at least one
// unexported field.
func hasUnexported(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath != "" {
			return true
		}
	}
	return false
}

// numericEqual compares two values as float64 when both are
// numeric kinds. The second return value reports applicability.
func numericEqual(av, bv reflect.Value) (equal, ok bool) {
	af, aok := asFloat(av)
	bf, bok := asFloat(bv)
	if !aok || !bok {
		return false, false
	}
	return af == bf, true
}

// asFloat converts a numeric reflect value to float64.
func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
