package dynwhere

import (
	"math"
	"reflect"

	"github.com/KarpelesLab/typutil"
)

// accept decides if a condition with the given value should be kept. It
// returns the value to record, which for lists is the filtered []any.
func accept(value any, skip []any) (any, bool) {
	value = deref(value)
	if isAbsent(value) {
		return nil, false
	}

	if l, ok := asList(value); ok {
		res := make([]any, 0, len(l))
		for _, v := range l {
			if !isSkipped(v, skip) {
				res = append(res, v)
			}
		}
		if len(res) == 0 {
			// everything was filtered out
			return nil, false
		}
		return res, true
	}

	if isSkipped(value, skip) {
		return nil, false
	}
	return value, true
}

// deref follows pointers and interfaces, returning nil for nil values of any kind
func deref(v any) any {
	if typutil.IsNil(v) {
		return nil
	}
	return typutil.Flatten(v)
}

// isAbsent returns true for values that count as "not provided": nil, false,
// empty strings and NaN. Zero numbers are values.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}

// asList returns the elements of slices and arrays. []byte is a scalar.
func asList(v any) ([]any, bool) {
	if l, ok := v.([]any); ok {
		res := make([]any, len(l))
		for n, sub := range l {
			res[n] = deref(sub)
		}
		return res, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	default:
		return nil, false
	}

	res := make([]any, rv.Len())
	for i := range res {
		res[i] = deref(rv.Index(i).Interface())
	}
	return res, true
}

func isSkipped(v any, skip []any) bool {
	for _, s := range skip {
		if sameValue(v, deref(s)) {
			return true
		}
	}
	return false
}

// sameValue compares two scalars. Numbers are compared by value regardless of
// their Go type, so int(50) matches float64(50).
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if numKind(ra) != 0 {
		return sameNumber(ra, rb)
	}

	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return ra.String() == rb.String()
	case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
		return ra.Bool() == rb.Bool()
	}
	return reflect.DeepEqual(a, b)
}

// numKind returns 'i' for signed integers, 'u' for unsigned ones, 'f' for
// floats and 0 for anything else
func numKind(rv reflect.Value) byte {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 'i'
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 'u'
	case reflect.Float32, reflect.Float64:
		return 'f'
	default:
		return 0
	}
}

// sameNumber compares integers exactly, and goes through float64 only when
// one side is a float
func sameNumber(a, b reflect.Value) bool {
	ka, kb := numKind(a), numKind(b)
	switch {
	case ka == 0 || kb == 0:
		return false
	case ka == 'f' || kb == 'f':
		return toFloat(a, ka) == toFloat(b, kb)
	case ka == 'i' && kb == 'i':
		return a.Int() == b.Int()
	case ka == 'u' && kb == 'u':
		return a.Uint() == b.Uint()
	case ka == 'i':
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}

func toFloat(rv reflect.Value, kind byte) float64 {
	switch kind {
	case 'i':
		return float64(rv.Int())
	case 'u':
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}
