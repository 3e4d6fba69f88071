package dynwhere

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// formatValue returns the literal form of a value. Strings are wrapped in
// double quotes as is, which means a value containing a double quote will
// break out of the literal.
func formatValue(val any) string {
	if val == nil {
		return "NULL"
	}

	switch v := val.(type) {
	case string:
		return `"` + v + `"`
	case []byte:
		return `"` + string(v) + `"`
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return formatFloat(v, 64)
	case time.Time:
		return v.UTC().Format(`"2006-01-02 15:04:05.999999"`)
	case []any:
		// not an In list, join values
		b := &strings.Builder{}
		for n, sub := range v {
			if n != 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatValue(sub))
		}
		return b.String()
	case driver.Valuer:
		sub, err := v.Value()
		if err != nil {
			return "NULL"
		}
		return formatValue(sub)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() != reflect.String {
			return v.String()
		}
		// named string types are still strings
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return formatValue(rv.String())
	case reflect.Ptr:
		if rv.IsNil() {
			return "NULL"
		}
		return formatValue(rv.Elem().Interface())
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatFloat avoids exponents for the usual range of values, so 1000000.0 is
// rendered as 1000000 and not 1e+06
func formatFloat(f float64, bitSize int) string {
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
