package dynwhere

import "strconv"

// Comparison is the test applied between a field and its value
type Comparison int

const (
	Equals Comparison = iota
	DoesNotEqual
	GreaterThan
	LessThan
	GreaterThanOrEqual
	LessThanOrEqual
	Like
	In
	IsNull
	IsNotNull
)

var comparisonSymbols = [...]string{
	Equals:             "=",
	DoesNotEqual:       "!=",
	GreaterThan:        ">",
	LessThan:           "<",
	GreaterThanOrEqual: ">=",
	LessThanOrEqual:    "<=",
	Like:               "LIKE",
	In:                 "IN",
	IsNull:             "IS NULL",
	IsNotNull:          "IS NOT NULL",
}

// String returns the SQL symbol for the comparison, for example ">=" or "IS NULL"
func (c Comparison) String() string {
	if !c.valid() {
		return "Comparison(" + strconv.Itoa(int(c)) + ")"
	}
	return comparisonSymbols[c]
}

func (c Comparison) valid() bool {
	return c >= Equals && c <= IsNotNull
}

// hasValue returns false for nullity tests, where the symbol alone is enough
func (c Comparison) hasValue() bool {
	return c != IsNull && c != IsNotNull
}

func (c Comparison) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
