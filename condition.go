package dynwhere

// Condition is a single accepted field/comparison/value test, along with the
// logic operator joining it to the previous condition.
//
// Value is either a scalar or, for lists (typically used with In), a []any.
type Condition struct {
	Logic      Logic      `json:"logic"`
	Field      string     `json:"field"`
	Comparison Comparison `json:"comparison"`
	Value      any        `json:"value"`
	SkipValues []any      `json:"skip_values,omitempty"`
}

// list returns the value as a list, if it is one
func (c Condition) list() ([]any, bool) {
	l, ok := c.Value.([]any)
	return l, ok
}

func (c Condition) clone() Condition {
	if l, ok := c.list(); ok {
		c.Value = append([]any(nil), l...)
	}
	if c.SkipValues != nil {
		c.SkipValues = append([]any(nil), c.SkipValues...)
	}
	return c
}
