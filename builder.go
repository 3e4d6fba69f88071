package dynwhere

import (
	"github.com/KarpelesLab/pjson"
)

// Builder accumulates conditions for a WHERE clause. Conditions with an absent
// value, or a value listed in their skip values, are dropped when added.
//
// A Builder must not be shared between goroutines; use one per query.
type Builder struct {
	conds []Condition
}

func New() *Builder {
	return new(Builder)
}

// AddCondition appends a condition if its value is accepted.
//
// value can be a scalar, or a slice/array which is then treated as a list
// (see In). skip lists values that should be considered as not provided.
func (b *Builder) AddCondition(logic Logic, field string, cmp Comparison, value any, skip ...any) *Builder {
	v, ok := accept(value, skip)
	if !ok {
		debugLog("dynwhere: skipping %s condition on %s %s (value %v)", logic, field, cmp, value)
		return b
	}

	if len(skip) > 0 {
		skip = append([]any(nil), skip...)
	}
	b.conds = append(b.conds, Condition{
		Logic:      logic,
		Field:      field,
		Comparison: cmp,
		Value:      v,
		SkipValues: skip,
	})
	return b
}

// And adds a condition joined with AND
func (b *Builder) And(field string, cmp Comparison, value any, skip ...any) *Builder {
	return b.AddCondition(And, field, cmp, value, skip...)
}

// Or adds a condition joined with OR
func (b *Builder) Or(field string, cmp Comparison, value any, skip ...any) *Builder {
	return b.AddCondition(Or, field, cmp, value, skip...)
}

// Conditions returns a copy of the accepted conditions, in the order they were added
func (b *Builder) Conditions() []Condition {
	res := make([]Condition, len(b.conds))
	for n, c := range b.conds {
		res[n] = c.clone()
	}
	return res
}

// Values returns the value of each accepted condition, in the same order as
// Conditions. List values are returned as []any.
func (b *Builder) Values() []any {
	res := make([]any, len(b.conds))
	for n, c := range b.conds {
		res[n] = c.clone().Value
	}
	return res
}

func (b *Builder) Len() int {
	return len(b.conds)
}

// Clear removes all conditions
func (b *Builder) Clear() *Builder {
	b.conds = nil
	return b
}

func (b *Builder) MarshalJSON() ([]byte, error) {
	if b.conds == nil {
		return pjson.Marshal([]Condition{})
	}
	return pjson.Marshal(b.conds)
}
