package dynwhere

import (
	"regexp"
	"strings"
)

var whereKeyword = regexp.MustCompile(`(?i)\bwhere\b`)

type SQLQuery struct {
	Query string
	Args  []any
}

// Q is a short hand to create a Query object
func Q(q string, args ...any) *SQLQuery {
	return &SQLQuery{q, args}
}

// Apply appends the conditions to base and returns the resulting query, with
// arguments using e's placeholders. The way the fragment starts depends on base:
//
//   - no WHERE keyword: " WHERE" is added
//   - ends with WHERE: the conditions follow directly
//   - WHERE followed by conditions: the first condition's logic operator joins them
//
// A base query with more than one WHERE keyword (including in subqueries or
// string literals) is rejected. Without any condition, base is returned as is.
func (b *Builder) Apply(e Engine, base *SQLQuery) (*SQLQuery, error) {
	if base == nil {
		return nil, &Error{"", ErrNilQuery}
	}
	res := &SQLQuery{Query: base.Query, Args: append([]any(nil), base.Args...)}
	if len(b.conds) == 0 {
		return res, nil
	}
	if err := b.check(e); err != nil {
		return nil, &Error{base.Query, err}
	}

	query := strings.TrimRight(base.Query, " \t\r\n")
	where, leading := true, false

	loc := whereKeyword.FindAllStringIndex(query, -1)
	switch len(loc) {
	case 0:
	case 1:
		where = false
		leading = strings.TrimSpace(query[loc[0][1]:]) != ""
	default:
		return nil, &Error{base.Query, ErrTooManyWhere}
	}

	ctx := &renderContext{engine: e, useArgs: true, argOffset: len(base.Args)}
	res.Query = query + b.render(ctx, where, leading)
	res.Args = append(res.Args, ctx.args...)
	return res, nil
}
