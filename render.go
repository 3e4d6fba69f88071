package dynwhere

import (
	"fmt"
	"strings"
)

// DefaultPlaceholder is used by RenderPlaceholders when no placeholder is given
const DefaultPlaceholder = "(?)"

type renderContext struct {
	engine      Engine
	useArgs     bool
	placeholder string // fixed placeholder text, if any
	args        []any
	argOffset   int // number of args already present in the query
}

// Render returns the WHERE fragment with values included as literals.
//
// If startWithWhere is true the fragment starts with " WHERE" and the first
// condition has no logic operator. Otherwise the first condition's logic
// operator is included, so the fragment can follow an existing WHERE clause.
//
// String values are wrapped in double quotes without any escaping. Never use
// Render with untrusted input, see RenderArgs.
func (b *Builder) Render(startWithWhere bool) string {
	return b.render(&renderContext{}, startWithWhere, !startWithWhere)
}

// RenderPlaceholders returns the WHERE fragment with each value replaced by
// placeholder (DefaultPlaceholder if empty). Values to bind are returned by
// Values.
//
// A single placeholder is emitted per condition, including In lists, and
// nullity tests (IsNull, IsNotNull) emit none even though Values includes
// their value.
func (b *Builder) RenderPlaceholders(startWithWhere bool, placeholder string) string {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return b.render(&renderContext{placeholder: placeholder}, startWithWhere, !startWithWhere)
}

// RenderArgs returns the WHERE fragment using the placeholders of the given
// engine, and the matching list of arguments. In lists are expanded to one
// placeholder per element.
func (b *Builder) RenderArgs(e Engine, startWithWhere bool) (string, []any, error) {
	if err := b.check(e); err != nil {
		return "", nil, err
	}
	ctx := &renderContext{engine: e, useArgs: true}
	return b.render(ctx, startWithWhere, !startWithWhere), ctx.args, nil
}

func (b *Builder) String() string {
	return b.Render(true)
}

// check ensures all the enum values are known before rendering for a driver
func (b *Builder) check(e Engine) error {
	if !e.valid() {
		return ErrUnknownEngine
	}
	for n, c := range b.conds {
		if !c.Logic.valid() {
			return fmt.Errorf("condition %d on %s: %w %s", n, c.Field, ErrInvalidLogic, c.Logic)
		}
		if !c.Comparison.valid() {
			return fmt.Errorf("condition %d on %s: %w %s", n, c.Field, ErrInvalidComparison, c.Comparison)
		}
	}
	return nil
}

func (b *Builder) render(ctx *renderContext, where, leadingLogic bool) string {
	w := &strings.Builder{}
	if where {
		w.WriteString(" WHERE")
	}

	for n, c := range b.conds {
		var next *Condition
		if n+1 < len(b.conds) {
			next = &b.conds[n+1]
		}

		if n > 0 || leadingLogic {
			w.WriteByte(' ')
			w.WriteString(c.Logic.String())
		}

		// runs of OR are grouped in parenthesis, starting from the condition
		// just before the first OR
		if c.Logic == And && next != nil && next.Logic == Or {
			w.WriteString(" (")
		} else {
			w.WriteByte(' ')
		}

		w.WriteString(c.Field)
		w.WriteByte(' ')
		w.WriteString(c.Comparison.String())
		w.WriteString(ctx.valueSlot(&c))

		if c.Logic == Or && (next == nil || next.Logic == And) {
			w.WriteByte(')')
		}
	}

	return w.String()
}

// valueSlot renders what follows the comparison symbol, including the leading space
func (ctx *renderContext) valueSlot(c *Condition) string {
	if !c.Comparison.hasValue() {
		return ""
	}
	if ctx.placeholder != "" {
		return " " + ctx.placeholder
	}

	if l, ok := c.list(); ok {
		// lists outside of In are joined without parenthesis
		b := &strings.Builder{}
		if c.Comparison == In {
			b.WriteString(" (")
		} else {
			b.WriteByte(' ')
		}
		for n, v := range l {
			if n != 0 {
				b.WriteByte(',')
			}
			b.WriteString(ctx.appendArg(v))
		}
		if c.Comparison == In {
			b.WriteByte(')')
		}
		return b.String()
	}

	return " " + ctx.appendArg(c.Value)
}

func (ctx *renderContext) appendArg(arg any) string {
	if ctx.useArgs {
		ctx.args = append(ctx.args, arg)
		return ctx.engine.placeholder(ctx.argOffset + len(ctx.args))
	}
	return formatValue(arg)
}
