package sass

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a SassScript expression. Text returns its source form, the same
// in both syntaxes.
type Expr interface {
	Text() string
}

// String is a string literal, empty Quote means unquoted identifier-like
// string.
type String struct {
	Value string
	Quote string
}

func (s *String) Text() string {
	return s.Quote + s.Value + s.Quote
}

// Number with optional unit.
type Number struct {
	Value float64
	Unit  string
}

func (n *Number) Text() string {
	return formatNumber(n.Value) + n.Unit
}

// Color keeps original representation of the color literal.
type Color struct {
	Value string
}

func (c *Color) Text() string {
	return c.Value
}

type Bool struct {
	Value bool
}

func (b *Bool) Text() string {
	return strconv.FormatBool(b.Value)
}

type Null struct{}

func (*Null) Text() string {
	return "null"
}

// VariableRef dereferences variable, Name is without "$".
type VariableRef struct {
	Name string
}

func (v *VariableRef) Text() string {
	return "$" + v.Name
}

// Interpolation is "#{...}", used in selectors, property names and
// directive payloads.
type Interpolation struct {
	Value Expr
}

func (i *Interpolation) Text() string {
	return "#{" + i.Value.Text() + "}"
}

// StringInterpolation is quoted string with interpolated parts. Unquoted
// String parts are literal text, everything else is interpolated.
type StringInterpolation struct {
	Quote string
	Parts []Expr
}

func (s *StringInterpolation) Text() string {
	var b strings.Builder
	b.WriteString(s.Quote)
	for _, p := range s.Parts {
		if lit, ok := p.(*String); ok && lit.Quote == "" {
			b.WriteString(lit.Value)
			continue
		}
		b.WriteString("#{")
		b.WriteString(p.Text())
		b.WriteString("}")
	}
	b.WriteString(s.Quote)
	return b.String()
}

// List of values, nested lists which would change meaning are
// parenthesized.
type List struct {
	Items     []Expr
	Separator Separator
}

func (l *List) Text() string {
	if len(l.Items) == 0 {
		return "()"
	}
	sep := " "
	if l.Separator == SeparatorComma {
		sep = ", "
	}
	parts := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		s := it.Text()
		if inner, ok := it.(*List); ok && len(inner.Items) > 1 && inner.Separator >= l.Separator {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep)
}

// Operation is binary operation.
type Operation struct {
	Op          Operator
	Left, Right Expr
}

func (o *Operation) Text() string {
	return operand(o.Left, o.Op, false) + " " + o.Op.Symbol() + " " + operand(o.Right, o.Op, true)
}

// operators for which a op (b op c) differs from (a op b) op c
func nonAssociative(op Operator) bool {
	switch op {
	case OperatorPlus, OperatorTimes, OperatorAnd, OperatorOr:
		return false
	}
	return true
}

func operand(e Expr, parent Operator, right bool) string {
	s := e.Text()
	switch v := e.(type) {
	case *Operation:
		p, pp := v.Op.Precedence(), parent.Precedence()
		if p < pp || right && p == pp && nonAssociative(parent) {
			return "(" + s + ")"
		}
	case *List:
		if len(v.Items) > 1 {
			return "(" + s + ")"
		}
	}
	return s
}

// Unary is prefix operation: minus, plus or not.
type Unary struct {
	Op      Operator
	Operand Expr
}

func (u *Unary) Text() string {
	s := u.Operand.Text()
	switch u.Operand.(type) {
	case *Operation, *List:
		s = "(" + s + ")"
	}
	if u.Op == OperatorNot {
		return "not " + s
	}
	return u.Op.Symbol() + s
}

// Funcall is function call with positional arguments.
type Funcall struct {
	Name string
	Args []Expr
}

func (f *Funcall) Text() string {
	args := make([]string, 0, len(f.Args))
	for _, a := range f.Args {
		args = append(args, a.Text())
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

type Paren struct {
	Value Expr
}

func (p *Paren) Text() string {
	return "(" + p.Value.Text() + ")"
}

// Concat writes expressions next to each other, used for selectors,
// property names and media queries where text and interpolations alternate.
func Concat(parts []Expr) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text())
	}
	return b.String()
}

func formatNumber(v float64) string {
	v = math.Round(v*1e10) / 1e10
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
