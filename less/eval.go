package less

import (
	"math"
	"strings"

	"l2s/common"
)

// Evaluate computes literal value of the subtree against environment chain
// using closest definition of every variable. Result is a new detached
// subtree, input is never modified. It is used only for positions where
// target needs literal values (media queries, some directive payloads),
// property values stay symbolic.
func Evaluate(n *Node, env *Environment) (*Node, error) {
	ev := &evaluator{env: env, active: make(map[string]bool)}
	return ev.eval(n)
}

type evaluator struct {
	env *Environment
	// variables being evaluated, guards against self references
	active map[string]bool
}

func (ev *evaluator) eval(n *Node) (*Node, error) {
	switch n.Kind {
	case KindVariable:
		return ev.variable(n.Name())
	case KindValue, KindExpression:
		items := n.Nodes("value")
		if len(items) == 1 {
			return ev.eval(items[0])
		}
		return ev.rebuild(n, "value", items)
	case KindParen, KindUrl, KindRule:
		if v := n.Node("value"); v != nil {
			return ev.rebuild(n, "value", []*Node{v})
		}
		return n.Clone(), nil
	case KindCall:
		return ev.rebuild(n, "args", n.Nodes("args"))
	case KindNegative:
		v, err := ev.eval(n.Node("value"))
		if err != nil {
			return nil, err
		}
		if v.Kind == KindDimension {
			f, _ := v.Num("value")
			v.Set("value", -f)
			return v, nil
		}
		neg := NewNode(KindNegative)
		neg.SetNode("value", v)
		return neg, nil
	case KindOperation:
		ops := n.Nodes("operands")
		if len(ops) != 2 {
			return nil, common.NewError(common.ErrorKindUnknownError, "operation expects two operands, got %d", len(ops))
		}
		a, err := ev.eval(ops[0])
		if err != nil {
			return nil, err
		}
		b, err := ev.eval(ops[1])
		if err != nil {
			return nil, err
		}
		return operate(n.Str("op"), a, b)
	case KindQuoted:
		return ev.interpolate(n)
	}
	return n.Clone(), nil
}

// rebuild copies node replacing listed attribute children with their values.
func (ev *evaluator) rebuild(n *Node, name string, items []*Node) (*Node, error) {
	out := NewNode(n.Kind)
	values := make([]*Node, 0, len(items))
	for _, it := range items {
		v, err := ev.eval(it)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	for _, an := range n.AttrNames() {
		if an == name {
			out.SetNodes(name, values)
			continue
		}
		v, _ := n.Attr(an)
		switch c := v.(type) {
		case *Node:
			out.SetNode(an, c.Clone())
		case []*Node:
			list := make([]*Node, 0, len(c))
			for _, e := range c {
				list = append(list, e.Clone())
			}
			out.SetNodes(an, list)
		default:
			out.Set(an, v)
		}
	}
	return out, nil
}

func (ev *evaluator) variable(name string) (*Node, error) {
	if strings.HasPrefix(name, "@@") {
		// variable holding name of another variable
		inner, err := ev.variable(name[1:])
		if err != nil {
			return nil, err
		}
		name = "@" + strings.Trim(Text(inner), `"'`)
	}
	if ev.active[name] {
		return nil, common.NewError(common.ErrorKindUnknownError, "recursive variable definition %s", name)
	}
	var def *Node
	if ev.env != nil {
		def = ev.env.Lookup(name)
	}
	if def == nil {
		return nil, common.NewError(common.ErrorKindUnknownError, "variable %s is undefined", name)
	}
	value := def.Node("value")
	if value == nil {
		return nil, common.NewError(common.ErrorKindUnknownError, "variable %s has no value", name)
	}
	ev.active[name] = true
	defer delete(ev.active, name)
	return ev.eval(value)
}

func (ev *evaluator) interpolate(n *Node) (*Node, error) {
	s := n.Str("value")
	var err error
	s = InterpolationRe.ReplaceAllStringFunc(s, func(m string) string {
		if err != nil {
			return m
		}
		var v *Node
		v, err = ev.variable("@" + m[2:len(m)-1])
		if err != nil {
			return m
		}
		if v.Kind == KindQuoted {
			return v.Str("value")
		}
		return Text(v)
	})
	if err != nil {
		return nil, err
	}
	out := n.Clone()
	out.Set("value", s)
	return out, nil
}

// NewDimension creates dimension node with simple unit.
func NewDimension(value float64, unit string) *Node {
	d := NewNode(KindDimension)
	d.Set("value", value)
	u := NewNode(KindUnit)
	num := []any{}
	if unit != "" {
		num = append(num, unit)
	}
	u.Set("numerator", num)
	u.Set("denominator", []any{})
	d.SetNode("unit", u)
	return d
}

// NewKeyword creates keyword node.
func NewKeyword(value string) *Node {
	k := NewNode(KindKeyword)
	k.Set("value", value)
	return k
}

func operate(op string, a, b *Node) (*Node, error) {
	switch {
	case a.Kind == KindDimension && b.Kind == KindDimension:
		x, _ := a.Num("value")
		y, _ := b.Num("value")
		unit := dimensionUnit(a)
		if unit == "" {
			unit = dimensionUnit(b)
		}
		switch op {
		case "+":
			return NewDimension(x+y, unit), nil
		case "-":
			return NewDimension(x-y, unit), nil
		case "*":
			return NewDimension(x*y, unit), nil
		case "/", "./":
			if y == 0 {
				return nil, common.NewError(common.ErrorKindUnknownError, "division by zero")
			}
			return NewDimension(x/y, unit), nil
		case "%":
			return NewDimension(math.Mod(x, y), unit), nil
		}
		if res, ok := compare(op, x, y); ok {
			return NewKeyword(res), nil
		}
	case a.Kind == KindColor && (b.Kind == KindColor || b.Kind == KindDimension):
		return colorOperation(op, a, b)
	case op == "=" || op == "==":
		return NewKeyword(boolText(Text(a) == Text(b))), nil
	}
	return nil, common.NewError(common.ErrorKindFeatureConversionError,
		"Unsupported feature when converting Operation (%s %s %s)", a.Kind, op, b.Kind)
}

func dimensionUnit(d *Node) string {
	num, _ := UnitParts(d)
	if len(num) == 0 {
		return ""
	}
	return num[0]
}

func compare(op string, x, y float64) (string, bool) {
	switch op {
	case ">":
		return boolText(x > y), true
	case "<":
		return boolText(x < y), true
	case ">=":
		return boolText(x >= y), true
	case "<=", "=<":
		return boolText(x <= y), true
	case "=", "==":
		return boolText(x == y), true
	case "!=":
		return boolText(x != y), true
	}
	return "", false
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func colorOperation(op string, a, b *Node) (*Node, error) {
	ar, ag, ab := ColorChannels(a)
	left := [3]float64{float64(ar), float64(ag), float64(ab)}
	var right [3]float64
	if b.Kind == KindColor {
		br, bg, bb := ColorChannels(b)
		right = [3]float64{float64(br), float64(bg), float64(bb)}
	} else {
		v, _ := b.Num("value")
		right = [3]float64{v, v, v}
	}
	var res [3]any
	for i := range left {
		var v float64
		switch op {
		case "+":
			v = left[i] + right[i]
		case "-":
			v = left[i] - right[i]
		case "*":
			v = left[i] * right[i]
		case "/":
			if right[i] == 0 {
				return nil, common.NewError(common.ErrorKindUnknownError, "division by zero")
			}
			v = left[i] / right[i]
		default:
			return nil, common.NewError(common.ErrorKindFeatureConversionError,
				"Unsupported feature when converting Operation (Color %s)", op)
		}
		res[i] = math.Max(0, math.Min(255, v))
	}
	c := NewNode(KindColor)
	c.Set("rgb", []any{res[0], res[1], res[2]})
	if alpha, ok := a.Num("alpha"); ok {
		c.Set("alpha", alpha)
	} else {
		c.Set("alpha", 1.0)
	}
	return c, nil
}
