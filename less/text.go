package less

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text renders node the way it would appear in CSS source. It is used where
// target needs plain text: media queries, directive payloads and literal
// property values.
func Text(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindDimension:
		v, _ := n.Num("value")
		return FormatNumber(v) + Text(n.Node("unit"))
	case KindUnit:
		return unitText(n)
	case KindColor:
		return colorText(n)
	case KindKeyword, KindAnonymous, KindUnicodeDescriptor, KindComment:
		return textOf(attrValue(n, "value"))
	case KindQuoted:
		if n.Bool("escaped") {
			return n.Str("value")
		}
		q := n.Str("quote")
		return q + n.Str("value") + q
	case KindVariable:
		return n.Name()
	case KindValue:
		return joinText(n.Nodes("value"), ", ")
	case KindExpression:
		sep := " "
		if n.Bool("noSpacing") {
			sep = ""
		}
		s := joinText(n.Nodes("value"), sep)
		if n.Bool("parens") && !n.Bool("parensInOp") {
			s = "(" + s + ")"
		}
		return s
	case KindOperation:
		ops := n.Nodes("operands")
		if len(ops) != 2 {
			return ""
		}
		if n.Bool("isSpaced") {
			return Text(ops[0]) + " " + n.Str("op") + " " + Text(ops[1])
		}
		return Text(ops[0]) + n.Str("op") + Text(ops[1])
	case KindCall:
		return n.Name() + "(" + joinText(n.Nodes("args"), ", ") + ")"
	case KindUrl:
		return "url(" + Text(n.Node("value")) + ")"
	case KindParen:
		return "(" + Text(n.Node("value")) + ")"
	case KindRule:
		return PropertyName(n) + ": " + textOf(attrValue(n, "value"))
	case KindElement:
		return Text(n.Node("combinator")) + textOf(attrValue(n, "value"))
	case KindCombinator:
		switch c := n.Str("value"); c {
		case "", " ":
			return c
		default:
			return " " + c + " "
		}
	case KindSelector:
		var b strings.Builder
		for i, e := range n.Nodes("elements") {
			s := Text(e)
			if i == 0 {
				s = strings.TrimLeft(s, " ")
			}
			b.WriteString(s)
		}
		return b.String()
	case KindAttribute:
		return "[" + textOf(attrValue(n, "key")) + n.Str("op") + textOf(attrValue(n, "value")) + "]"
	case KindAssignment:
		return n.Str("key") + "=" + textOf(attrValue(n, "value"))
	case KindAlpha:
		return "alpha(opacity=" + textOf(attrValue(n, "value")) + ")"
	case KindNegative:
		return "-" + Text(n.Node("value"))
	case KindCondition:
		s := Text(n.Node("lvalue")) + " " + n.Str("op") + " " + Text(n.Node("rvalue"))
		if n.Bool("negate") {
			s = "not (" + s + ")"
		}
		return s
	}
	return ""
}

// PropertyName returns rule name as text, interpolated parts keep "@{}"
// form.
func PropertyName(n *Node) string {
	v, _ := n.Attr("name")
	switch name := v.(type) {
	case string:
		return name
	case *Node:
		return nameText(name)
	case []*Node:
		var b strings.Builder
		for _, p := range name {
			b.WriteString(nameText(p))
		}
		return b.String()
	}
	return ""
}

func nameText(n *Node) string {
	if n.Kind == KindVariable {
		return "@{" + strings.TrimPrefix(n.Name(), "@") + "}"
	}
	return Text(n)
}

func attrValue(n *Node, name string) any {
	v, _ := n.Attr(name)
	return v
}

func textOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return FormatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	case *Node:
		return Text(val)
	case []*Node:
		return joinText(val, " ")
	}
	return fmt.Sprint(v)
}

func joinText(nodes []*Node, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, Text(n))
	}
	return strings.Join(parts, sep)
}

func unitText(n *Node) string {
	num := stringList(attrValue(n, "numerator"))
	den := stringList(attrValue(n, "denominator"))
	s := strings.Join(num, "*")
	for _, d := range den {
		s += "/" + d
	}
	return s
}

// UnitParts returns numerator and denominator of the dimension unit.
func UnitParts(dimension *Node) (num, den []string) {
	u := dimension.Node("unit")
	if u == nil {
		return nil, nil
	}
	return stringList(attrValue(u, "numerator")), stringList(attrValue(u, "denominator"))
}

func stringList(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func colorText(n *Node) string {
	if s := n.Str("value"); s != "" {
		return s
	}
	r, g, b := ColorChannels(n)
	a, ok := n.Num("alpha")
	if !ok {
		a = 1
	}
	if a < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatNumber(a))
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ColorChannels returns clamped rgb channels of the color node.
func ColorChannels(n *Node) (r, g, b int) {
	rgb, _ := attrValue(n, "rgb").([]any)
	ch := [3]int{}
	for i := 0; i < len(rgb) && i < 3; i++ {
		if f, ok := rgb[i].(float64); ok {
			ch[i] = int(math.Round(math.Max(0, math.Min(255, f))))
		}
	}
	return ch[0], ch[1], ch[2]
}

// FormatNumber prints number with at most 8 decimal digits and no trailing
// zeroes.
func FormatNumber(v float64) string {
	v = math.Round(v*1e8) / 1e8
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
