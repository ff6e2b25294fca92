package sass

import (
	"io"
	"strings"

	"l2s/common"
)

// Render writes tree in the requested syntax, indent is number of spaces per
// nesting level.
func Render(w io.Writer, root *Root, syntax common.TargetSyntax, indent int) error {
	_, err := io.WriteString(w, RenderString(root, syntax, indent))
	return err
}

// RenderString is Render into string.
func RenderString(root *Root, syntax common.TargetSyntax, indent int) string {
	r := &renderer{
		indented: syntax == common.TargetSyntaxSass,
		unit:     strings.Repeat(" ", max(indent, 1)),
	}
	r.children(root.Children, 0)
	return r.b.String()
}

type renderer struct {
	b        strings.Builder
	indented bool
	unit     string
}

func (r *renderer) line(depth int, s string) {
	for range depth {
		r.b.WriteString(r.unit)
	}
	r.b.WriteString(s)
	r.b.WriteByte('\n')
}

// statement writes single line statement.
func (r *renderer) statement(depth int, s string) {
	if !r.indented {
		s += ";"
	}
	r.line(depth, s)
}

func (r *renderer) block(depth int, header string, b *Block) {
	switch {
	case r.indented:
		r.line(depth, header)
		r.children(b.Children, depth+1)
	case len(b.Children) == 0:
		r.line(depth, header+" {}")
	default:
		r.line(depth, header+" {")
		r.children(b.Children, depth+1)
		r.line(depth, "}")
	}
}

func hasBlock(n Node) bool {
	if d, ok := n.(*Directive); ok {
		return d.HasBlock
	}
	_, ok := n.(container)
	return ok
}

// children separates blocks from their siblings with empty line.
func (r *renderer) children(nodes []Node, depth int) {
	for i, n := range nodes {
		if i > 0 && (hasBlock(n) || hasBlock(nodes[i-1])) {
			r.b.WriteByte('\n')
		}
		r.node(n, depth)
	}
}

func (r *renderer) node(n Node, depth int) {
	switch v := n.(type) {
	case *Root:
		r.children(v.Children, depth)
	case *Rule:
		r.block(depth, Concat(v.Selector), &v.Block)
	case *Prop:
		s := Concat(v.Name) + ": " + v.Value.Text()
		if v.Important {
			s += " !important"
		}
		r.statement(depth, s)
	case *Variable:
		s := "$" + v.Name + ": " + v.Value.Text()
		if v.Guarded {
			s += " !default"
		}
		if v.Global {
			s += " !global"
		}
		r.statement(depth, s)
	case *Comment:
		r.comment(depth, v)
	case *Media:
		r.block(depth, "@media "+Concat(v.Query), &v.Block)
	case *Supports:
		r.block(depth, "@supports "+v.Condition.Text(), &v.Block)
	case *Directive:
		s := "@" + v.Name
		if len(v.Value) > 0 {
			s += " " + Concat(v.Value)
		}
		if v.HasBlock {
			r.block(depth, s, &v.Block)
		} else {
			r.statement(depth, s)
		}
	case *Import:
		s := "@import " + v.Path.Text()
		if len(v.Media) > 0 {
			s += " " + Concat(v.Media)
		}
		r.statement(depth, s)
	case *Extend:
		s := "@extend " + Concat(v.Selector)
		if v.Optional {
			s += " !optional"
		}
		r.statement(depth, s)
	case *MixinDef:
		r.block(depth, "@mixin "+v.Name+params(v.Params, v.Rest), &v.Block)
	case *Include:
		r.statement(depth, "@include "+v.Name+args(v.Args))
	case *If:
		r.block(depth, "@if "+v.Condition.Text(), &v.Block)
	}
}

func (r *renderer) comment(depth int, c *Comment) {
	lines := strings.Split(strings.TrimRight(c.Text, " \t\r\n"), "\n")
	r.line(depth, strings.TrimRight(lines[0], " \t\r"))
	for _, l := range lines[1:] {
		l = strings.TrimRight(l, " \t\r")
		if r.indented {
			// continuation lines must be nested deeper than the opening one
			r.line(depth+1, strings.TrimSpace(l))
			continue
		}
		r.b.WriteString(l)
		r.b.WriteByte('\n')
	}
}

func params(ps []Param, rest string) string {
	if len(ps) == 0 && rest == "" {
		return ""
	}
	parts := make([]string, 0, len(ps)+1)
	for _, p := range ps {
		s := "$" + p.Name
		if p.Default != nil {
			s += ": " + argValue(p.Default)
		}
		parts = append(parts, s)
	}
	if rest != "" {
		parts = append(parts, "$"+rest+"...")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func args(as []Arg) string {
	if len(as) == 0 {
		return ""
	}
	parts := make([]string, 0, len(as))
	for _, a := range as {
		s := argValue(a.Value)
		if a.Name != "" {
			s = "$" + a.Name + ": " + s
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// argValue protects comma lists inside argument lists.
func argValue(e Expr) string {
	if l, ok := e.(*List); ok && l.Separator == SeparatorComma && len(l.Items) > 1 {
		return "(" + l.Text() + ")"
	}
	return e.Text()
}
