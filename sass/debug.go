package sass

import (
	"fmt"
	"strings"

	"l2s/utils/debug"
)

// Dump returns indented structure of the tree for debugging.
func Dump(root *Root) string {
	tw := debug.NewTreeWriter()
	dump(tw, root, 0)
	return tw.String()
}

func dump(tw *debug.TreeWriter, n Node, depth int) {
	switch v := n.(type) {
	case *Root:
		tw.Line(depth, "Root")
	case *Rule:
		tw.Line(depth, "Rule @%d", v.Line)
		tw.TextBlock(depth+1, "selector", Concat(v.Selector))
	case *Prop:
		tw.Line(depth, "Prop @%d important=%t", v.Line, v.Important)
		tw.TextBlock(depth+1, "name", Concat(v.Name))
		dumpExpr(tw, depth+1, "value", v.Value)
	case *Variable:
		tw.Line(depth, "Variable @%d $%s guarded=%t global=%t", v.Line, v.Name, v.Guarded, v.Global)
		dumpExpr(tw, depth+1, "value", v.Value)
	case *Comment:
		tw.Line(depth, "Comment @%d %s", v.Line, v.Type)
		tw.TextBlock(depth+1, "text", v.Text)
	case *Media:
		tw.Line(depth, "Media @%d", v.Line)
		tw.TextBlock(depth+1, "query", Concat(v.Query))
	case *Supports:
		tw.Line(depth, "Supports @%d", v.Line)
		tw.TextBlock(depth+1, "condition", v.Condition.Text())
	case *Directive:
		tw.Line(depth, "Directive @%d @%s block=%t", v.Line, v.Name, v.HasBlock)
		if len(v.Value) > 0 {
			tw.TextBlock(depth+1, "value", Concat(v.Value))
		}
	case *Import:
		tw.Line(depth, "Import @%d", v.Line)
		dumpExpr(tw, depth+1, "path", v.Path)
	case *Extend:
		tw.Line(depth, "Extend @%d optional=%t", v.Line, v.Optional)
		tw.TextBlock(depth+1, "selector", Concat(v.Selector))
	case *MixinDef:
		tw.Line(depth, "MixinDef @%d %s%s", v.Line, v.Name, params(v.Params, v.Rest))
	case *Include:
		tw.Line(depth, "Include @%d %s%s", v.Line, v.Name, args(v.Args))
	case *If:
		tw.Line(depth, "If @%d", v.Line)
		dumpExpr(tw, depth+1, "condition", v.Condition)
	default:
		tw.Line(depth, "%T", n)
	}
	if c, ok := n.(container); ok {
		for _, child := range c.body().Children {
			dump(tw, child, depth+1)
		}
	}
}

func dumpExpr(tw *debug.TreeWriter, depth int, label string, e Expr) {
	if e == nil {
		tw.Line(depth, "%s: <nil>", label)
		return
	}
	tw.Line(depth, "%s: %s %s", label, exprType(e), e.Text())
}

func exprType(e Expr) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", e), "*sass.")
}
