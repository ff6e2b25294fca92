package less

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"l2s/utils/debug"
)

// String returns readable dump of the subtree. It exists solely for
// inspection during debugging and for the debug report.
func (n *Node) String() string {
	if n == nil {
		return "<nil Node>"
	}
	tw := debug.NewTreeWriter()
	n.dump(tw, 0)
	return tw.String()
}

func (n *Node) dump(tw *debug.TreeWriter, depth int) {
	var scalars []string
	for _, a := range n.attrs {
		switch v := a.value.(type) {
		case *Node, []*Node:
			// shown as children
		case string:
			scalars = append(scalars, fmt.Sprintf("%s=%q", a.name, v))
		case map[string]any:
			keys := slices.Collect(maps.Keys(v))
			sort.Sort(natural.StringSlice(keys))
			scalars = append(scalars, fmt.Sprintf("%s={%s}", a.name, strings.Join(keys, ",")))
		default:
			scalars = append(scalars, fmt.Sprintf("%s=%v", a.name, v))
		}
	}
	if len(scalars) > 0 {
		tw.Line(depth, "%s %s", n.Kind, strings.Join(scalars, " "))
	} else {
		tw.Line(depth, "%s", n.Kind)
	}
	for _, c := range n.Children {
		label := n.attrOf(c)
		if label != "" {
			tw.Line(depth+1, "[%s]", label)
		}
		c.dump(tw, depth+2)
	}
}

// attrOf names attribute which refers to child.
func (n *Node) attrOf(child *Node) string {
	for _, a := range n.attrs {
		switch v := a.value.(type) {
		case *Node:
			if v == child {
				return a.name
			}
		case []*Node:
			if slices.Contains(v, child) {
				return a.name
			}
		}
	}
	return ""
}

// String summarizes environment buckets.
func (e *Environment) String() string {
	tw := debug.NewTreeWriter()
	names := func(nodes []*Node) string {
		out := make([]string, 0, len(nodes))
		for _, n := range nodes {
			if n.IsVariableDefinition() {
				out = append(out, n.Name())
			} else {
				out = append(out, n.Kind.String())
			}
		}
		return strings.Join(out, ", ")
	}
	static := slices.Collect(e.static.Keys())
	sort.Sort(natural.StringSlice(static))
	params := slices.Collect(maps.Keys(e.params))
	sort.Sort(natural.StringSlice(params))

	tw.Line(0, "Environment (built=%t)", e.built)
	tw.Line(1, "Parameters: %s", strings.Join(params, ", "))
	tw.Line(1, "Static: %s", strings.Join(static, ", "))
	tw.Line(1, "Dynamic: %s", names(e.ordered))
	tw.Line(1, "Other: %s", names(e.other))
	tw.Line(1, "Rulesets: %d", len(e.rulesets))
	tw.Line(1, "Mixin calls: %d", len(e.mixinCalls))
	return tw.String()
}
