package less

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// Helpers below produce objects shaped like parser JSON output.

type obj = map[string]any

func jRuleset(selectors []any, rules ...any) obj {
	o := obj{"class": "Ruleset", "rules": rules}
	if selectors != nil {
		o["selectors"] = selectors
	}
	return o
}

func jRoot(rules ...any) obj {
	o := jRuleset(nil, rules...)
	o["root"] = true
	o["firstRoot"] = true
	return o
}

func jSelector(elements ...string) obj {
	els := make([]any, 0, len(elements))
	for i, e := range elements {
		comb := ""
		if i > 0 {
			comb = " "
		}
		els = append(els, obj{
			"class":      "Element",
			"combinator": obj{"class": "Combinator", "value": comb},
			"value":      e,
		})
	}
	return obj{"class": "Selector", "elements": els}
}

func jVar(name string) obj {
	return obj{"class": "Variable", "name": name}
}

func jDim(v float64, unit string) obj {
	num := []any{}
	if unit != "" {
		num = append(num, unit)
	}
	return obj{"class": "Dimension", "value": v, "unit": obj{"class": "Unit", "numerator": num, "denominator": []any{}}}
}

func jKeyword(s string) obj {
	return obj{"class": "Keyword", "value": s}
}

func jExpr(items ...any) obj {
	return obj{"class": "Expression", "value": items}
}

func jValue(items ...any) obj {
	return obj{"class": "Value", "value": items}
}

func jOp(op string, a, b any) obj {
	return obj{"class": "Operation", "op": op, "operands": []any{a, b}, "isSpaced": true}
}

func jDef(name string, value any) obj {
	return obj{"class": "Rule", "name": "@" + name, "value": jValue(jExpr(value)), "variable": true}
}

func jProp(name string, value any) obj {
	return obj{"class": "Rule", "name": name, "value": jValue(jExpr(value)), "important": "", "merge": false, "variable": false}
}

func jQuoted(s string, escaped bool) obj {
	return obj{"class": "Quoted", "value": s, "quote": `"`, "escaped": escaped}
}

func jMedia(features any, rules ...any) obj {
	wrapper := jRuleset([]any{obj{"class": "Selector", "elements": []any{}, "mediaEmpty": true}}, rules...)
	return obj{"class": "Media", "features": features, "rules": []any{wrapper}}
}

func mustBuild(t *testing.T, graph obj) *Node {
	t.Helper()
	n, err := NewBuilder(zaptest.NewLogger(t)).BuildGraph(graph)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	return n
}

// names lists variable names or kinds of nodes for compact comparisons.
func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch {
		case n.IsVariableDefinition():
			out = append(out, n.Name())
		case n.Kind == KindRule:
			out = append(out, PropertyName(n))
		case n.Kind == KindRuleset:
			sels := n.Nodes("selectors")
			if len(sels) > 0 {
				out = append(out, Text(sels[0]))
			} else {
				out = append(out, n.Kind.String())
			}
		default:
			out = append(out, n.Kind.String())
		}
	}
	return out
}
