package convert

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"l2s/common"
	"l2s/config"
	"l2s/less"
)

// Builders of parser shaped JSON objects.

type js = map[string]any

func jRoot(rules ...any) js {
	return js{"class": "Ruleset", "root": true, "firstRoot": true, "rules": rules}
}

func jRuleset(sel any, rules ...any) js {
	return js{"class": "Ruleset", "selectors": []any{sel}, "rules": rules}
}

func jElement(comb, value any) js {
	return js{"class": "Element", "combinator": js{"class": "Combinator", "value": comb}, "value": value}
}

func jSelector(text string) js {
	return js{"class": "Selector", "elements": []any{jElement("", text)}}
}

func jGuarded(text string, cond js) js {
	s := jSelector(text)
	s["condition"] = cond
	return s
}

func jVar(name string) js {
	return js{"class": "Variable", "name": name}
}

func jDim(v float64, unit string) js {
	num := []any{}
	if unit != "" {
		num = append(num, unit)
	}
	return js{"class": "Dimension", "value": v, "unit": js{"class": "Unit", "numerator": num, "denominator": []any{}}}
}

func jKeyword(s string) js {
	return js{"class": "Keyword", "value": s}
}

func jQuoted(s string, escaped bool) js {
	return js{"class": "Quoted", "value": s, "quote": `"`, "escaped": escaped}
}

func jExpr(items ...any) js {
	return js{"class": "Expression", "value": items}
}

func jValue(items ...any) js {
	return js{"class": "Value", "value": items}
}

func jOp(op string, a, b any) js {
	return js{"class": "Operation", "op": op, "operands": []any{a, b}, "isSpaced": true}
}

func jCond(op string, l, r any) js {
	return js{"class": "Condition", "op": op, "lvalue": l, "rvalue": r, "negate": false}
}

// jDef defines variable, items form single space separated expression.
func jDef(name string, items ...any) js {
	return js{"class": "Rule", "name": "@" + name, "value": jValue(jExpr(items...)), "variable": true}
}

func jProp(name string, items ...any) js {
	return js{"class": "Rule", "name": name, "value": jValue(jExpr(items...)), "important": "", "merge": false, "variable": false}
}

func jMixin(name string, params []any, rules ...any) js {
	return js{"class": "MixinDefinition", "name": name, "params": params, "rules": rules, "variadic": false}
}

func jInclude(name string, args ...any) js {
	return js{"class": "MixinCall", "selector": jSelector(name), "arguments": args, "important": false}
}

func jMedia(features any, rules ...any) js {
	wrapper := js{"class": "Ruleset", "selectors": []any{js{"class": "Selector", "elements": []any{}, "mediaEmpty": true}}, "rules": rules}
	return js{"class": "Media", "features": features, "rules": []any{wrapper}}
}

func testConfig() *config.Config {
	return &config.Config{
		Version: 1,
		Conversion: config.ConversionConfig{
			TargetSyntax:      common.TargetSyntaxScss,
			Indent:            2,
			LiteralProperties: []string{"font", "transition"},
		},
		Parser:   config.ParserConfig{Node: "node"},
		Compiler: config.CompilerConfig{Lessc: "lessc", Sass: "sass"},
	}
}

// transformed builds and transforms tree the way converter does.
func transformed(t *testing.T, graph js) *less.Node {
	t.Helper()
	log := zaptest.NewLogger(t)
	tree, err := less.NewBuilder(log).BuildGraph(graph)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	if err := less.NewTransformer(log).Transform(tree); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	return tree
}

func convertGraph(t *testing.T, graph js, syntax common.TargetSyntax) (string, error) {
	t.Helper()
	log := zaptest.NewLogger(t)
	tree, err := less.NewBuilder(log).BuildGraph(graph)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	return NewConverter(testConfig(), nil, nil, log).ConvertTree(tree, syntax)
}
