package less

import (
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   obj
		want string
	}{
		{"dimension", jDim(1.5, "em"), "1.5em"},
		{"compound unit", obj{"class": "Dimension", "value": 2.0, "unit": obj{"class": "Unit", "numerator": []any{"px", "px"}, "denominator": []any{"s"}}}, "2px*px/s"},
		{"color original", obj{"class": "Color", "rgb": []any{255.0, 255.0, 255.0}, "alpha": 1.0, "value": "#fff"}, "#fff"},
		{"color alpha", obj{"class": "Color", "rgb": []any{0.0, 0.0, 0.0}, "alpha": 0.5}, "rgba(0, 0, 0, 0.5)"},
		{"quoted", jQuoted("a b", false), `"a b"`},
		{"escaped", jQuoted("calc(1px + 2%)", true), "calc(1px + 2%)"},
		{"list", jValue(jExpr(jDim(1, "px"), jKeyword("solid")), jKeyword("red")), "1px solid, red"},
		{"no spacing", obj{"class": "Expression", "value": []any{jDim(1, ""), jKeyword("/"), jDim(2, "")}, "noSpacing": true}, "1/2"},
		{"unspaced operation", obj{"class": "Operation", "op": "*", "operands": []any{jVar("@a"), jDim(2, "")}, "isSpaced": false}, "@a*2"},
		{"url", obj{"class": "Url", "value": jQuoted("a.png", false)}, `url("a.png")`},
		{"selector", jSelector(".a", ".b"), ".a .b"},
		{"child combinator", obj{"class": "Selector", "elements": []any{
			obj{"class": "Element", "combinator": obj{"class": "Combinator", "value": ""}, "value": "ul"},
			obj{"class": "Element", "combinator": obj{"class": "Combinator", "value": ">"}, "value": "li"},
		}}, "ul > li"},
		{"attribute", obj{"class": "Attribute", "key": "type", "op": "=", "value": jQuoted("text", false)}, `[type="text"]`},
		{"negated condition", obj{"class": "Condition", "op": ">", "lvalue": jVar("@a"), "rvalue": jDim(0, ""), "negate": true}, "not (@a > 0)"},
		{"interpolated name", obj{"class": "Rule", "name": []any{jKeyword("border-"), jVar("@side")}, "value": jDim(1, "px")}, "border-@{side}: 1px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(mustBuild(t, tt.in)); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0000000001, "0"},
		{1, "1"},
		{0.1 + 0.2, "0.3"},
		{-2.5, "-2.5"},
		{1.0 / 3, "0.33333333"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
