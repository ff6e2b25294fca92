package less

import (
	"errors"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"l2s/common"
)

func TestBuild_DualReference(t *testing.T) {
	root := mustBuild(t, jRoot(
		jDef("a", jDim(10, "px")),
		jRuleset([]any{jSelector(".box", ".inner")},
			jProp("width", jOp("+", jVar("@a"), jDim(2, "px"))),
			jProp("color", jKeyword("red")),
		),
	))

	root.Walk(func(n *Node) bool {
		for _, name := range n.AttrNames() {
			for _, c := range n.Nodes(name) {
				count := 0
				for _, cc := range n.Children {
					if cc == c {
						count++
					}
				}
				if count != 1 {
					t.Errorf("%s.%s child appears %d times in Children, want 1", n.Kind, name, count)
				}
				if c.Parent() != n {
					t.Errorf("%s.%s child has wrong parent", n.Kind, name)
				}
			}
		}
		for _, c := range n.Children {
			if n.attrOf(c) == "" {
				t.Errorf("%s child %s is not referenced by any attribute", n.Kind, c.Kind)
			}
		}
		return true
	})
}

func TestBuild_SingleElementSequence(t *testing.T) {
	root := mustBuild(t, jRoot(jDef("a", jDim(1, ""))))

	v, ok := root.Attr("rules")
	if !ok {
		t.Fatal("rules attribute missing")
	}
	if _, single := v.(*Node); !single {
		t.Errorf("one element sequence stored as %T, want *Node", v)
	}
	if got := len(root.Nodes("rules")); got != 1 {
		t.Errorf("Nodes(rules) length = %d, want 1", got)
	}

	root = mustBuild(t, jRoot(jDef("a", jDim(1, "")), jDef("b", jDim(2, ""))))
	v, _ = root.Attr("rules")
	if list, ok := v.([]*Node); !ok || len(list) != 2 {
		t.Errorf("two element sequence stored as %T, want []*Node of 2", v)
	}
}

func TestBuild_ScalarsKeptAsIs(t *testing.T) {
	root := mustBuild(t, jRoot(jDef("a", jDim(1, "em"))))
	dim := root.Nodes("rules")[0].Node("value").Node("value").Node("value")
	if dim == nil || dim.Kind != KindDimension {
		t.Fatalf("dimension not found, got %v", dim)
	}
	num, den := UnitParts(dim)
	if !slices.Equal(num, []string{"em"}) || len(den) != 0 {
		t.Errorf("UnitParts() = %v, %v", num, den)
	}
	if !root.Bool("root") {
		t.Error("root flag lost")
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := NewBuilder(zaptest.NewLogger(t)).BuildGraph(jRoot(obj{"class": "Frobnicator"}))
	if err == nil {
		t.Fatal("BuildGraph() expected error")
	}
	if common.KindOf(err) != common.ErrorKindUnknownNodeKindError {
		t.Errorf("KindOf() = %v, want UnknownNodeKindError", common.KindOf(err))
	}
	var e *common.Error
	if !errors.As(err, &e) || e.Msg != "Unexpected class type Frobnicator during Less' AST JSON parsing" {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestBuild_Aliases(t *testing.T) {
	root := mustBuild(t, jRoot(
		obj{"class": "Declaration", "name": "color", "value": jKeyword("red"), "variable": false},
		obj{"class": "AtRule", "name": "@charset", "value": jQuoted("utf-8", false)},
	))
	if got := names(root.Nodes("rules")); !slices.Equal(got, []string{"color", "Directive"}) {
		t.Errorf("rules = %v", got)
	}
}

func TestBuild_RejectsUnknownFields(t *testing.T) {
	rule := jProp("color", jKeyword("red"))
	rule["somethingNew"] = "x"
	rule["currentFileInfo"] = obj{"filename": "a.less"}
	b := NewBuilder(zaptest.NewLogger(t))
	root, err := b.BuildGraph(jRoot(rule))
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	n := root.Nodes("rules")[0]
	for _, name := range []string{"somethingNew", "currentFileInfo", "class"} {
		if _, ok := n.Attr(name); ok {
			t.Errorf("attribute %q should not be stored", name)
		}
	}
	if b.rejected["Rule.somethingNew"] != 1 {
		t.Errorf("rejected = %v, want Rule.somethingNew", b.rejected)
	}
	if _, ok := b.rejected["Rule.currentFileInfo"]; ok {
		t.Error("bookkeeping fields should be ignored silently")
	}
}

func TestBuild_MixinRecords(t *testing.T) {
	root := mustBuild(t, jRoot(obj{
		"class":    "MixinDefinition",
		"name":     ".m",
		"params":   []any{obj{"name": "@w", "value": jDim(1, "px")}},
		"rules":    []any{jProp("width", jVar("@w"))},
		"variadic": false,
		"frames":   []any{},
	}))
	def := root.Nodes("rules")[0]
	v, _ := def.Attr("params")
	params, ok := v.([]*Node)
	if !ok || len(params) != 1 {
		t.Fatalf("params stored as %T, want []*Node of 1", v)
	}
	p := params[0]
	if p.Kind != KindParam || p.Name() != "@w" || p.Parent() != def {
		t.Errorf("param = %s %q", p.Kind, p.Name())
	}
	if d := p.Node("value"); d == nil || d.Kind != KindDimension || d.Parent() != p {
		t.Error("param default value not linked")
	}
}

func TestBuild_ParserErrors(t *testing.T) {
	tests := []struct {
		name string
		in   obj
		kind common.ErrorKind
		msg  string
	}{
		{
			name: "syntax",
			in:   obj{"class": "error", "type": "Parse", "filename": "a.less", "message": "Unrecognised input", "line": 3.0, "index": 17.0},
			kind: common.ErrorKindSyntaxError,
			msg:  "Syntax error found in a.less: Unrecognised input on line 3, index 17",
		},
		{
			name: "import",
			in:   obj{"class": "error", "type": "File", "filename": "a.less", "message": "'b.less' wasn't found", "line": 1.0, "index": 0.0, "callLine": 7.0},
			kind: common.ErrorKindImportNotFoundError,
			msg:  "The specified import file has not been found in a.less: 'b.less' wasn't found on line 1, index 0. Called from line 7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder(zaptest.NewLogger(t)).BuildGraph(tt.in)
			if common.KindOf(err) != tt.kind {
				t.Fatalf("KindOf(%v) = %v, want %v", err, common.KindOf(err), tt.kind)
			}
			if err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestBuild_Decode(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	if _, err := b.Build([]byte(`{"class":"Ruleset","root":true,"rules":[]}`)); err != nil {
		t.Errorf("Build() error = %v", err)
	}
	if _, err := b.Build([]byte(`not json`)); common.KindOf(err) != common.ErrorKindUnknownError {
		t.Errorf("Build() on garbage error = %v, want UnknownError", err)
	}
	if _, err := b.Build([]byte(`[1,2]`)); err == nil {
		t.Error("Build() on non-object expected error")
	}
}

func TestNode_ReplaceNodes(t *testing.T) {
	root := mustBuild(t, jRuleset([]any{jSelector(".a")}, jProp("color", jKeyword("red")), jProp("width", jDim(1, "px"))))
	sel := root.Node("selectors")
	rules := root.Nodes("rules")

	root.ReplaceNodes("rules", []*Node{rules[1], rules[0]})
	if root.Children[0] != sel {
		t.Error("header child moved")
	}
	if got := names(root.Children[1:]); !slices.Equal(got, []string{"width", "color"}) {
		t.Errorf("body = %v, want [width color]", got)
	}
	for _, c := range root.Children {
		if c.Parent() != root {
			t.Errorf("%s lost parent", c.Kind)
		}
	}
}

func TestNode_Clone(t *testing.T) {
	root := mustBuild(t, jRoot(jDef("a", jOp("+", jVar("@b"), jDim(1, "px")))))
	def := root.Nodes("rules")[0]
	c := def.Clone()
	if c == def || c.Parent() != nil {
		t.Fatal("Clone() should return detached copy")
	}
	if Text(c.Node("value")) != Text(def.Node("value")) {
		t.Errorf("Clone() text = %q, want %q", Text(c.Node("value")), Text(def.Node("value")))
	}
	c.Node("value").Node("value").Node("value").Set("op", "-")
	if Text(def.Node("value")) != "@b + 1px" {
		t.Errorf("original modified through clone: %q", Text(def.Node("value")))
	}
	if !slices.Equal(CollectReferencedVariableNames(c), []string{"@b"}) {
		t.Error("clone lost references")
	}
}
