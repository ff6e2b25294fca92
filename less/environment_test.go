package less

import (
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"
)

// body builds ruleset from rules and returns its body nodes.
func body(t *testing.T, rules ...any) []*Node {
	t.Helper()
	return mustBuild(t, jRuleset([]any{jSelector(".x")}, rules...)).Nodes("rules")
}

func TestEnvironment_Classify(t *testing.T) {
	nodes := body(t,
		jDef("a", jDim(1, "px")),
		jDef("b", jVar("@a")),
		jProp("color", jKeyword("red")),
		jRuleset([]any{jSelector(".y")}),
		obj{"class": "MixinCall", "selector": jSelector(".m"), "arguments": []any{}},
		obj{"class": "Comment", "value": "// hi", "isLineComment": true},
	)
	env := NewEnvironment(nil, zaptest.NewLogger(t))
	env.ClassifyAll(nodes)

	if _, ok := env.static.Get("@a"); !ok {
		t.Error("@a should be static")
	}
	if _, ok := env.dynamic.Get("@b"); !ok {
		t.Error("@b should be dynamic")
	}
	if len(env.other) != 2 || len(env.rulesets) != 1 || len(env.mixinCalls) != 1 {
		t.Errorf("buckets: other=%d rulesets=%d mixinCalls=%d", len(env.other), len(env.rulesets), len(env.mixinCalls))
	}
}

func TestEnvironment_Redefinition(t *testing.T) {
	nodes := body(t,
		jDef("a", jVar("@b")),
		jDef("b", jDim(1, "px")),
		jDef("a", jDim(2, "px")),
	)
	env := NewEnvironment(nil, zaptest.NewLogger(t))
	env.ClassifyAll(nodes)

	if _, ok := env.dynamic.Get("@a"); ok {
		t.Error("@a must move out of dynamic bucket after static redefinition")
	}
	def, _ := env.static.Get("@a")
	if def != nodes[2] {
		t.Error("last definition of @a should win")
	}
	if got := names(env.OrderedChildren()); !slices.Equal(got, []string{"@b", "@a"}) {
		t.Errorf("OrderedChildren() = %v", got)
	}
}

func TestEnvironment_OrderingInvariant(t *testing.T) {
	nodes := body(t,
		jRuleset([]any{jSelector(".nested")}),
		jDef("d", jOp("+", jVar("@c"), jVar("@b"))),
		jProp("width", jVar("@d")),
		jDef("c", jOp("*", jVar("@b"), jDim(2, ""))),
		obj{"class": "MixinCall", "selector": jSelector(".m"), "arguments": []any{}},
		jDef("b", jVar("@a")),
		jDef("a", jDim(1, "px")),
	)
	env := NewEnvironment(nil, zaptest.NewLogger(t))
	env.ClassifyAll(nodes)
	got := env.OrderedChildren()

	want := []string{"@a", "@b", "@c", "@d", "width", ".nested", "MixinCall"}
	if !slices.Equal(names(got), want) {
		t.Fatalf("OrderedChildren() = %v, want %v", names(got), want)
	}

	// every dereference comes after the definition
	pos := make(map[string]int)
	for i, n := range got {
		if n.IsVariableDefinition() {
			pos[n.Name()] = i
		}
	}
	for i, n := range got {
		for _, ref := range CollectReferencedVariableNames(n.Node("value")) {
			if p, ok := pos[ref]; !ok || p >= i {
				t.Errorf("%s at %d refers to %s defined at %d", names([]*Node{n})[0], i, ref, p)
			}
		}
	}
}

func TestEnvironment_IdempotentClassification(t *testing.T) {
	nodes := body(t,
		jDef("b", jVar("@a")),
		jDef("a", jDim(1, "px")),
		jProp("width", jVar("@b")),
	)
	env := NewEnvironment(nil, zaptest.NewLogger(t))
	env.ClassifyAll(nodes)
	first := names(env.OrderedChildren())

	for _, n := range nodes {
		if n.IsVariableDefinition() {
			env.Classify(n)
		}
	}
	env.Build()
	if second := names(env.OrderedChildren()); !slices.Equal(first, second) {
		t.Errorf("reclassification changed order: %v != %v", first, second)
	}
}

func TestEnvironment_CycleTerminates(t *testing.T) {
	nodes := body(t,
		jDef("a", jVar("@b")),
		jDef("b", jVar("@a")),
	)
	env := NewEnvironment(nil, zaptest.NewLogger(t))
	env.ClassifyAll(nodes)
	got := names(env.OrderedChildren())
	slices.Sort(got)
	if !slices.Equal(got, []string{"@a", "@b"}) {
		t.Errorf("OrderedChildren() = %v, want both definitions", got)
	}
}

func TestEnvironment_ShadowingCorrectness(t *testing.T) {
	log := zaptest.NewLogger(t)
	outer := NewEnvironment(nil, log)
	outer.ClassifyAll(body(t,
		jDef("A", jOp("+", jVar("@B"), jDim(1, "px"))),
		jDef("B", jDim(2, "px")),
	))
	outer.Build()

	innerBody := body(t,
		jDef("B", jDim(5, "px")),
		jProp("width", jVar("@A")),
	)
	inner := NewEnvironment(outer, log)
	inner.ClassifyAll(innerBody)
	got := inner.OrderedChildren()

	if want := []string{"@B", "@A", "width"}; !slices.Equal(names(got), want) {
		t.Fatalf("OrderedChildren() = %v, want %v", names(got), want)
	}
	outerA := outer.Lookup("@A")
	if got[1] == outerA {
		t.Error("imported definition must be a copy")
	}
	if got[1].Parent() != nil {
		t.Error("imported copy should be detached until placed into the body")
	}

	v, err := Evaluate(got[2].Node("value"), inner)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if Text(v) != "6px" {
		t.Errorf("width resolves to %s, want 6px", Text(v))
	}
}

func TestEnvironment_TransitiveImport(t *testing.T) {
	log := zaptest.NewLogger(t)
	outer := NewEnvironment(nil, log)
	outer.ClassifyAll(body(t,
		jDef("x", jVar("@y")),
		jDef("y", jVar("@z")),
		jDef("z", jDim(1, "px")),
		jDef("unrelated", jVar("@z")),
	))

	inner := NewEnvironment(outer, log)
	inner.ClassifyAll(body(t,
		jDef("z", jDim(2, "px")),
		jProp("width", jVar("@x")),
	))
	if want, got := []string{"@z", "@y", "@x", "width"}, names(inner.OrderedChildren()); !slices.Equal(got, want) {
		t.Errorf("OrderedChildren() = %v, want %v", got, want)
	}
}

// Only overrides made in the scope being built pull definitions in. An
// override in an intermediate scope leaves the outer definition in use.
func TestEnvironment_IntermediateOverrideNotImported(t *testing.T) {
	log := zaptest.NewLogger(t)
	outer := NewEnvironment(nil, log)
	outer.ClassifyAll(body(t,
		jDef("a", jOp("+", jVar("@b"), jDim(1, "px"))),
		jDef("b", jDim(2, "px")),
	))
	middle := NewEnvironment(outer, log)
	middle.ClassifyAll(body(t, jDef("b", jDim(5, "px"))))

	inner := NewEnvironment(middle, log)
	inner.ClassifyAll(body(t, jProp("width", jVar("@a"))))
	if got := names(inner.OrderedChildren()); !slices.Equal(got, []string{"width"}) {
		t.Errorf("OrderedChildren() = %v, want only width", got)
	}
}

func TestEnvironment_NoImportWithoutOverride(t *testing.T) {
	log := zaptest.NewLogger(t)
	outer := NewEnvironment(nil, log)
	outer.ClassifyAll(body(t,
		jDef("a", jVar("@b")),
		jDef("b", jDim(1, "px")),
	))
	inner := NewEnvironment(outer, log)
	inner.ClassifyAll(body(t, jProp("width", jVar("@a"))))
	if got := names(inner.OrderedChildren()); !slices.Equal(got, []string{"width"}) {
		t.Errorf("OrderedChildren() = %v, want only width", got)
	}
}

func TestEnvironment_FindDynamicDefinition(t *testing.T) {
	log := zaptest.NewLogger(t)
	outer := NewEnvironment(nil, log)
	outer.ClassifyAll(body(t, jDef("a", jVar("@b")), jDef("b", jDim(1, ""))))
	middle := NewEnvironment(outer, log)
	middle.ClassifyAll(body(t, jDef("a", jDim(3, ""))))
	inner := NewEnvironment(middle, log)

	if inner.FindDynamicDefinition("@a") != nil {
		t.Error("static definition in middle scope should hide outer dynamic one")
	}
	if inner.FindDynamicDefinition("@missing") != nil {
		t.Error("unknown variable should not be found")
	}
	if def := NewEnvironment(outer, log).FindDynamicDefinition("@a"); def == nil || def.Name() != "@a" {
		t.Error("outer dynamic definition should be found")
	}
	if inner.VariableIsDefined("@a") {
		t.Error("VariableIsDefined() should check own scope only")
	}
}

func TestEnvironment_Parameters(t *testing.T) {
	log := zaptest.NewLogger(t)
	outer := NewEnvironment(nil, log)
	outer.ClassifyAll(body(t, jDef("size", jOp("*", jVar("@w"), jDim(2, ""))), jDef("w", jDim(1, "px"))))

	def := mustBuild(t, jRoot(obj{
		"class":  "MixinDefinition",
		"name":   ".m",
		"params": []any{obj{"name": "@w"}},
		"rules":  []any{jProp("width", jVar("@size"))},
	})).Nodes("rules")[0]

	env := NewEnvironment(outer, log)
	for _, p := range def.Nodes("params") {
		env.DeclareParameter(p)
	}
	env.ClassifyAll(def.Nodes("rules"))

	if !env.VariableIsDefined("@w") {
		t.Fatal("parameter should count as local definition")
	}
	// parameter overrides @w so @size is re-anchored, parameter itself is not emitted
	if got := names(env.OrderedChildren()); !slices.Equal(got, []string{"@size", "width"}) {
		t.Errorf("OrderedChildren() = %v", got)
	}
}

func TestEnvironment_SelectorReferences(t *testing.T) {
	log := zaptest.NewLogger(t)
	outer := NewEnvironment(nil, log)
	outer.ClassifyAll(body(t, jDef("cls", jQuoted("@{prefix}-box", false)), jDef("prefix", jKeyword("a"))))

	inner := NewEnvironment(outer, log)
	inner.ClassifyAll(body(t,
		jDef("prefix", jKeyword("b")),
		jRuleset([]any{jSelector(".@{cls}")}),
	))
	if got := names(inner.OrderedChildren()); !slices.Equal(got, []string{"@prefix", "@cls", ".@{cls}"}) {
		t.Errorf("OrderedChildren() = %v", got)
	}
}
