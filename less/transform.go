package less

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// directives which do not accept interpolation in their payload
var literalDirectives = map[string]bool{
	"@charset":   true,
	"@namespace": true,
}

// Transformer reorders bodies of scope creating nodes so every variable is
// defined before use and evaluates nodes which must become literals.
type Transformer struct {
	log *zap.Logger
}

func NewTransformer(log *zap.Logger) *Transformer {
	return &Transformer{log: log.Named("transform")}
}

// Transform walks the tree in place. Root is expected to be stylesheet
// ruleset.
func (t *Transformer) Transform(root *Node) error {
	return t.transform(root, nil)
}

func (t *Transformer) transform(n *Node, enclosing *Environment) error {
	switch n.Kind {
	case KindMedia:
		if err := t.evaluateFeatures(n, enclosing); err != nil {
			return err
		}
		flattenBlock(n)
	case KindDirective:
		if err := t.evaluateDirective(n, enclosing); err != nil {
			return err
		}
	}

	env := enclosing
	if n.Kind.CreatesScope() {
		env = NewEnvironment(enclosing, t.log)
		if n.Kind == KindMixinDefinition {
			for _, p := range n.Nodes("params") {
				env.DeclareParameter(p)
			}
		}
		env.ClassifyAll(n.Nodes("rules"))
		env.Build()
		n.ReplaceNodes("rules", env.OrderedChildren())
	}

	// children may be replaced while walking
	for _, c := range slices.Clone(n.Children) {
		if err := t.transform(c, env); err != nil {
			return err
		}
	}
	return nil
}

// IsBlockWrapper reports whether ruleset is the anonymous block parser wraps
// media and directive bodies into.
func IsBlockWrapper(n *Node) bool {
	if n == nil || n.Kind != KindRuleset || n.Bool("root") {
		return false
	}
	sels := n.Nodes("selectors")
	if len(sels) == 0 {
		_, ok := n.Attr("selectors")
		return ok
	}
	for _, s := range sels {
		if !s.Bool("mediaEmpty") {
			return false
		}
	}
	return true
}

// flattenBlock moves body of the wrapper ruleset directly under the media
// node, media itself is the scope.
func flattenBlock(n *Node) {
	rules := n.Nodes("rules")
	if len(rules) != 1 || !IsBlockWrapper(rules[0]) {
		return
	}
	n.ReplaceNodes("rules", slices.Clone(rules[0].Nodes("rules")))
}

// evaluateFeatures replaces every feature query referring to variables with
// its literal value.
func (t *Transformer) evaluateFeatures(n *Node, env *Environment) error {
	features := n.Node("features")
	if features == nil {
		return nil
	}
	owner, queries := features, features.Nodes("value")
	if features.Kind != KindValue {
		owner, queries = n, []*Node{features}
	}
	for _, q := range queries {
		if len(CollectReferencedVariableNames(q)) == 0 {
			continue
		}
		v, err := Evaluate(q, env)
		if err != nil {
			return fmt.Errorf("unable to evaluate media query %q: %w", Text(q), err)
		}
		owner.ReplaceChild(q, v)
	}
	return nil
}

func (t *Transformer) evaluateDirective(n *Node, env *Environment) error {
	value := n.Node("value")
	if value == nil || !literalDirectives[n.Name()] || len(CollectReferencedVariableNames(value)) == 0 {
		return nil
	}
	v, err := Evaluate(value, env)
	if err != nil {
		return fmt.Errorf("unable to evaluate %s payload: %w", n.Name(), err)
	}
	n.ReplaceChild(value, v)
	return nil
}
