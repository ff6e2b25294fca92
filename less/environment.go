package less

import (
	"github.com/elliotchance/orderedmap/v3"
	"go.uber.org/zap"
)

// Environment is lexical scope of a single scope creating node. It sorts
// node body into buckets and produces emission order in which no variable is
// used before it is defined.
type Environment struct {
	parent *Environment
	log    *zap.Logger

	static  *orderedmap.OrderedMap[string, *Node]
	dynamic *orderedmap.OrderedMap[string, *Node]
	// mixin parameters, defined but never emitted as statements
	params map[string]*Node
	// names referenced by dynamic definitions
	refs map[*Node][]string

	rulesets   []*Node
	mixinCalls []*Node
	other      []*Node

	// dynamic definitions in dependency order, valid when built
	ordered []*Node
	built   bool
}

// NewEnvironment creates scope nested into parent, parent may be nil for the
// stylesheet root.
func NewEnvironment(parent *Environment, log *zap.Logger) *Environment {
	return &Environment{
		parent:  parent,
		log:     log,
		static:  orderedmap.NewOrderedMap[string, *Node](),
		dynamic: orderedmap.NewOrderedMap[string, *Node](),
		refs:    make(map[*Node][]string),
		params:  make(map[string]*Node),
	}
}

// DeclareParameter makes mixin parameter visible in this scope.
func (e *Environment) DeclareParameter(param *Node) {
	if name := param.Name(); name != "" {
		e.params[name] = param
		e.built = false
	}
}

func (e *Environment) Parent() *Environment {
	return e.parent
}

// Classify routes body node into its bucket. Redefinition of a variable
// replaces the earlier one.
func (e *Environment) Classify(n *Node) {
	e.built = false
	switch {
	case n.IsVariableDefinition():
		name := n.Name()
		if refs := definitionReferences(n); len(refs) > 0 {
			e.static.Delete(name)
			e.dynamic.Set(name, n)
			e.refs[n] = refs
		} else {
			e.dynamic.Delete(name)
			e.static.Set(name, n)
		}
	case n.Kind == KindRuleset:
		e.rulesets = append(e.rulesets, n)
	case n.Kind == KindMixinCall:
		e.mixinCalls = append(e.mixinCalls, n)
	case n.Kind == KindSelector:
		// selectors belong to the owner header, not to the body
	default:
		e.other = append(e.other, n)
	}
}

// ClassifyAll classifies every node of the body in order.
func (e *Environment) ClassifyAll(body []*Node) {
	for _, n := range body {
		e.Classify(n)
	}
}

func definitionReferences(def *Node) []string {
	var refs []string
	for _, v := range def.Nodes("value") {
		refs = append(refs, CollectReferencedVariableNames(v)...)
	}
	return refs
}

// Build imports outer definitions affected by local overrides and computes
// dependency order of dynamic definitions. Repeated calls are no-op until
// the next Classify.
func (e *Environment) Build() {
	if e.built {
		return
	}
	e.processLazyLoading()
	e.ordered = e.dependencyOrder()
	e.built = true
}

// OrderedChildren returns body in emission order: static variables, dynamic
// variables, everything else, nested rulesets and finally mixin calls.
func (e *Environment) OrderedChildren() []*Node {
	e.Build()
	out := make([]*Node, 0, e.static.Len()+len(e.ordered)+len(e.other)+len(e.rulesets)+len(e.mixinCalls))
	for def := range e.static.Values() {
		out = append(out, def)
	}
	out = append(out, e.ordered...)
	out = append(out, e.other...)
	out = append(out, e.rulesets...)
	out = append(out, e.mixinCalls...)
	return out
}

// VariableIsDefined checks this scope only.
func (e *Environment) VariableIsDefined(name string) bool {
	if _, ok := e.params[name]; ok {
		return true
	}
	if _, ok := e.static.Get(name); ok {
		return true
	}
	_, ok := e.dynamic.Get(name)
	return ok
}

// FindDynamicDefinition walks scope chain outwards looking for dynamic
// definition of the name. Static definition met first hides it.
func (e *Environment) FindDynamicDefinition(name string) *Node {
	for env := e; env != nil; env = env.parent {
		if def, ok := env.dynamic.Get(name); ok {
			return def
		}
		if _, ok := env.static.Get(name); ok {
			return nil
		}
		if _, ok := env.params[name]; ok {
			return nil
		}
	}
	return nil
}

// Lookup returns the closest definition of the variable.
func (e *Environment) Lookup(name string) *Node {
	for env := e; env != nil; env = env.parent {
		if def, ok := env.static.Get(name); ok {
			return def
		}
		if def, ok := env.dynamic.Get(name); ok {
			return def
		}
		if def, ok := env.params[name]; ok {
			return def
		}
	}
	return nil
}

func (e *Environment) processLazyLoading() {
	if e.parent == nil {
		return
	}

	check := make([]*Node, 0, e.dynamic.Len()+len(e.other)+len(e.mixinCalls))
	for def := range e.dynamic.Values() {
		check = append(check, def)
	}
	check = append(check, e.other...)
	check = append(check, e.mixinCalls...)
	for _, rs := range e.rulesets {
		check = append(check, rs.Nodes("selectors")...)
	}

	visited := make(map[string]bool)
	for _, n := range check {
		if n.Kind.CreatesScope() {
			continue
		}
		refs := e.refs[n]
		if !n.IsVariableDefinition() {
			refs = localReferences(n)
		}
		for _, name := range refs {
			e.importDefinitionsOf(name, visited)
		}
	}
}

// importDefinitionsOf brings outer dynamic definition of name into this
// scope when anything it depends on, directly or through other outer
// definitions, is redefined here.
func (e *Environment) importDefinitionsOf(name string, visited map[string]bool) {
	if visited[name] || e.VariableIsDefined(name) {
		return
	}
	visited[name] = true

	def := e.parent.FindDynamicDefinition(name)
	if def == nil {
		return
	}
	for _, dep := range definitionReferences(def) {
		if !e.VariableIsDefined(dep) {
			e.importDefinitionsOf(dep, visited)
		}
		// dependency could have been imported by the recursion above
		if e.VariableIsDefined(dep) {
			if _, ok := e.dynamic.Get(name); !ok {
				imported := def.Clone()
				e.dynamic.Set(name, imported)
				e.refs[imported] = definitionReferences(imported)
				e.log.Debug("Outer definition re-anchored", zap.String("variable", name), zap.String("overridden", dep))
			}
		}
	}
}

// dependencyOrder places every dynamic definition after dynamic
// definitions it refers to, otherwise keeping definition order. Mutually
// recursive definitions end up in arbitrary order.
func (e *Environment) dependencyOrder() []*Node {
	order := make([]*Node, 0, e.dynamic.Len())
	placed := make(map[string]bool)
	var visit func(name string, def *Node)
	visit = func(name string, def *Node) {
		if placed[name] {
			return
		}
		placed[name] = true
		for _, ref := range e.refs[def] {
			if dep, ok := e.dynamic.Get(ref); ok {
				visit(ref, dep)
			}
		}
		order = append(order, def)
	}
	for name, def := range e.dynamic.AllFromFront() {
		visit(name, def)
	}
	return order
}
