package less

import (
	"regexp"
	"strings"
)

// InterpolationRe matches @{name} inside strings, selectors and property
// names, first submatch is the variable name without "@".
var InterpolationRe = regexp.MustCompile(`@\{([\w-]*)\}`)

// CollectReferencedVariableNames folds subtree (children before parent) into
// the set of variable names it refers to, in order of first appearance. Names
// keep the "@" prefix.
func CollectReferencedVariableNames(n *Node) []string {
	return collectReferences(n, false)
}

// localReferences is the same fold which does not descend into nested
// scopes, those resolve their own references.
func localReferences(n *Node) []string {
	return collectReferences(n, true)
}

func collectReferences(n *Node, stopAtScopes bool) []string {
	if n == nil {
		return nil
	}
	var (
		names []string
		seen  = make(map[string]bool)
	)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	var fold func(*Node, bool)
	fold = func(n *Node, top bool) {
		if stopAtScopes && !top && n.Kind.CreatesScope() {
			return
		}
		for _, c := range n.Children {
			fold(c, false)
		}
		switch n.Kind {
		case KindVariable:
			// @@name dereferences variable @name
			add("@" + strings.TrimLeft(n.Name(), "@"))
		case KindQuoted, KindElement, KindAnonymous:
			for _, name := range interpolatedNames(n.Str("value")) {
				add(name)
			}
		case KindRule:
			if !n.IsVariableDefinition() {
				for _, name := range interpolatedNames(n.Name()) {
					add(name)
				}
			}
		}
	}
	fold(n, true)
	return names
}

func interpolatedNames(s string) []string {
	if !strings.Contains(s, "@{") {
		return nil
	}
	var names []string
	for _, m := range InterpolationRe.FindAllStringSubmatch(s, -1) {
		names = append(names, "@"+m[1])
	}
	return names
}
