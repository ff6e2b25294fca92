// Package css reads compiled CSS into a form suitable for checking that two
// stylesheets are equivalent.
package css

import (
	"sort"
	"strings"
)

// Declaration is a single property with its normalized value.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value
}

// Item is either a style rule (AtRule is empty) or an at-rule.
type Item struct {
	// At-rule name including "@", lower case.
	AtRule string
	// Normalized at-rule prelude.
	Prelude string
	// Style rule selectors in source order.
	Selectors    []string
	Declarations []Declaration
	// Nested rules of block at-rules.
	Items []*Item
	// Token text of at-rules with unknown body.
	Body string
}

// IsEmpty reports whether item produces no output. Compilers differ in
// keeping such items.
func (it *Item) IsEmpty() bool {
	if it.AtRule != "" {
		return false
	}
	return len(it.Declarations) == 0 && len(it.Items) == 0
}

// Stylesheet is a parsed CSS file.
type Stylesheet struct {
	Items    []*Item
	Warnings []string
}

// Keys returns canonical representation of every item with grouped selectors
// split into separate entries. Ordering of declarations within a block, of
// selectors and of sibling items is not significant and keys are sorted.
func (s *Stylesheet) Keys() []string {
	return keys(s.Items)
}

func keys(items []*Item) []string {
	var out []string
	for _, it := range items {
		if it.IsEmpty() {
			continue
		}
		decls := declarationsKey(it.Declarations)
		if it.AtRule == "" {
			for _, sel := range it.Selectors {
				out = append(out, sel+" {"+decls+"}")
			}
			continue
		}

		var sb strings.Builder
		sb.WriteString(it.AtRule)
		if it.Prelude != "" {
			sb.WriteString(" " + it.Prelude)
		}
		sb.WriteString(" {" + decls)
		for _, k := range keys(it.Items) {
			sb.WriteString(" " + k)
		}
		if it.Body != "" {
			sb.WriteString(" " + it.Body)
		}
		sb.WriteString("}")
		out = append(out, sb.String())
	}
	sort.Strings(out)
	return out
}

func declarationsKey(decls []Declaration) string {
	if len(decls) == 0 {
		return ""
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String() + ";"
	}
	sort.Strings(parts)
	return " " + strings.Join(parts, " ") + " "
}
