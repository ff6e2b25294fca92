// Package less holds Less syntax tree as produced by the external parser,
// lexical environments and transformation pass which reorders the tree so
// it could be expressed with eagerly evaluated Sass variables.
package less

import (
	"slices"
)

// Node is a generic tree node. Attributes are kept in declaration order of
// the kind schema. Any node stored in an attribute is also present in
// Children, generic walks see every subtree exactly once.
type Node struct {
	Kind     Kind
	Children []*Node

	// non-owning, used only to answer context questions
	parent *Node
	attrs  []attr
}

// attr value is one of: string, float64, bool, nil, *Node, []*Node or opaque
// JSON value (map[string]any, []any).
type attr struct {
	name  string
	value any
}

// NewNode creates detached node of the specified kind.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Attr returns raw attribute value.
func (n *Node) Attr(name string) (any, bool) {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			return n.attrs[i].value, true
		}
	}
	return nil, false
}

// AttrNames lists attribute names in storage order.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for _, a := range n.attrs {
		names = append(names, a.name)
	}
	return names
}

// Node returns attribute holding single node, nil otherwise.
func (n *Node) Node(name string) *Node {
	v, _ := n.Attr(name)
	if c, ok := v.(*Node); ok {
		return c
	}
	return nil
}

// Nodes returns attribute as node sequence hiding the fact that builder
// stores one element sequences as single node.
func (n *Node) Nodes(name string) []*Node {
	v, _ := n.Attr(name)
	switch c := v.(type) {
	case *Node:
		return []*Node{c}
	case []*Node:
		return c
	}
	return nil
}

// Str returns string attribute, empty string when absent or of other type.
func (n *Node) Str(name string) string {
	v, _ := n.Attr(name)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Num returns numeric attribute.
func (n *Node) Num(name string) (float64, bool) {
	v, _ := n.Attr(name)
	f, ok := v.(float64)
	return f, ok
}

// Bool returns boolean attribute, false when absent.
func (n *Node) Bool(name string) bool {
	v, _ := n.Attr(name)
	b, _ := v.(bool)
	return b
}

// Set stores attribute value. Nodes passed here are not linked, use SetNode
// or SetNodes for that.
func (n *Node) Set(name string, value any) {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attr{name: name, value: value})
}

// SetNode stores child in attribute and appends it to children.
func (n *Node) SetNode(name string, child *Node) {
	n.Set(name, child)
	n.AppendChild(child)
}

// SetNodes stores children in attribute and appends them to children. Single
// element sequence is stored as node to match builder output.
func (n *Node) SetNodes(name string, children []*Node) {
	switch len(children) {
	case 1:
		n.Set(name, children[0])
	default:
		n.Set(name, children)
	}
	for _, c := range children {
		n.AppendChild(c)
	}
}

// AppendChild links child to this node.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// ReplaceChild substitutes replacement for old both in children and in every
// attribute referring to it.
func (n *Node) ReplaceChild(old, replacement *Node) {
	for i, c := range n.Children {
		if c == old {
			n.Children[i] = replacement
		}
	}
	for i := range n.attrs {
		switch v := n.attrs[i].value.(type) {
		case *Node:
			if v == old {
				n.attrs[i].value = replacement
			}
		case []*Node:
			for j := range v {
				if v[j] == old {
					v[j] = replacement
				}
			}
		}
	}
	replacement.parent = n
	old.parent = nil
}

// ReplaceNodes swaps node sequence stored in attribute keeping every other
// child in its place. Old nodes are unlinked, new ones take the position of
// the first old node among children (or go to the end).
func (n *Node) ReplaceNodes(name string, replacement []*Node) {
	old := n.Nodes(name)
	pos := len(n.Children)
	kept := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if slices.Contains(old, c) {
			if pos > len(kept) {
				pos = len(kept)
			}
			c.parent = nil
			continue
		}
		kept = append(kept, c)
	}
	n.Children = slices.Insert(kept, pos, replacement...)
	for _, c := range replacement {
		c.parent = n
	}
	switch len(replacement) {
	case 1:
		n.Set(name, replacement[0])
	default:
		n.Set(name, replacement)
	}
}

// Clone makes deep copy of the subtree. Attributes of the copy refer to the
// copied children so dual linkage is preserved.
func (n *Node) Clone() *Node {
	mapping := make(map[*Node]*Node)
	return n.clone(mapping)
}

func (n *Node) clone(mapping map[*Node]*Node) *Node {
	c := &Node{Kind: n.Kind}
	mapping[n] = c
	for _, child := range n.Children {
		cc := child.clone(mapping)
		cc.parent = c
		c.Children = append(c.Children, cc)
	}
	c.attrs = make([]attr, len(n.attrs))
	for i, a := range n.attrs {
		c.attrs[i].name = a.name
		switch v := a.value.(type) {
		case *Node:
			c.attrs[i].value = lookupClone(mapping, v)
		case []*Node:
			list := make([]*Node, len(v))
			for j := range v {
				list[j] = lookupClone(mapping, v[j])
			}
			c.attrs[i].value = list
		default:
			c.attrs[i].value = v
		}
	}
	return c
}

func lookupClone(mapping map[*Node]*Node, n *Node) *Node {
	if c, ok := mapping[n]; ok {
		return c
	}
	// attribute pointing outside of children, should not happen with
	// builder produced trees
	return n.clone(mapping)
}

// Walk visits subtree in pre-order, fn returning false skips node children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// IsVariableDefinition reports whether node is variable declaration, parser
// flags those explicitly.
func (n *Node) IsVariableDefinition() bool {
	return n.Kind == KindRule && n.Bool("variable")
}

// Name returns name of a rule, variable, call or directive when it is
// a plain string.
func (n *Node) Name() string {
	return n.Str("name")
}
