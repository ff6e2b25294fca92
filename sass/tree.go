// Package sass holds target stylesheet tree, renders it as SCSS or indented
// Sass and runs external sass compiler.
package sass

// Node is a statement of the stylesheet tree.
type Node interface {
	// Pos returns output line statement was emitted on.
	Pos() int
}

// Position records emission line.
type Position struct {
	Line int
}

func (p Position) Pos() int {
	return p.Line
}

// Block is a list of nested statements.
type Block struct {
	Children []Node
}

func (b *Block) Append(nodes ...Node) {
	b.Children = append(b.Children, nodes...)
}

// container is implemented by statements with nested blocks.
type container interface {
	Node
	body() *Block
}

func (b *Block) body() *Block {
	return b
}

type Root struct {
	Position
	Block
}

// Rule is a style rule. Selector alternates literal text (unquoted String)
// and interpolations.
type Rule struct {
	Position
	Block
	Selector []Expr
}

// Prop is property declaration.
type Prop struct {
	Position
	Name      []Expr
	Value     Expr
	Important bool
}

// Variable is variable assignment, Name is without "$".
type Variable struct {
	Position
	Name    string
	Value   Expr
	Guarded bool
	Global  bool
}

// Comment keeps text with its delimiters.
type Comment struct {
	Position
	Type CommentType
	Text string
}

type Media struct {
	Position
	Block
	Query []Expr
}

type Supports struct {
	Position
	Block
	Condition SupportsCondition
}

// Directive is any other at-rule, Name is without "@".
type Directive struct {
	Position
	Block
	Name     string
	Value    []Expr
	HasBlock bool
}

type Import struct {
	Position
	Path  Expr
	Media []Expr
}

type Extend struct {
	Position
	Selector []Expr
	Optional bool
}

// Param is mixin parameter, Name is without "$".
type Param struct {
	Name    string
	Default Expr
}

type MixinDef struct {
	Position
	Block
	Name   string
	Params []Param
	// name of the variadic parameter, empty when there is none
	Rest string
}

// Arg is mixin argument, Name is set for keyword arguments.
type Arg struct {
	Name  string
	Value Expr
}

type Include struct {
	Position
	Name string
	Args []Arg
}

type If struct {
	Position
	Block
	Condition Expr
}
