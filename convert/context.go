package convert

// emitContext describes where in the stylesheet a node is being emitted.
// It is passed down by value, every level gets its own copy.
type emitContext struct {
	// name of the property which value is emitted
	property string
	// value of variable definition
	variable bool
	// media feature list, emitted as plain text
	media bool
	// selector, variables become interpolations
	selector bool
	// name of the enclosing directive (without "@")
	directive string
	// operand of an arithmetic operation
	operation bool
	// inside parenthesis
	paren bool
}

func (c emitContext) withProperty(name string) emitContext {
	c.property, c.variable = name, false
	return c
}

func (c emitContext) inVariable() emitContext {
	c.property, c.variable = "", true
	return c
}

func (c emitContext) inMedia() emitContext {
	c.media = true
	return c
}

func (c emitContext) inSelector() emitContext {
	c.selector = true
	return c
}

func (c emitContext) inDirective(name string) emitContext {
	c.directive = name
	return c
}

func (c emitContext) inOperation() emitContext {
	c.operation = true
	return c
}

func (c emitContext) inParen() emitContext {
	c.paren = true
	return c
}

// nested values start fresh: arguments of a call are not operands of the
// outer operation.
func (c emitContext) inCall() emitContext {
	c.operation, c.paren = false, false
	return c
}

// textual reports whether values are emitted as raw text with
// interpolations.
func (c emitContext) textual() bool {
	return c.media
}
