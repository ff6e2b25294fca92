package less

import (
	"l2s/common"
)

//go:generate go tool go-enum --marshal --names

// Kind is the closed set of node kinds Less parser produces. Param is
// synthetic: the builder creates it for mixin parameters and arguments which
// parser emits as plain objects.
// ENUM(Ruleset, Rule, Value, Expression, Dimension, Unit, Color, Keyword, Anonymous, Quoted, Variable, Operation, Call, Url, Selector, Element, Combinator, Comment, Media, Directive, MixinDefinition, MixinCall, Param, Paren, Condition, Import, Extend, Negative, Attribute, Assignment, Alpha, UnicodeDescriptor, JavaScript, DetachedRuleset, RulesetCall)
type Kind int

// newer parser releases renamed some of the node types
var kindAliases = map[string]Kind{
	"Declaration": KindRule,
	"AtRule":      KindDirective,
}

// kindByName maps parser discriminator to node kind.
func kindByName(name string) (Kind, error) {
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	k, err := ParseKind(name)
	if err != nil {
		return k, common.WrapError(common.ErrorKindUnknownNodeKindError, err,
			"Unexpected class type %s during Less' AST JSON parsing", name)
	}
	return k, nil
}

// CreatesScope reports whether nodes of this kind introduce new lexical
// environment for their bodies.
func (x Kind) CreatesScope() bool {
	switch x {
	case KindRuleset, KindMixinDefinition, KindMedia:
		return true
	}
	return false
}
