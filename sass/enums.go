package sass

//go:generate go tool go-enum --marshal --names

// Operators of SassScript expressions.
// ENUM(plus, minus, times, div, mod, eq, neq, gt, lt, gte, lte, and, or, not)
type Operator int

var operatorSymbols = map[Operator]string{
	OperatorPlus:  "+",
	OperatorMinus: "-",
	OperatorTimes: "*",
	OperatorDiv:   "/",
	OperatorMod:   "%",
	OperatorEq:    "==",
	OperatorNeq:   "!=",
	OperatorGt:    ">",
	OperatorLt:    "<",
	OperatorGte:   ">=",
	OperatorLte:   "<=",
	OperatorAnd:   "and",
	OperatorOr:    "or",
	OperatorNot:   "not",
}

// Symbol returns operator as written in source.
func (x Operator) Symbol() string {
	return operatorSymbols[x]
}

// Precedence follows Sass: or < and < equality < relational < additive <
// multiplicative.
func (x Operator) Precedence() int {
	switch x {
	case OperatorOr:
		return 1
	case OperatorAnd:
		return 2
	case OperatorEq, OperatorNeq:
		return 3
	case OperatorGt, OperatorLt, OperatorGte, OperatorLte:
		return 4
	case OperatorPlus, OperatorMinus:
		return 5
	case OperatorTimes, OperatorDiv, OperatorMod:
		return 6
	}
	return 7
}

// Kinds of comments, silent ones never reach CSS.
// ENUM(normal, silent, loud)
type CommentType int

// List separators.
// ENUM(space, comma)
type Separator int
