package convert

import (
	"strings"

	"go.uber.org/zap"

	"l2s/common"
	"l2s/less"
	"l2s/sass"
)

// operators is the closed table of Less operators with Sass counterparts.
var operators = map[string]sass.Operator{
	"+":   sass.OperatorPlus,
	"-":   sass.OperatorMinus,
	"*":   sass.OperatorTimes,
	"/":   sass.OperatorDiv,
	"%":   sass.OperatorMod,
	"==":  sass.OperatorEq,
	"!=":  sass.OperatorNeq,
	">":   sass.OperatorGt,
	"<":   sass.OperatorLt,
	">=":  sass.OperatorGte,
	"<=":  sass.OperatorLte,
	"and": sass.OperatorAnd,
	"or":  sass.OperatorOr,
}

// guard comparisons use their own spelling
var conditionOperators = map[string]sass.Operator{
	"=":   sass.OperatorEq,
	"=<":  sass.OperatorLte,
	"<=":  sass.OperatorLte,
	">=":  sass.OperatorGte,
	">":   sass.OperatorGt,
	"<":   sass.OperatorLt,
	"and": sass.OperatorAnd,
	"or":  sass.OperatorOr,
}

func operator(table map[string]sass.Operator, op string) (sass.Operator, error) {
	if o, ok := table[strings.TrimSpace(op)]; ok {
		return o, nil
	}
	return 0, common.NewError(common.ErrorKindOperatorConversionError, "Unsupported operator %s", strings.TrimSpace(op))
}

// expr converts value node into SassScript expression.
func (e *Emitter) expr(n *less.Node, ctx emitContext) (sass.Expr, error) {
	if n == nil {
		return nil, common.NewError(common.ErrorKindUnknownError, "missing value")
	}
	if ctx.textual() {
		return text(payload(n)), nil
	}

	switch n.Kind {
	case less.KindValue:
		return e.list(n, n.Nodes("value"), sass.SeparatorComma, ctx)
	case less.KindExpression:
		wrap := n.Bool("parens") && !n.Bool("parensInOp")
		if wrap {
			ctx = ctx.inParen()
		}
		x, err := e.list(n, n.Nodes("value"), sass.SeparatorSpace, ctx)
		if err != nil {
			return nil, err
		}
		if wrap {
			return &sass.Paren{Value: x}, nil
		}
		return x, nil
	case less.KindOperation:
		return e.operation(n, ctx)
	case less.KindCondition:
		return e.condition(n, ctx)
	case less.KindKeyword:
		switch v := n.Str("value"); v {
		case "true", "false":
			return &sass.Bool{Value: v == "true"}, nil
		case "null":
			return &sass.Null{}, nil
		default:
			return &sass.String{Value: v}, nil
		}
	case less.KindDimension:
		num, den := less.UnitParts(n)
		if len(num) > 1 || len(den) > 0 {
			return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: compound unit %s", n.Kind, less.Text(n))
		}
		v, _ := n.Num("value")
		x := &sass.Number{Value: v}
		if len(num) == 1 {
			x.Unit = num[0]
		}
		return x, nil
	case less.KindColor:
		return &sass.Color{Value: less.Text(n)}, nil
	case less.KindQuoted:
		return quoted(n), nil
	case less.KindAnonymous:
		v, _ := n.Attr("value")
		switch val := v.(type) {
		case string:
			return text(interpolated(val)), nil
		case float64:
			return &sass.String{Value: less.FormatNumber(val)}, nil
		}
		return nil, unsupported(n)
	case less.KindVariable:
		name := n.Name()
		if strings.HasPrefix(name, "@@") {
			return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: variable variable %s", n.Kind, name)
		}
		ref := &sass.VariableRef{Name: strings.TrimPrefix(name, "@")}
		if ctx.selector {
			return &sass.Interpolation{Value: ref}, nil
		}
		return ref, nil
	case less.KindCall:
		args, err := e.exprs(n.Nodes("args"), ctx.inCall())
		if err != nil {
			return nil, err
		}
		return &sass.Funcall{Name: n.Name(), Args: args}, nil
	case less.KindUrl:
		v, err := e.expr(n.Node("value"), ctx.inCall())
		if err != nil {
			return nil, err
		}
		return &sass.Funcall{Name: "url", Args: []sass.Expr{v}}, nil
	case less.KindParen:
		inner := n.Node("value")
		if inner != nil && inner.Kind == less.KindRule {
			// (feature: value) outside of media queries
			return text(payload(n)), nil
		}
		v, err := e.expr(inner, ctx.inParen())
		if err != nil {
			return nil, err
		}
		return &sass.Paren{Value: v}, nil
	case less.KindNegative:
		v, err := e.expr(n.Node("value"), ctx.inOperation())
		if err != nil {
			return nil, err
		}
		return &sass.Unary{Op: sass.OperatorMinus, Operand: v}, nil
	case less.KindAssignment, less.KindAlpha, less.KindUnicodeDescriptor, less.KindAttribute, less.KindElement, less.KindSelector:
		return text(interpolated(less.Text(n))), nil
	}
	return nil, unsupported(n)
}

func (e *Emitter) exprs(nodes []*less.Node, ctx emitContext) ([]sass.Expr, error) {
	out := make([]sass.Expr, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == less.KindComment {
			e.log.Debug("Dropping comment inside value", zap.String("comment", n.Str("value")))
			continue
		}
		x, err := e.expr(n, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// list converts Value (comma) and Expression (space) sequences.
func (e *Emitter) list(n *less.Node, items []*less.Node, sep sass.Separator, ctx emitContext) (sass.Expr, error) {
	if !ctx.variable && ctx.property != "" && e.cfg.IsLiteralProperty(ctx.property) && len(less.CollectReferencedVariableNames(n)) == 0 {
		return &sass.String{Value: less.Text(n)}, nil
	}
	if len(items) == 1 {
		return e.expr(items[0], ctx)
	}
	if sep == sass.SeparatorSpace {
		// list members are not operands
		ctx = ctx.inCall()
	}
	xs, err := e.exprs(items, ctx)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		return xs[0], nil
	}
	return &sass.List{Items: xs, Separator: sep}, nil
}

func (e *Emitter) operation(n *less.Node, ctx emitContext) (sass.Expr, error) {
	ops := n.Nodes("operands")
	if len(ops) != 2 {
		return nil, common.NewError(common.ErrorKindUnknownError, "operation %q expects two operands", n.Str("op"))
	}
	op, err := operator(operators, n.Str("op"))
	if err != nil {
		return nil, err
	}
	left, err := e.expr(ops[0], ctx.inOperation())
	if err != nil {
		return nil, err
	}
	right, err := e.expr(ops[1], ctx.inOperation())
	if err != nil {
		return nil, err
	}
	x := &sass.Operation{Op: op, Left: left, Right: right}
	// standalone slash between numbers is a separator in Sass
	if op == sass.OperatorDiv && !ctx.operation && !ctx.paren {
		return &sass.Paren{Value: x}, nil
	}
	return x, nil
}

func (e *Emitter) condition(n *less.Node, ctx emitContext) (sass.Expr, error) {
	op, err := operator(conditionOperators, n.Str("op"))
	if err != nil {
		return nil, err
	}
	left, err := e.expr(n.Node("lvalue"), ctx.inOperation())
	if err != nil {
		return nil, err
	}
	right, err := e.expr(n.Node("rvalue"), ctx.inOperation())
	if err != nil {
		return nil, err
	}
	var x sass.Expr = &sass.Operation{Op: op, Left: left, Right: right}
	if n.Bool("negate") {
		x = &sass.Unary{Op: sass.OperatorNot, Operand: x}
	}
	return x, nil
}

// quoted handles plain, escaped (~"...") and interpolated strings.
func quoted(n *less.Node) sass.Expr {
	q := n.Str("quote")
	if q == "" {
		q = `"`
	}
	value := n.Str("value")

	var s sass.Expr = &sass.String{Value: value, Quote: q}
	if strings.Contains(value, "@{") {
		var parts []sass.Expr
		for _, p := range interpolated(value) {
			if i, ok := p.(*sass.Interpolation); ok {
				p = i.Value
			}
			parts = append(parts, p)
		}
		s = &sass.StringInterpolation{Quote: q, Parts: parts}
	}
	if n.Bool("escaped") {
		return &sass.Funcall{Name: "unquote", Args: []sass.Expr{s}}
	}
	return s
}

// text joins literal parts and interpolations into unquoted string.
func text(parts []sass.Expr) sass.Expr {
	if len(parts) == 1 {
		return parts[0]
	}
	return &sass.String{Value: sass.Concat(parts)}
}
