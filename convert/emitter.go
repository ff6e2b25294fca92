package convert

import (
	"fmt"
	"path"
	"regexp"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"

	"l2s/common"
	"l2s/config"
	"l2s/less"
	"l2s/sass"
)

// Result is emitted stylesheet tree together with number of lines used.
type Result struct {
	Root  *sass.Root
	Lines int
}

// Emitter maps transformed Less tree into Sass tree. It is not safe for
// concurrent use: line counter belongs to the instance and is reset by Emit.
type Emitter struct {
	cfg *config.ConversionConfig
	log *zap.Logger

	line int
	// names of mixins defined in the document
	mixins map[string]bool
}

func NewEmitter(cfg *config.ConversionConfig, log *zap.Logger) *Emitter {
	return &Emitter{cfg: cfg, log: log.Named("emitter")}
}

// Emit converts the whole stylesheet. Root must be the root ruleset.
func (e *Emitter) Emit(root *less.Node) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Debug("Emitter panicked", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			res, err = nil, common.NewError(common.ErrorKindUnknownError, "unexpected failure during conversion: %v", r)
		}
	}()

	if root == nil || root.Kind != less.KindRuleset || !root.Bool("root") {
		return nil, common.NewError(common.ErrorKindUnknownError, "stylesheet root is expected")
	}

	e.line = 0
	e.mixins = make(map[string]bool)
	root.Walk(func(n *less.Node) bool {
		if n.Kind == less.KindMixinDefinition {
			e.mixins[mixinName(n.Name())] = true
		}
		return true
	})

	out := &sass.Root{Position: sass.Position{Line: e.nextLine()}}
	body, err := e.statements(root.Nodes("rules"), emitContext{})
	if err != nil {
		return nil, err
	}
	out.Append(body...)
	return &Result{Root: out, Lines: e.line}, nil
}

// nextLine starts new output line.
func (e *Emitter) nextLine() int {
	e.line++
	return e.line
}

// currentLine is used by statements sharing line with the previous one.
func (e *Emitter) currentLine() int {
	return max(e.line, 1)
}

func unsupported(n *less.Node) error {
	return common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s", n.Kind)
}

func (e *Emitter) statements(nodes []*less.Node, ctx emitContext) ([]sass.Node, error) {
	out := make([]sass.Node, 0, len(nodes))
	for _, n := range nodes {
		s, err := e.statement(n, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, s...)
	}
	return out, nil
}

func (e *Emitter) statement(n *less.Node, ctx emitContext) ([]sass.Node, error) {
	var (
		s   sass.Node
		err error
	)
	switch n.Kind {
	case less.KindRuleset:
		if isAnonymousBlock(n) {
			return e.statements(n.Nodes("rules"), ctx)
		}
		s, err = e.ruleset(n, ctx)
	case less.KindRule:
		s, err = e.declaration(n, ctx)
	case less.KindComment:
		s = e.comment(n)
	case less.KindMedia:
		s, err = e.media(n, ctx)
	case less.KindDirective:
		s, err = e.directive(n, ctx)
	case less.KindImport:
		s, err = e.importRule(n, ctx)
	case less.KindExtend:
		s, err = e.extend(n, e.nextLine())
	case less.KindMixinDefinition:
		s, err = e.mixinDefinition(n, ctx)
	case less.KindMixinCall:
		s, err = e.mixinCall(n, ctx)
	case less.KindSelector:
		// header of the enclosing block
		return nil, nil
	default:
		return nil, unsupported(n)
	}
	if err != nil {
		if ctx.directive != "" {
			e.log.Debug("Conversion failed inside directive", zap.String("directive", ctx.directive), zap.Stringer("kind", n.Kind))
		}
		return nil, err
	}
	return []sass.Node{s}, nil
}

// isAnonymousBlock reports whether ruleset is body wrapper without
// selectors, its rules belong to the enclosing statement.
func isAnonymousBlock(n *less.Node) bool {
	if less.IsBlockWrapper(n) {
		return true
	}
	if _, ok := n.Attr("selectors"); ok || n.Bool("root") {
		return false
	}
	return true
}

func (e *Emitter) ruleset(n *less.Node, ctx emitContext) (sass.Node, error) {
	sels := n.Nodes("selectors")
	if len(sels) == 0 {
		return nil, common.NewError(common.ErrorKindUnknownError, "ruleset without selectors")
	}
	rule := &sass.Rule{Position: sass.Position{Line: e.nextLine()}}

	var guard *less.Node
	for i, sel := range sels {
		if i > 0 {
			rule.Selector = appendLiteral(rule.Selector, ", ")
		}
		parts, err := e.selector(sel, ctx)
		if err != nil {
			return nil, err
		}
		rule.Selector = append(rule.Selector, parts...)
		for _, ext := range sel.Nodes("extendList") {
			s, err := e.extend(ext, rule.Line)
			if err != nil {
				return nil, err
			}
			rule.Append(s)
		}
		if c := sel.Node("condition"); c != nil && guard == nil {
			guard = c
		}
	}

	body, err := e.statements(n.Nodes("rules"), ctx)
	if err != nil {
		return nil, err
	}
	rule.Append(body...)
	return e.guarded(rule, guard, ctx)
}

// guarded wraps statement into @if when Less guard is present.
func (e *Emitter) guarded(s sass.Node, guard *less.Node, ctx emitContext) (sass.Node, error) {
	if guard == nil {
		return s, nil
	}
	cond, err := e.expr(guard, ctx)
	if err != nil {
		return nil, err
	}
	wrap := &sass.If{Position: sass.Position{Line: s.Pos()}, Condition: cond}
	wrap.Append(s)
	return wrap, nil
}

// selector converts element sequence into text and interpolations.
func (e *Emitter) selector(sel *less.Node, ctx emitContext) ([]sass.Expr, error) {
	if sel.Kind != less.KindSelector {
		return interpolated(less.Text(sel)), nil
	}
	var parts []sass.Expr
	for i, el := range sel.Nodes("elements") {
		comb := less.Text(el.Node("combinator"))
		if i == 0 {
			comb = strings.TrimLeft(comb, " ")
		}
		parts = appendLiteral(parts, comb)

		v, _ := el.Attr("value")
		switch val := v.(type) {
		case string:
			parts = append(parts, interpolated(val)...)
		case *less.Node:
			x, err := e.expr(val, ctx.inSelector())
			if err != nil {
				return nil, err
			}
			parts = append(parts, x)
		case nil:
		default:
			return nil, unsupported(el)
		}
	}
	return mergeLiterals(parts), nil
}

func (e *Emitter) extend(n *less.Node, line int) (sass.Node, error) {
	if strings.TrimSpace(n.Str("option")) == "all" {
		return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: option all", n.Kind)
	}
	parts, err := e.selector(n.Node("selector"), emitContext{})
	if err != nil {
		return nil, err
	}
	return &sass.Extend{Position: sass.Position{Line: line}, Selector: parts}, nil
}

func (e *Emitter) declaration(n *less.Node, ctx emitContext) (sass.Node, error) {
	line := e.nextLine()
	// merge is either false or "+", "+_"
	if merge, _ := n.Attr("merge"); merge != nil && merge != false && merge != "" {
		return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: property merge", n.Kind)
	}

	if n.IsVariableDefinition() {
		name := n.Name()
		if strings.HasPrefix(name, "@@") {
			return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: variable variable %s", n.Kind, name)
		}
		value, err := e.expr(n.Node("value"), ctx.inVariable())
		if err != nil {
			return nil, err
		}
		// Less has neither guarded nor global assignments
		return &sass.Variable{Position: sass.Position{Line: line}, Name: strings.TrimPrefix(name, "@"), Value: value}, nil
	}

	name, err := e.propertyName(n)
	if err != nil {
		return nil, err
	}
	value, err := e.expr(n.Node("value"), ctx.withProperty(less.PropertyName(n)))
	if err != nil {
		return nil, err
	}
	return &sass.Prop{
		Position:  sass.Position{Line: line},
		Name:      name,
		Value:     value,
		Important: strings.TrimSpace(n.Str("important")) != "",
	}, nil
}

func (e *Emitter) propertyName(n *less.Node) ([]sass.Expr, error) {
	v, _ := n.Attr("name")
	switch name := v.(type) {
	case string:
		return interpolated(name), nil
	case *less.Node, []*less.Node:
		var parts []sass.Expr
		for _, p := range n.Nodes("name") {
			if p.Kind == less.KindVariable {
				parts = append(parts, &sass.Interpolation{Value: &sass.VariableRef{Name: strings.TrimPrefix(p.Name(), "@")}})
				continue
			}
			parts = append(parts, interpolated(less.Text(p))...)
		}
		return mergeLiterals(parts), nil
	}
	return nil, common.NewError(common.ErrorKindUnknownError, "property without name")
}

func (e *Emitter) comment(n *less.Node) sass.Node {
	text := n.Str("value")
	c := &sass.Comment{Text: text, Type: sass.CommentTypeNormal}
	switch {
	case n.Bool("isLineComment"):
		// trailing line comment stays where it was
		c.Type, c.Line = sass.CommentTypeSilent, e.currentLine()
		return c
	case strings.HasPrefix(text, "/*!"):
		c.Type = sass.CommentTypeLoud
	}
	c.Line = e.nextLine()
	return c
}

func (e *Emitter) media(n *less.Node, ctx emitContext) (sass.Node, error) {
	m := &sass.Media{Position: sass.Position{Line: e.nextLine()}}
	features := n.Node("features")
	queries := []*less.Node{features}
	if features != nil && features.Kind == less.KindValue {
		queries = features.Nodes("value")
	}
	for i, q := range queries {
		if q == nil {
			continue
		}
		if i > 0 {
			m.Query = appendLiteral(m.Query, ", ")
		}
		x, err := e.expr(q, ctx.inMedia())
		if err != nil {
			return nil, err
		}
		m.Query = append(m.Query, x)
	}
	if len(m.Query) == 0 {
		return nil, common.NewError(common.ErrorKindUnknownError, "media without query")
	}
	body, err := e.statements(n.Nodes("rules"), emitContext{directive: ctx.directive})
	if err != nil {
		return nil, err
	}
	m.Append(body...)
	return m, nil
}

func (e *Emitter) directive(n *less.Node, ctx emitContext) (sass.Node, error) {
	line := e.nextLine()
	name := strings.TrimPrefix(n.Name(), "@")
	value := n.Node("value")
	_, hasBlock := n.Attr("rules")
	inner := ctx.inDirective(name)

	if name == "supports" {
		cond, err := sass.ParseSupportsCondition(less.Text(value))
		if err != nil {
			return nil, err
		}
		s := &sass.Supports{Position: sass.Position{Line: line}, Condition: cond}
		body, err := e.statements(n.Nodes("rules"), inner)
		if err != nil {
			return nil, err
		}
		s.Append(body...)
		return s, nil
	}

	d := &sass.Directive{Position: sass.Position{Line: line}, Name: name, HasBlock: hasBlock}
	if value != nil {
		d.Value = payload(value)
	}
	if hasBlock {
		body, err := e.statements(n.Nodes("rules"), inner)
		if err != nil {
			return nil, err
		}
		d.Append(body...)
	}
	return d, nil
}

// import options without Sass counterpart
var unsupportedImportOptions = []string{"reference", "inline", "multiple", "plugin"}

func (e *Emitter) importRule(n *less.Node, ctx emitContext) (sass.Node, error) {
	line := e.nextLine()
	if opts, ok := n.Attr("options"); ok {
		if m, ok := opts.(map[string]any); ok {
			for _, o := range unsupportedImportOptions {
				if v, ok := m[o].(bool); ok && v {
					return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: option %s", n.Kind, o)
				}
			}
		}
	}

	p := n.Node("path")
	if p == nil {
		return nil, common.NewError(common.ErrorKindUnknownError, "import without path")
	}
	imp := &sass.Import{Position: sass.Position{Line: line}}
	switch {
	case p.Kind == less.KindQuoted && !isCSSImport(n, p.Str("value")):
		q := p.Str("quote")
		if q == "" {
			q = `"`
		}
		target := p.Str("value")
		if path.Ext(target) == ".less" {
			target = strings.TrimSuffix(target, ".less")
		}
		imp.Path = &sass.String{Value: target, Quote: q}
	default:
		x, err := e.expr(p, ctx)
		if err != nil {
			return nil, err
		}
		imp.Path = x
	}
	if f := n.Node("features"); f != nil {
		imp.Media = payload(f)
	}
	return imp, nil
}

func isCSSImport(n *less.Node, target string) bool {
	if n.Bool("css") {
		return true
	}
	if opts, ok := n.Attr("options"); ok {
		if m, ok := opts.(map[string]any); ok {
			if v, ok := m["css"].(bool); ok && v {
				return true
			}
		}
	}
	return path.Ext(target) == ".css" || strings.Contains(target, "://")
}

func (e *Emitter) mixinDefinition(n *less.Node, ctx emitContext) (sass.Node, error) {
	def := &sass.MixinDef{Position: sass.Position{Line: e.nextLine()}, Name: mixinName(n.Name())}
	for _, p := range n.Nodes("params") {
		name := strings.TrimPrefix(p.Name(), "@")
		switch {
		case p.Bool("variadic"):
			if name == "" {
				name = "rest"
			}
			def.Rest = name
		case name == "":
			// .m(dark; @color) selects mixin by argument value
			return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: pattern matching parameter in %s", n.Kind, n.Name())
		default:
			param := sass.Param{Name: name}
			if v := p.Node("value"); v != nil {
				x, err := e.expr(v, ctx.inVariable())
				if err != nil {
					return nil, err
				}
				param.Default = x
			}
			def.Params = append(def.Params, param)
		}
	}
	if n.Bool("variadic") && def.Rest == "" {
		def.Rest = "rest"
	}

	body, err := e.statements(n.Nodes("rules"), emitContext{})
	if err != nil {
		return nil, err
	}
	def.Append(body...)

	guard := n.Node("condition")
	if guard == nil {
		return def, nil
	}
	// guard can only see parameters from inside the mixin
	cond, err := e.expr(guard, ctx)
	if err != nil {
		return nil, err
	}
	wrap := &sass.If{Position: sass.Position{Line: def.Line}, Condition: cond}
	wrap.Children, def.Children = def.Children, nil
	def.Append(wrap)
	return def, nil
}

func (e *Emitter) mixinCall(n *less.Node, ctx emitContext) (sass.Node, error) {
	line := e.nextLine()
	sel := n.Node("selector")
	var elements []*less.Node
	if sel != nil {
		elements = sel.Nodes("elements")
	}
	if len(elements) != 1 {
		return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: namespaced mixin %s", n.Kind, less.Text(sel))
	}
	if strings.TrimSpace(n.Str("important")) != "" || n.Bool("important") {
		return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: !important mixin call", n.Kind)
	}
	name := mixinName(less.Text(elements[0]))
	if !e.mixins[name] {
		return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: %s is not a mixin", n.Kind, strings.TrimSpace(less.Text(elements[0])))
	}

	inc := &sass.Include{Position: sass.Position{Line: line}, Name: name}
	for _, a := range n.Nodes("arguments") {
		if a.Bool("expand") {
			return nil, common.NewError(common.ErrorKindFeatureConversionError, "Unsupported feature when converting %s: argument expansion", n.Kind)
		}
		x, err := e.expr(a.Node("value"), ctx.inVariable())
		if err != nil {
			return nil, err
		}
		inc.Args = append(inc.Args, sass.Arg{Name: strings.TrimPrefix(a.Name(), "@"), Value: x})
	}
	return inc, nil
}

var mixinNameRe = regexp.MustCompile(`[^\w-]+`)

// mixinName turns Less mixin selector (".m", "#m") into Sass identifier.
func mixinName(selector string) string {
	s := strings.TrimLeft(strings.TrimSpace(selector), ".#")
	s = strings.TrimSuffix(s, "()")
	return mixinNameRe.ReplaceAllString(s, "-")
}

// interpolated splits text into literal parts and interpolated variables.
func interpolated(s string) []sass.Expr {
	var parts []sass.Expr
	last := 0
	for _, m := range less.InterpolationRe.FindAllStringSubmatchIndex(s, -1) {
		parts = appendLiteral(parts, s[last:m[0]])
		parts = append(parts, &sass.Interpolation{Value: &sass.VariableRef{Name: s[m[2]:m[3]]}})
		last = m[1]
	}
	return appendLiteral(parts, s[last:])
}

// appendLiteral adds text merging it with preceding literal.
func appendLiteral(parts []sass.Expr, s string) []sass.Expr {
	if s == "" {
		return parts
	}
	if len(parts) > 0 {
		if lit, ok := parts[len(parts)-1].(*sass.String); ok && lit.Quote == "" {
			parts[len(parts)-1] = &sass.String{Value: lit.Value + s}
			return parts
		}
	}
	return append(parts, &sass.String{Value: s})
}

func mergeLiterals(parts []sass.Expr) []sass.Expr {
	out := make([]sass.Expr, 0, len(parts))
	for _, p := range parts {
		if lit, ok := p.(*sass.String); ok && lit.Quote == "" {
			out = appendLiteral(out, lit.Value)
			continue
		}
		out = append(out, p)
	}
	return out
}

// payload renders node as text in which variables become interpolations.
// Used where Sass expects raw text: directive preludes and media queries.
func payload(n *less.Node) []sass.Expr {
	c := n.Clone()
	var vars []*less.Node
	c.Walk(func(x *less.Node) bool {
		if x.Kind == less.KindVariable {
			vars = append(vars, x)
		}
		return true
	})
	for _, v := range vars {
		kw := less.NewKeyword(fmt.Sprintf("@{%s}", strings.TrimPrefix(v.Name(), "@")))
		if p := v.Parent(); p != nil {
			p.ReplaceChild(v, kw)
		} else {
			c = kw
		}
	}
	return interpolated(less.Text(c))
}
