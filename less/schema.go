package less

// fieldRole tells builder what to do with JSON field.
type fieldRole int

const (
	// value is stored, nested discriminated objects are built
	roleData fieldRole = iota
	// array of plain objects with nested nodes, built into Param nodes
	roleRecords
	// dropped without notice
	roleIgnored
)

type fieldSpec struct {
	name string
	role fieldRole
}

func data(names ...string) []fieldSpec {
	specs := make([]fieldSpec, 0, len(names))
	for _, n := range names {
		specs = append(specs, fieldSpec{name: n, role: roleData})
	}
	return specs
}

func with(specs []fieldSpec, role fieldRole, names ...string) []fieldSpec {
	for _, n := range names {
		specs = append(specs, fieldSpec{name: n, role: role})
	}
	return specs
}

// bookkeeping fields parser attaches to many node types
var ignoredEverywhere = map[string]bool{
	"class":              true,
	"type":               true,
	"parent":             true,
	"index":              true,
	"_index":             true,
	"currentFileInfo":    true,
	"_fileInfo":          true,
	"debugInfo":          true,
	"visibilityBlocks":   true,
	"nodeVisible":        true,
	"allowRoot":          true,
	"copyVisibilityInfo": true,
}

// schema lists fields every node kind understands in the order they are
// stored. Anything else found in parser output is rejected.
var schema = map[Kind][]fieldSpec{
	KindRuleset: with(data("selectors", "rules", "root", "firstRoot", "strictImports", "allowImports", "multiMedia", "extendOnEveryPath"),
		roleIgnored, "_lookups", "_rulesets", "_variables", "_properties", "originalRuleset", "paths", "functionRegistry", "evalFirst"),
	KindRule:       data("name", "value", "important", "merge", "variable", "inline"),
	KindValue:      data("value"),
	KindExpression: data("value", "parens", "parensInOp", "noSpacing"),
	KindDimension:  data("value", "unit"),
	KindUnit:       data("numerator", "denominator", "backupUnit"),
	KindColor:      data("rgb", "alpha", "value"),
	KindKeyword:    data("value"),
	KindAnonymous:  with(data("value", "mapLines", "rulesetLike"), roleIgnored, "isVisible"),
	KindQuoted:     data("value", "quote", "escaped"),
	KindVariable:   data("name"),
	KindOperation:  data("op", "operands", "isSpaced"),
	KindCall:       with(data("name", "args"), roleIgnored, "calc"),
	KindUrl:        data("value", "isEvald"),
	KindSelector: with(data("elements", "extendList", "condition", "evaldCondition", "mediaEmpty"),
		roleIgnored, "mixinElements_"),
	KindElement:    with(data("combinator", "value"), roleIgnored, "isVariable"),
	KindCombinator: data("value", "emptyOrWhitespace"),
	KindComment:    data("value", "isLineComment"),
	KindMedia:      data("features", "rules"),
	KindDirective:  data("name", "value", "rules", "isRooted"),
	KindMixinDefinition: with(with(with(data("name", "selectors"), roleRecords, "params"),
		roleData, "condition", "variadic", "arity", "rules", "required", "optionalParameters"),
		roleIgnored, "frames", "_lookups"),
	KindMixinCall: with(with(data("selector"), roleRecords, "arguments"), roleData, "important"),
	KindParam:     data("name", "value", "variadic", "expand"),
	KindParen:     data("value"),
	KindCondition: data("op", "lvalue", "rvalue", "negate"),
	KindImport: with(data("path", "features", "options", "css"),
		roleIgnored, "root", "importedFilename", "skip", "error"),
	KindExtend: with(data("selector", "option"),
		roleIgnored, "object_id", "parent_ids", "allowBefore", "allowAfter", "firstExtendOnThisSelectorPath", "selfSelectors", "ruleset", "hasFoundMatches"),
	KindNegative:          data("value"),
	KindAttribute:         data("key", "op", "value"),
	KindAssignment:        data("key", "value"),
	KindAlpha:             data("value"),
	KindUnicodeDescriptor: data("value"),
	KindJavaScript:        data("expression", "escaped"),
	KindDetachedRuleset:   with(data("ruleset"), roleIgnored, "frames"),
	KindRulesetCall:       data("variable"),
}

func lookupField(kind Kind, name string) (fieldSpec, bool) {
	for _, f := range schema[kind] {
		if f.name == name {
			return f, true
		}
	}
	return fieldSpec{}, false
}
