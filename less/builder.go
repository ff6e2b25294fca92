package less

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"l2s/common"
)

// discriminator field parser puts into every structural object
const classField = "class"

// Builder converts parser JSON object graph into Node tree.
type Builder struct {
	log *zap.Logger
	// rejected fields by "Kind.field", reported once per build
	rejected map[string]int
}

func NewBuilder(log *zap.Logger) *Builder {
	return &Builder{log: log.Named("builder")}
}

// Build decodes parser output and builds the tree. When parser reported
// a problem the result is SyntaxError or ImportNotFoundError.
func (b *Builder) Build(data []byte) (*Node, error) {
	var graph any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&graph); err != nil {
		return nil, common.WrapError(common.ErrorKindUnknownError, err, "unable to decode parser output")
	}
	return b.BuildGraph(graph)
}

// BuildGraph builds the tree from already decoded JSON value.
func (b *Builder) BuildGraph(graph any) (*Node, error) {
	obj, ok := graph.(map[string]any)
	if !ok || !isDiscriminated(obj) {
		return nil, common.NewError(common.ErrorKindUnknownError, "parser output is not a node object")
	}
	if obj[classField] == "error" {
		return nil, parserError(obj)
	}

	b.rejected = make(map[string]int)
	root, err := b.build(obj)
	if err != nil {
		return nil, err
	}
	if len(b.rejected) > 0 {
		keys := slices.Sorted(maps.Keys(b.rejected))
		b.log.Debug("Unknown fields rejected", zap.Strings("fields", keys))
	}
	return root, nil
}

func isDiscriminated(obj map[string]any) bool {
	_, ok := obj[classField].(string)
	return ok
}

func (b *Builder) build(obj map[string]any) (*Node, error) {
	kind, err := kindByName(obj[classField].(string))
	if err != nil {
		return nil, err
	}
	n := NewNode(kind)

	for _, fd := range schema[kind] {
		v, ok := obj[fd.name]
		if !ok {
			continue
		}
		switch fd.role {
		case roleIgnored:
			continue
		case roleRecords:
			if err := b.buildRecords(n, fd.name, v); err != nil {
				return nil, err
			}
		default:
			if err := b.buildField(n, fd.name, v); err != nil {
				return nil, err
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(obj)) {
		if ignoredEverywhere[name] {
			continue
		}
		if _, known := lookupField(kind, name); known {
			continue
		}
		b.rejected[kind.String()+"."+name]++
	}
	return n, nil
}

func (b *Builder) buildField(n *Node, name string, v any) error {
	switch val := v.(type) {
	case map[string]any:
		if !isDiscriminated(val) {
			n.Set(name, val)
			return nil
		}
		child, err := b.build(val)
		if err != nil {
			return err
		}
		n.SetNode(name, child)
	case []any:
		if len(val) == 0 {
			n.Set(name, val)
			return nil
		}
		if first, ok := val[0].(map[string]any); !ok || !isDiscriminated(first) {
			n.Set(name, val)
			return nil
		}
		children := make([]*Node, 0, len(val))
		for i, e := range val {
			if e == nil {
				continue
			}
			obj, ok := e.(map[string]any)
			if !ok || !isDiscriminated(obj) {
				return common.NewError(common.ErrorKindUnknownError,
					"element %d of %s.%s is not a node", i, n.Kind, name)
			}
			child, err := b.build(obj)
			if err != nil {
				return err
			}
			children = append(children, child)
		}
		n.SetNodes(name, children)
	default:
		n.Set(name, v)
	}
	return nil
}

// buildRecords turns mixin parameters and arguments into Param nodes.
func (b *Builder) buildRecords(n *Node, name string, v any) error {
	list, ok := v.([]any)
	if !ok {
		n.Set(name, v)
		return nil
	}
	params := make([]*Node, 0, len(list))
	for _, e := range list {
		obj, ok := e.(map[string]any)
		if !ok {
			continue
		}
		p := NewNode(KindParam)
		for _, fd := range schema[KindParam] {
			if fv, ok := obj[fd.name]; ok {
				if err := b.buildField(p, fd.name, fv); err != nil {
					return err
				}
			}
		}
		params = append(params, p)
	}
	// parameters are always kept as sequence, arity matters
	n.Set(name, params)
	for _, p := range params {
		n.AppendChild(p)
	}
	return nil
}

// parserError converts parser error object into taxonomy error.
func parserError(obj map[string]any) error {
	kind, prefix := common.ErrorKindSyntaxError, "Syntax error found in"
	if obj["type"] == "File" {
		kind, prefix = common.ErrorKindImportNotFoundError, "The specified import file has not been found in"
	}
	msg := fmt.Sprintf("%s %v: %v on line %v, index %v",
		prefix, value(obj, "filename"), value(obj, "message"), value(obj, "line"), value(obj, "index"))
	if cl, ok := obj["callLine"]; ok && cl != nil {
		msg += fmt.Sprintf(". Called from line %v", scalar(cl))
	}
	return common.NewError(kind, "%s", msg)
}

func value(obj map[string]any, key string) any {
	v, ok := obj[key]
	if !ok || v == nil {
		return "unknown"
	}
	return scalar(v)
}

// scalar prints whole numbers without fraction.
func scalar(v any) any {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int64(f)
	}
	return v
}
