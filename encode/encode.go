// Package encode renders ir.Node values back to YAML text.
//
// Serialization is delegated to github.com/goccy/go-yaml: block style,
// 2-space indent, Unix line endings. The merge engine renders one entry at
// a time with Entry, which is why this package exists at all; Document is
// the plain whole-tree form used when saving a configuration.
package encode

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/croabeast/yaml-api/ir"
)

var ErrEncode = errors.New("encode error")

func marshalOpts() []yaml.EncodeOption {
	return []yaml.EncodeOption{
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.UseLiteralStyleIfMultiline(true),
	}
}

// Value renders a node on its own, ending with a newline. Sequences come
// out in block style, flush with the left margin.
func Value(node *ir.Node) (string, error) {
	d, err := yaml.MarshalWithOptions(valueOf(node), marshalOpts()...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return string(d), nil
}

// Entry renders a single "key: value" entry, ending with a newline, by
// marshaling a disposable one-item container. Mapping and sequence values
// continue on following lines.
func Entry(key string, node *ir.Node) (string, error) {
	one := yaml.MapSlice{{Key: key, Value: valueOf(node)}}
	d, err := yaml.MarshalWithOptions(one, marshalOpts()...)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrEncode, key, err)
	}
	return string(d), nil
}

// Document renders a whole tree, ending with a newline.
func Document(node *ir.Node) (string, error) {
	return Value(node)
}

// valueOf lowers a node to the plain Go value goccy/go-yaml marshals.
// Objects become yaml.MapSlice so field order survives.
func valueOf(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return 0
	case ir.ArrayType:
		vals := make([]any, len(node.Values))
		for i, v := range node.Values {
			vals[i] = valueOf(v)
		}
		return vals
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			ms[i] = yaml.MapItem{
				Key:   keyOf(node.Fields[i]),
				Value: valueOf(node.Values[i]),
			}
		}
		return ms
	default:
		return nil
	}
}

func keyOf(field *ir.Node) any {
	switch field.Type {
	case ir.NumberType:
		if field.Int64 != nil {
			return *field.Int64
		}
		if field.Float64 != nil {
			return *field.Float64
		}
	case ir.BoolType:
		return field.Bool
	case ir.NullType:
		return nil
	}
	return field.String
}
