// Package parse reads YAML documents into ir.Node trees.
//
// Decoding is delegated to github.com/goccy/go-yaml with ordered maps
// enabled, so object fields keep the document's declaration order and
// numeric mapping keys keep their parsed type.
package parse

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/croabeast/yaml-api/ir"
)

var ErrParse = errors.New("parse error")

// Bytes parses a single YAML document. Empty input yields a null node.
func Bytes(src []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(src, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fromValue(v)
}

// File parses the YAML document stored at path.
func File(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Bytes(d)
}

func fromValue(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			key, err := fromKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromValue(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, 0, len(x))
		for _, elt := range x {
			val, err := fromValue(elt)
			if err != nil {
				return nil, err
			}
			vals = append(vals, val)
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrParse, v)
	}
}

// fromKey builds a field key node keeping both the parsed key value and
// its string image, so numeric keys stay addressable by dotted path.
func fromKey(k any) (*ir.Node, error) {
	switch x := k.(type) {
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.IntKey(int64(x)), nil
	case int64:
		return ir.IntKey(x), nil
	case uint64:
		return ir.IntKey(int64(x)), nil
	case float64:
		return ir.FloatKey(x), nil
	case bool:
		n := ir.FromBool(x)
		n.String = strconv.FormatBool(x)
		return n, nil
	case nil:
		n := ir.Null()
		n.String = "null"
		return n, nil
	default:
		return nil, fmt.Errorf("%w: unsupported key %T", ErrParse, k)
	}
}
