package update

import (
	"strconv"

	"github.com/croabeast/yaml-api/ir"
)

// resolveKey returns the index of the field of obj addressed by a textual
// path segment. Structured parsers may store purely numeric keys as typed
// numbers, so after the literal string match the segment is coerced, in
// order, to float32, float64, int32 and int64. Returns -1 when nothing
// matches; callers treat that as fatal, never as a silent skip.
func resolveKey(obj *ir.Node, seg string) int {
	if obj == nil || obj.Type != ir.ObjectType {
		return -1
	}
	for i, f := range obj.Fields {
		if f.Type == ir.StringType && f.String == seg {
			return i
		}
	}
	if f, err := strconv.ParseFloat(seg, 32); err == nil {
		if i := floatField(obj, float64(float32(f))); i >= 0 {
			return i
		}
	}
	if f, err := strconv.ParseFloat(seg, 64); err == nil {
		if i := floatField(obj, f); i >= 0 {
			return i
		}
	}
	if n, err := strconv.ParseInt(seg, 10, 32); err == nil {
		if i := intField(obj, n); i >= 0 {
			return i
		}
	}
	if n, err := strconv.ParseInt(seg, 10, 64); err == nil {
		if i := intField(obj, n); i >= 0 {
			return i
		}
	}
	return -1
}

func floatField(obj *ir.Node, v float64) int {
	for i, f := range obj.Fields {
		if f.Type == ir.NumberType && f.Float64 != nil && *f.Float64 == v {
			return i
		}
	}
	return -1
}

func intField(obj *ir.Node, v int64) int {
	for i, f := range obj.Fields {
		if f.Type == ir.NumberType && f.Int64 != nil && *f.Int64 == v {
			return i
		}
	}
	return -1
}
