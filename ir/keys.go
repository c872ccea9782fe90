package ir

import (
	"fmt"
	"strings"
)

// Sep joins nested object keys into dotted paths. It is reserved: a raw
// key name must not contain it.
const Sep = "."

// DeepKeys returns every dotted key path of the object tree rooted at y,
// parent before children, in document order. Array elements are not
// addressable by key and are not descended into.
func DeepKeys(y *Node) []string {
	var res []string
	if y == nil || y.Type != ObjectType {
		return res
	}
	var walk func(prefix string, obj *Node)
	walk = func(prefix string, obj *Node) {
		for i := range obj.Fields {
			key := obj.Fields[i].String
			full := key
			if prefix != "" {
				full = prefix + Sep + key
			}
			res = append(res, full)
			if obj.Values[i].Type == ObjectType {
				walk(full, obj.Values[i])
			}
		}
	}
	walk("", y)
	return res
}

// GetPath returns the node at the dotted path below y, matching each
// segment against the key's string image, or nil if any segment is absent.
func GetPath(y *Node, path string) *Node {
	if y == nil || path == "" {
		return y
	}
	res := y
	for seg := range strings.SplitSeq(path, Sep) {
		if res.Type != ObjectType {
			return nil
		}
		res = Get(res, seg)
		if res == nil {
			return nil
		}
	}
	return res
}

// SetPath sets the value at the dotted path below root, creating
// intermediate objects as needed. Existing intermediate values that are
// not objects are an error; nothing is modified in that case.
func SetPath(root *Node, path string, val *Node) error {
	if root.Type != ObjectType {
		return fmt.Errorf("set %q: root is %s, not Object", path, root.Type)
	}
	segs := strings.Split(path, Sep)
	obj := root
	for _, seg := range segs[:len(segs)-1] {
		next := Get(obj, seg)
		if next == nil {
			next = &Node{Type: ObjectType}
			appendField(obj, seg, next)
		}
		if next.Type != ObjectType {
			return fmt.Errorf("set %q: %q is %s, not Object", path, seg, next.Type)
		}
		obj = next
	}
	last := segs[len(segs)-1]
	for i := range obj.Fields {
		if obj.Fields[i].String != last {
			continue
		}
		val.Parent = obj
		val.ParentIndex = i
		val.ParentField = last
		obj.Values[i] = val
		return nil
	}
	appendField(obj, last, val)
	return nil
}

func appendField(obj *Node, key string, val *Node) {
	i := len(obj.Fields)
	field := &Node{
		Parent:      obj,
		ParentIndex: i,
		ParentField: key,
		Type:        StringType,
		String:      key,
	}
	val.Parent = obj
	val.ParentIndex = i
	val.ParentField = key
	obj.Fields = append(obj.Fields, field)
	obj.Values = append(obj.Values, val)
}
