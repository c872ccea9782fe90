// Package unitmap turns parsed configuration subsections into units
// carrying access-control metadata, and groups them by priority into
// ordered collections.
package unitmap

import (
	"slices"
	"strings"

	"github.com/croabeast/yaml-api/ir"
)

// Unit is one configuration subsection with the conventional
// "permission", "group" and "priority" keys.
type Unit struct {
	section *ir.Node
}

// Of wraps a section node. The node is expected to be an object.
func Of(section *ir.Node) Unit {
	return Unit{section: section}
}

func (u Unit) Section() *ir.Node {
	return u.section
}

// Name returns the key the section is stored under.
func (u Unit) Name() string {
	if u.section == nil {
		return ""
	}
	return u.section.ParentField
}

// Permission returns the unit's permission, defaulting to "DEFAULT".
func (u Unit) Permission() string {
	n := ir.GetPath(u.section, "permission")
	if n == nil || n.Type != ir.StringType || n.String == "" {
		return "DEFAULT"
	}
	return n.String
}

// Group returns the unit's group, or "".
func (u Unit) Group() string {
	n := ir.GetPath(u.section, "group")
	if n == nil || n.Type != ir.StringType {
		return ""
	}
	return n.String
}

// Priority returns the unit's priority. Without an explicit value it is
// 0 for the default permission and 1 otherwise.
func (u Unit) Priority() int {
	n := ir.GetPath(u.section, "priority")
	if n != nil && n.Type == ir.NumberType && n.Int64 != nil {
		return int(*n.Int64)
	}
	if strings.EqualFold(u.Permission(), "DEFAULT") {
		return 0
	}
	return 1
}

// HasPermission applies the host's permission predicate to this unit.
func (u Unit) HasPermission(has func(string) bool) bool {
	return has(u.Permission())
}

// InGroup reports whether the unit declares a group and the predicate
// accepts it.
func (u Unit) InGroup(in func(string) bool) bool {
	g := u.Group()
	return g != "" && in(g)
}

// InGroupOrAny reports whether the unit declares no group, or the
// predicate accepts the declared one.
func (u Unit) InGroupOrAny(in func(string) bool) bool {
	g := u.Group()
	return g == "" || in(g)
}

// ByPriority groups items into buckets keyed by priority, preserving
// input order within each bucket.
func ByPriority[T any](items []T, prio func(T) int) map[int][]T {
	res := map[int][]T{}
	for _, it := range items {
		p := prio(it)
		res[p] = append(res[p], it)
	}
	return res
}

// GroupUnits groups units by their declared priority.
func GroupUnits(units []Unit) map[int][]Unit {
	return ByPriority(units, Unit.Priority)
}

// Priorities returns the grouping's keys, ascending or descending.
func Priorities[T any](m map[int][]T, ascending bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	if !ascending {
		slices.Reverse(keys)
	}
	return keys
}

// Flatten concatenates the grouping's buckets in the given key order.
func Flatten[T any](m map[int][]T, keys []int) []T {
	var res []T
	for _, k := range keys {
		res = append(res, m[k]...)
	}
	return res
}

// CopyTo merges the grouping's buckets into dst, appending to any buckets
// already there, and returns dst. A nil dst is allocated.
func CopyTo[T any](src, dst map[int][]T) map[int][]T {
	if dst == nil {
		dst = make(map[int][]T, len(src))
	}
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
	return dst
}

// Dedup converts a list to its set representation, keeping first
// occurrences in order.
func Dedup[T comparable](items []T) []T {
	seen := make(map[T]bool, len(items))
	res := make([]T, 0, len(items))
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		res = append(res, it)
	}
	return res
}
