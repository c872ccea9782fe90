package unitmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/croabeast/yaml-api/parse"
)

func units(t *testing.T, src string) map[string]Unit {
	t.Helper()
	root, err := parse.Bytes([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	res := map[string]Unit{}
	for i := range root.Fields {
		u := Of(root.Values[i])
		res[u.Name()] = u
	}
	return res
}

func TestUnitMetadata(t *testing.T) {
	us := units(t, `vip:
  permission: vip.use
  group: vips
  priority: 3
staff:
  permission: staff.use
basic: {}
`)

	vip := us["vip"]
	if vip.Name() != "vip" {
		t.Errorf("Name = %q", vip.Name())
	}
	if got := vip.Permission(); got != "vip.use" {
		t.Errorf("vip.Permission = %q", got)
	}
	if got := vip.Group(); got != "vips" {
		t.Errorf("vip.Group = %q", got)
	}
	if got := vip.Priority(); got != 3 {
		t.Errorf("vip.Priority = %d, want 3", got)
	}

	// Without an explicit priority: 1 for a real permission, 0 for the
	// default one.
	if got := us["staff"].Priority(); got != 1 {
		t.Errorf("staff.Priority = %d, want 1", got)
	}
	basic := us["basic"]
	if got := basic.Permission(); got != "DEFAULT" {
		t.Errorf("basic.Permission = %q", got)
	}
	if got := basic.Priority(); got != 0 {
		t.Errorf("basic.Priority = %d, want 0", got)
	}
	if got := basic.Group(); got != "" {
		t.Errorf("basic.Group = %q", got)
	}
}

func TestUnitPredicates(t *testing.T) {
	us := units(t, "vip:\n  permission: vip.use\n  group: vips\nbasic: {}\n")
	held := func(perm string) bool { return perm == "vip.use" }
	inVips := func(g string) bool { return g == "vips" }

	if !us["vip"].HasPermission(held) {
		t.Error("vip should pass the permission predicate")
	}
	if us["basic"].HasPermission(held) {
		t.Error("basic should not pass the permission predicate")
	}
	if !us["vip"].InGroup(inVips) {
		t.Error("vip should be in vips")
	}
	if us["basic"].InGroup(inVips) {
		t.Error("basic declares no group; InGroup must fail")
	}
	if !us["basic"].InGroupOrAny(inVips) {
		t.Error("basic declares no group; InGroupOrAny must pass")
	}
}

func TestNilSection(t *testing.T) {
	var u Unit
	if u.Name() != "" || u.Permission() != "DEFAULT" || u.Priority() != 0 {
		t.Errorf("zero Unit = %q %q %d", u.Name(), u.Permission(), u.Priority())
	}
}

func TestGrouping(t *testing.T) {
	root, err := parse.Bytes([]byte(`a:
  priority: 2
b:
  priority: 1
c:
  priority: 2
d: {}
`))
	if err != nil {
		t.Fatal(err)
	}
	var us []Unit
	for i := range root.Fields {
		us = append(us, Of(root.Values[i]))
	}

	m := GroupUnits(us)
	names := func(bucket []Unit) []string {
		var res []string
		for _, u := range bucket {
			res = append(res, u.Name())
		}
		return res
	}
	if d := cmp.Diff([]string{"a", "c"}, names(m[2])); d != "" {
		t.Errorf("bucket 2 (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"b"}, names(m[1])); d != "" {
		t.Errorf("bucket 1 (-want +got):\n%s", d)
	}

	if d := cmp.Diff([]int{0, 1, 2}, Priorities(m, true)); d != "" {
		t.Errorf("ascending (-want +got):\n%s", d)
	}
	desc := Priorities(m, false)
	if d := cmp.Diff([]int{2, 1, 0}, desc); d != "" {
		t.Errorf("descending (-want +got):\n%s", d)
	}

	flat := names(Flatten(m, desc))
	if d := cmp.Diff([]string{"a", "c", "b", "d"}, flat); d != "" {
		t.Errorf("flatten (-want +got):\n%s", d)
	}
}

func TestCopyTo(t *testing.T) {
	src := map[int][]string{1: {"a"}, 2: {"b"}}
	dst := map[int][]string{2: {"x"}}

	got := CopyTo(src, dst)
	if d := cmp.Diff(map[int][]string{1: {"a"}, 2: {"x", "b"}}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	fresh := CopyTo(src, nil)
	if d := cmp.Diff(map[int][]string{1: {"a"}, 2: {"b"}}, fresh); d != "" {
		t.Errorf("nil dst (-want +got):\n%s", d)
	}
}

func TestDedup(t *testing.T) {
	got := Dedup([]string{"a", "b", "a", "c", "b"})
	if d := cmp.Diff([]string{"a", "b", "c"}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if got := Dedup([]string(nil)); len(got) != 0 {
		t.Errorf("Dedup(nil) = %v", got)
	}
}

func TestByPriorityCustom(t *testing.T) {
	m := ByPriority([]int{10, 21, 30, 41}, func(v int) int { return v % 2 })
	if d := cmp.Diff([]int{10, 30}, m[0]); d != "" {
		t.Errorf("even bucket (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]int{21, 41}, m[1]); d != "" {
		t.Errorf("odd bucket (-want +got):\n%s", d)
	}
}
