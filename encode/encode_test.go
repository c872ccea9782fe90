package encode

import (
	"testing"

	"github.com/croabeast/yaml-api/ir"
)

func TestEntryScalar(t *testing.T) {
	tests := []struct {
		key  string
		node *ir.Node
		want string
	}{
		{"b", ir.FromInt(5), "b: 5\n"},
		{"f", ir.FromFloat(2.5), "f: 2.5\n"},
		{"s", ir.FromString("hi"), "s: hi\n"},
		{"t", ir.FromBool(true), "t: true\n"},
		{"n", ir.Null(), "n: null\n"},
	}
	for _, tt := range tests {
		got, err := Entry(tt.key, tt.node)
		if err != nil {
			t.Fatalf("Entry(%s): %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("Entry(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestEntrySequence(t *testing.T) {
	got, err := Entry("l", ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromInt(2)}))
	if err != nil {
		t.Fatal(err)
	}
	// Sequences stay flush with their key, not indented below it.
	if want := "l:\n- a\n- 2\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEntryMapping(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("y"), Val: ir.FromInt(2)},
		{Key: ir.FromString("x"), Val: ir.FromInt(1)},
	})
	got, err := Entry("m", obj)
	if err != nil {
		t.Fatal(err)
	}
	if want := "m:\n  y: 2\n  x: 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestValueKeepsFieldOrder(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromInt(1)},
		{Key: ir.FromString("a"), Val: ir.FromInt(2)},
	})
	got, err := Value(obj)
	if err != nil {
		t.Fatal(err)
	}
	if want := "b: 1\na: 2\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestValueNumericKeys(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.IntKey(1), Val: ir.FromString("one")},
		{Key: ir.FloatKey(2.5), Val: ir.FromString("half")},
	})
	got, err := Value(obj)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1: one\n2.5: half\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestValueNil(t *testing.T) {
	got, err := Value(nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := "null\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
