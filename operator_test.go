package tform_test

import (
	"strconv"
	"strings"
	"testing"

	tform "github.com/sampbarrow/tform"
)

func TestTransform(t *testing.T) {
	op := tform.Transform(
		func(n int) string { return strconv.Itoa(n) },
		func(s string) int { n, _ := strconv.Atoi(s); return n },
	)
	if len(op.Path) != 0 {
		t.Fatalf("transform must not contribute path segments, got %v", op.Path)
	}
	if got := op.Forward(42); got != "42" {
		t.Fatalf("forward: %q", got)
	}
	if got := op.Backward("7", 42); got != 7 {
		t.Fatalf("backward: %d", got)
	}
}

func TestNarrow_LossyByConstruction(t *testing.T) {
	clamp := tform.Narrow(func(n int) int {
		if n < 0 {
			return 0
		}
		return n
	})
	// forward∘backward is identity on the narrowed domain...
	if got := clamp.Forward(clamp.Backward(5, -3)); got != 5 {
		t.Fatalf("expected round trip on narrowed domain, got %d", got)
	}
	// ...but the original wide value is gone after a write.
	if got := clamp.Backward(clamp.Forward(-3), -3); got != 0 {
		t.Fatalf("narrowing should lose the wide value, got %d", got)
	}
}

func TestOr_DefaultsNil(t *testing.T) {
	op := tform.Or("fallback")
	if got := op.Forward(nil); got != "fallback" {
		t.Fatalf("nil should read as default, got %q", got)
	}
	s := "present"
	if got := op.Forward(&s); got != "present" {
		t.Fatalf("non-nil should read through, got %q", got)
	}
	back := op.Backward("written", nil)
	if back == nil || *back != "written" {
		t.Fatalf("backward should box the value, got %v", back)
	}
}

func TestMapKey(t *testing.T) {
	op := tform.MapKey[int]("count")
	if !op.Path.Equal(tform.Path{tform.Key("count")}) {
		t.Fatalf("unexpected path: %v", op.Path)
	}
	if got := op.Forward(nil); got != 0 {
		t.Fatalf("missing key should read zero, got %d", got)
	}
	orig := map[string]int{"count": 1, "other": 9}
	next := op.Backward(5, orig)
	if next["count"] != 5 || next["other"] != 9 {
		t.Fatalf("unexpected write result: %v", next)
	}
	if orig["count"] != 1 {
		t.Fatalf("backward must not mutate the prior container")
	}
}

func TestAt(t *testing.T) {
	op := tform.At[string](1)
	if !op.Path.Equal(tform.Path{tform.Index(1)}) {
		t.Fatalf("unexpected path: %v", op.Path)
	}
	if got := op.Forward([]string{"only"}); got != "" {
		t.Fatalf("out-of-range read should be zero, got %q", got)
	}
	orig := []string{"a", "b", "c"}
	next := op.Backward("B", orig)
	if next[1] != "B" || orig[1] != "b" {
		t.Fatalf("write should copy: next=%v orig=%v", next, orig)
	}
	// writing past the end pads with zero values
	padded := tform.At[string](3).Backward("d", []string{"a"})
	if len(padded) != 4 || padded[3] != "d" || padded[1] != "" {
		t.Fatalf("unexpected padding: %v", padded)
	}
}

func TestProp_LensLaws(t *testing.T) {
	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	op := tform.Prop(func(u *user) *string { return &u.Name })
	u := user{Name: "ada", Age: 36}

	// get/put: writing back the read is a no-op
	if got := op.Backward(op.Forward(u), u); got != u {
		t.Fatalf("no-op write law violated: %+v", got)
	}
	// put/get: what you write is what you read back
	if got := op.Forward(op.Backward("grace", u)); got != "grace" {
		t.Fatalf("round-trip law violated: %q", got)
	}
	// sibling fields untouched
	if got := op.Backward("grace", u); got.Age != 36 {
		t.Fatalf("write clobbered sibling field: %+v", got)
	}
}

func TestCompose(t *testing.T) {
	type inner struct {
		B int `json:"b"`
	}
	type outer struct {
		A inner `json:"a"`
	}
	op := tform.Compose(
		tform.Prop(func(o *outer) *inner { return &o.A }),
		tform.Prop(func(i *inner) *int { return &i.B }),
	)
	if !op.Path.Equal(tform.Path{tform.Key("a"), tform.Key("b")}) {
		t.Fatalf("composed path mismatch: %v", op.Path)
	}
	o := outer{A: inner{B: 1}}
	if got := op.Forward(o); got != 1 {
		t.Fatalf("composed forward: %d", got)
	}
	if got := op.Backward(2, o); got.A.B != 2 {
		t.Fatalf("composed backward: %+v", got)
	}
	// composition of lawful lenses stays lawful
	if got := op.Backward(op.Forward(o), o); got != o {
		t.Fatalf("composed no-op write law violated: %+v", got)
	}
}

func TestTransform_Chained(t *testing.T) {
	upper := tform.Transform(strings.ToUpper, strings.ToLower)
	op := tform.Compose(upper, tform.Narrow(func(s string) string { return strings.TrimSpace(s) }))
	if got := op.Forward("  hi "); got != "HI" {
		t.Fatalf("forward: %q", got)
	}
	if got := op.Backward("YO", "  hi "); got != "yo" {
		t.Fatalf("backward: %q", got)
	}
}
