package tform

// Operator is a bidirectional mapping between a container type I and a
// projected sub-type O. Forward reads the projection out of a container;
// Backward writes a projected value into a prior container, returning the new
// container.
//
// Lawful operators satisfy the lens laws:
//
//	Forward(Backward(o, i)) == o   (what you write is what you read back)
//	Backward(Forward(i), i) == i   (writing back the read is a no-op)
//
// The laws are not enforced; Narrow and Or are deliberately non-lawful
// (their Backward is a widening re-injection, so information lost by Forward
// stays lost on write-back). Callers supplying such operators accept
// lossy-write semantics.
type Operator[I, O any] struct {
	Forward  func(I) O
	Backward func(O, I) I
}

// OperatorWithPath bundles an Operator with the path segments locating O
// within I's structural path space. An empty Path means the projection has no
// nameable structural location (a pure value transform).
type OperatorWithPath[I, O any] struct {
	Operator[I, O]
	Path Path
}

// Transform builds a pathless value-transform operator from a forward/back
// function pair. Backward ignores the prior container entirely.
func Transform[I, O any](to func(I) O, back func(O) I) OperatorWithPath[I, O] {
	return OperatorWithPath[I, O]{
		Operator: Operator[I, O]{
			Forward:  to,
			Backward: func(o O, _ I) I { return back(o) },
		},
	}
}

// Narrow builds a same-type narrowing operator (clamping, coercion,
// defaulting). Backward passes the narrowed value through unchanged, so
// writes permanently lose whatever Forward discarded.
func Narrow[T any](to func(T) T) OperatorWithPath[T, T] {
	return OperatorWithPath[T, T]{
		Operator: Operator[T, T]{
			Forward:  to,
			Backward: func(o T, _ T) T { return o },
		},
	}
}

// Or builds a defaulting operator over a pointer: Forward substitutes def for
// nil, Backward boxes the value. Whether the original was nil is lost on
// write-back.
func Or[T any](def T) OperatorWithPath[*T, T] {
	return OperatorWithPath[*T, T]{
		Operator: Operator[*T, T]{
			Forward: func(p *T) T {
				if p == nil {
					return def
				}
				return *p
			},
			Backward: func(o T, _ *T) *T {
				v := o
				return &v
			},
		},
	}
}

// MapKey builds a lens into a string-keyed map. A missing key (or nil map)
// reads as the zero value; writing copies the map and sets the key.
func MapKey[V any](key string) OperatorWithPath[map[string]V, V] {
	return OperatorWithPath[map[string]V, V]{
		Operator: Operator[map[string]V, V]{
			Forward: func(m map[string]V) V {
				return m[key]
			},
			Backward: func(v V, m map[string]V) map[string]V {
				out := make(map[string]V, len(m)+1)
				for k, prev := range m {
					out[k] = prev
				}
				out[key] = v
				return out
			},
		},
		Path: Path{Key(key)},
	}
}

// At builds a lens into a slice element. An out-of-range read yields the zero
// value; a write copies the slice, padding with zero values when the index is
// past the end. Negative indexes read zero and write as a no-op.
func At[E any](i int) OperatorWithPath[[]E, E] {
	return OperatorWithPath[[]E, E]{
		Operator: Operator[[]E, E]{
			Forward: func(s []E) E {
				if i < 0 || i >= len(s) {
					var zero E
					return zero
				}
				return s[i]
			},
			Backward: func(e E, s []E) []E {
				if i < 0 {
					return s
				}
				n := len(s)
				if i >= n {
					n = i + 1
				}
				out := make([]E, n)
				copy(out, s)
				out[i] = e
				return out
			},
		},
		Path: Path{Index(i)},
	}
}

// Compose chains two operators into one: Forward reads through both,
// Backward re-injects through b and then a, and the paths concatenate. This
// uniformity is what lets Pipe have a single implementation regardless of
// which constructor produced the operator.
func Compose[I, M, O any](a OperatorWithPath[I, M], b OperatorWithPath[M, O]) OperatorWithPath[I, O] {
	return OperatorWithPath[I, O]{
		Operator: Operator[I, O]{
			Forward: func(i I) O { return b.Forward(a.Forward(i)) },
			Backward: func(o O, i I) I {
				m := a.Forward(i)
				return a.Backward(b.Backward(o, m), i)
			},
		},
		Path: a.Path.Join(b.Path),
	}
}
