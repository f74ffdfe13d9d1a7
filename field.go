package tform

// FocusStatus names the two focus states a host can toggle between.
type FocusStatus string

const (
	Focused FocusStatus = "focused"
	Blurred FocusStatus = "blurred"
)

// FieldInput is the contract a Field needs from its upstream value source,
// typically supplied by a host state layer. Both mutators take functional
// updaters: every write is expressed relative to whatever the value is when
// the update is applied, never a captured snapshot. Hosts must preserve this
// contract; collapsing it to last-write-wins setters breaks composition under
// rapid consecutive updates from sibling fields.
type FieldInput[T any] struct {
	Path      Path
	Value     T
	Disabled  bool
	Errors    FieldErrors
	SetValue  func(update func(prev T) T)
	SetErrors func(update func(prev FieldErrors) FieldErrors)
	Blur      func()
	Commit    func()
	Focus     func()
}

// Field is a composable handle onto a sub-part of a form value: a read-only
// value snapshot, write access funneled through the upstream source, and the
// error subset scoped to this field's path.
//
// A Field never mutates in place. Calling a mutator updates the upstream
// source; the host produces a fresh snapshot by rebuilding the field from
// updated input. Derived fields hold closures over their parent's mutators,
// not the parent itself.
type Field[T any] struct {
	path      Path
	value     T
	disabled  bool
	errors    FieldErrors
	setValue  func(func(T) T)
	setErrors func(func(FieldErrors) FieldErrors)
	blur      func()
	commit    func()
	focus     func()
}

// FromInput constructs a root Field. Nil callbacks are replaced with no-ops
// so a partially wired input never panics.
func FromInput[T any](in FieldInput[T]) Field[T] {
	setValue := in.SetValue
	if setValue == nil {
		setValue = func(func(T) T) {}
	}
	setErrors := in.SetErrors
	if setErrors == nil {
		setErrors = func(func(FieldErrors) FieldErrors) {}
	}
	noop := func() {}
	blur, commit, focus := in.Blur, in.Commit, in.Focus
	if blur == nil {
		blur = noop
	}
	if commit == nil {
		commit = noop
	}
	if focus == nil {
		focus = noop
	}
	return Field[T]{
		path:      in.Path,
		value:     in.Value,
		disabled:  in.Disabled,
		errors:    in.Errors,
		setValue:  setValue,
		setErrors: setErrors,
		blur:      blur,
		commit:    commit,
		focus:     focus,
	}
}

// Path returns the accumulated path from the root field.
func (f Field[T]) Path() Path { return append(Path(nil), f.path...) }

// Value returns the current projected value snapshot.
func (f Field[T]) Value() T { return f.value }

// Disabled reports the disabled flag inherited from the root input.
func (f Field[T]) Disabled() bool { return f.disabled }

// Errors returns the errors scoped to this field's path (prefix stripped).
// The returned slice is shared; treat it as read-only.
func (f Field[T]) Errors() FieldErrors { return f.errors }

// SelfErrors returns the errors belonging to this exact field, excluding
// descendants.
func (f Field[T]) SelfErrors() FieldErrors { return f.errors.Self() }

// HasErrors reports whether this field or any descendant has errors.
func (f Field[T]) HasErrors() bool { return len(f.errors) > 0 }

// HasSelfErrors reports whether this exact field has errors.
func (f Field[T]) HasSelfErrors() bool { return len(f.errors.Self()) > 0 }

// Update applies a functional update to this field's value through the
// upstream source.
func (f Field[T]) Update(fn func(prev T) T) { f.setValue(fn) }

// Set replaces this field's value.
func (f Field[T]) Set(v T) { f.setValue(func(T) T { return v }) }

// SetAndCommit replaces the value and immediately commits.
func (f Field[T]) SetAndCommit(v T) {
	f.Set(v)
	f.commit()
}

// UpdateErrors applies a functional update over this field's scoped error
// view. The result is re-prefixed and merged upstream, replacing only this
// field's subtree and preserving sibling errors.
func (f Field[T]) UpdateErrors(fn func(prev FieldErrors) FieldErrors) { f.setErrors(fn) }

// SetErrors replaces this field's scoped errors.
func (f Field[T]) SetErrors(errs FieldErrors) {
	f.setErrors(func(FieldErrors) FieldErrors { return errs })
}

// AddErrors appends errors to this field's scoped view.
func (f Field[T]) AddErrors(more ...FieldError) {
	f.setErrors(func(prev FieldErrors) FieldErrors { return AppendErrors(prev, more...) })
}

// Blur forwards the blur trigger of the root input.
func (f Field[T]) Blur() { f.blur() }

// Commit forwards the commit trigger of the root input.
func (f Field[T]) Commit() { f.commit() }

// Focus forwards the focus trigger of the root input.
func (f Field[T]) Focus() { f.focus() }

// Toggle focuses or blurs depending on status. All fields derived from one
// root share a single focus identity; sub-fields do not track focus
// independently.
func (f Field[T]) Toggle(status FocusStatus) {
	if status == Focused {
		f.focus()
		return
	}
	f.blur()
}

// Pipe derives a new Field by composing f with an operator. Reads flow down
// (op.Forward over the current value); writes flow up (op.Backward applied to
// the latest upstream value at write time, then funneled through the parent's
// functional updater). Errors descend by op.Path; error writes ascend the
// same way. Blur, commit, focus and the disabled flag pass through unchanged.
func Pipe[I, O any](f Field[I], op OperatorWithPath[I, O]) Field[O] {
	forward, backward := op.Forward, op.Backward
	segs := op.Path
	return Field[O]{
		path:     f.path.Join(segs),
		value:    forward(f.value),
		disabled: f.disabled,
		errors:   DescendErrors(f.errors, segs),
		setValue: func(fn func(O) O) {
			f.setValue(func(prev I) I {
				return backward(fn(forward(prev)), prev)
			})
		},
		setErrors: func(fn func(FieldErrors) FieldErrors) {
			f.setErrors(func(prev FieldErrors) FieldErrors {
				next := AscendErrors(fn(DescendErrors(prev, segs)), segs)
				if len(segs) == 0 {
					return next
				}
				merged := make(FieldErrors, 0, len(prev)+len(next))
				for _, e := range prev {
					if !e.Path.HasPrefix(segs) {
						merged = append(merged, e)
					}
				}
				return append(merged, next...)
			})
		},
		blur:   f.blur,
		commit: f.commit,
		focus:  f.focus,
	}
}

// Map derives a read-only projection from a bare forward function. Writes to
// the derived field leave the parent value unchanged.
func Map[I, O any](f Field[I], to func(I) O) Field[O] {
	return Pipe(f, OperatorWithPath[I, O]{
		Operator: Operator[I, O]{
			Forward:  to,
			Backward: func(_ O, prev I) I { return prev },
		},
	})
}

// PropField is shorthand for Pipe(f, Prop(selector)).
func PropField[T, F any](f Field[T], selector func(*T) *F) Field[F] {
	return Pipe(f, Prop(selector))
}

// MapKeyField is shorthand for Pipe(f, MapKey(key)).
func MapKeyField[V any](f Field[map[string]V], key string) Field[V] {
	return Pipe(f, MapKey[V](key))
}

// AtField is shorthand for Pipe(f, At(i)).
func AtField[E any](f Field[[]E], i int) Field[E] {
	return Pipe(f, At[E](i))
}

// TransformField is shorthand for Pipe(f, Transform(to, back)).
func TransformField[I, O any](f Field[I], to func(I) O, back func(O) I) Field[O] {
	return Pipe(f, Transform(to, back))
}

// NarrowField is shorthand for Pipe(f, Narrow(to)).
func NarrowField[T any](f Field[T], to func(T) T) Field[T] {
	return Pipe(f, Narrow(to))
}

// OrField is shorthand for Pipe(f, Or(def)).
func OrField[T any](f Field[*T], def T) Field[T] {
	return Pipe(f, Or(def))
}
