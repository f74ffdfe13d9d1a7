package tform

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// ErrNoSubmit indicates Submit was called on a form configured without a
// submit function.
var ErrNoSubmit = errors.New("tform: no submit function configured")

// Validator inspects a form value and returns path-addressed errors.
type Validator[T any] func(ctx context.Context, value T) FieldErrors

// SubmitFunc performs the actual submission of a validated value.
type SubmitFunc[T any] func(ctx context.Context, value T) error

// Option configures a Form.
type Option[T any] func(*Form[T])

// WithValidator installs the validator run by Validate and Submit.
func WithValidator[T any](v Validator[T]) Option[T] {
	return func(f *Form[T]) { f.validate = v }
}

// WithSubmit installs the submit function invoked by Submit.
func WithSubmit[T any](fn SubmitFunc[T]) Option[T] {
	return func(f *Form[T]) { f.submit = fn }
}

// WithDisabled marks every field derived from the form as disabled.
func WithDisabled[T any](disabled bool) Option[T] {
	return func(f *Form[T]) { f.disabled = disabled }
}

// Form is a host state container for a form value: it stores the current
// value, the error list, and the submission lifecycle, and hands out root
// Fields wired to its state. All updates funnel through functional updaters
// under a single mutex, so updates from sibling derived fields commute.
type Form[T any] struct {
	mu       sync.Mutex
	value    T
	initial  T
	errs     FieldErrors
	disabled bool

	validate Validator[T]
	submit   SubmitFunc[T]

	submitCount   int
	lastChanged   time.Time
	lastBlurred   time.Time
	lastCommitted time.Time
	lastFocused   time.Time
	lastSubmitted time.Time
}

// New builds a Form around an initial value.
func New[T any](initial T, opts ...Option[T]) *Form[T] {
	f := &Form[T]{value: initial, initial: initial}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Field returns a root Field snapshot bound to the form's current state.
// The snapshot is immutable; call Field again after mutations to observe the
// updated value and errors.
func (f *Form[T]) Field() Field[T] {
	f.mu.Lock()
	in := FieldInput[T]{
		Path:     Path{},
		Value:    f.value,
		Disabled: f.disabled,
		Errors:   f.errs,
		SetValue: func(update func(T) T) {
			f.mu.Lock()
			f.value = update(f.value)
			f.lastChanged = time.Now()
			f.mu.Unlock()
		},
		SetErrors: func(update func(FieldErrors) FieldErrors) {
			f.mu.Lock()
			f.errs = update(f.errs)
			f.mu.Unlock()
		},
		Blur: func() {
			f.mu.Lock()
			f.lastBlurred = time.Now()
			f.mu.Unlock()
		},
		Commit: func() {
			f.mu.Lock()
			f.lastCommitted = time.Now()
			f.mu.Unlock()
		},
		Focus: func() {
			f.mu.Lock()
			f.lastFocused = time.Now()
			f.mu.Unlock()
		},
	}
	f.mu.Unlock()
	return FromInput(in)
}

// Value returns the current form value.
func (f *Form[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue replaces the form value.
func (f *Form[T]) SetValue(v T) { f.UpdateValue(func(T) T { return v }) }

// UpdateValue applies a functional update to the form value.
func (f *Form[T]) UpdateValue(fn func(prev T) T) {
	f.mu.Lock()
	f.value = fn(f.value)
	f.lastChanged = time.Now()
	f.mu.Unlock()
}

// Errors returns the full error list.
func (f *Form[T]) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs
}

// SetErrors replaces the full error list.
func (f *Form[T]) SetErrors(errs FieldErrors) {
	f.mu.Lock()
	f.errs = errs
	f.mu.Unlock()
}

// Validate runs the configured validator and replaces the error list with
// its result. Without a validator it clears the errors.
func (f *Form[T]) Validate(ctx context.Context) FieldErrors {
	validate := f.validate
	var errs FieldErrors
	if validate != nil {
		errs = validate(ctx, f.Value())
	}
	f.SetErrors(errs)
	return errs
}

// CanSubmit reports whether submission is currently allowed: the form is not
// disabled and no blocking (non-temporary) errors are present.
func (f *Form[T]) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.disabled && len(f.errs.Blocking()) == 0
}

// Submit validates, gates on blocking errors, and runs the submit function.
// Validation failures are returned as FieldErrors (errors-as-data, extract
// with AsFieldErrors); temporary errors never block submission.
func (f *Form[T]) Submit(ctx context.Context) error {
	if f.submit == nil {
		return ErrNoSubmit
	}
	errs := f.Validate(ctx)
	if blocking := errs.Blocking(); len(blocking) > 0 {
		return blocking
	}
	if err := f.submit(ctx, f.Value()); err != nil {
		return err
	}
	f.mu.Lock()
	f.submitCount++
	f.lastSubmitted = time.Now()
	f.mu.Unlock()
	return nil
}

// Dirty reports whether the value differs from the initial value, compared
// via canonical JSON encoding.
func (f *Form[T]) Dirty() bool {
	f.mu.Lock()
	initial, value := f.initial, f.value
	f.mu.Unlock()
	a, errA := json.Marshal(initial)
	b, errB := json.Marshal(value)
	if errA != nil || errB != nil {
		// Unencodable values are conservatively treated as dirty.
		return true
	}
	return !bytes.Equal(a, b)
}

// Reset restores the initial value and clears all errors.
func (f *Form[T]) Reset() {
	f.mu.Lock()
	f.value = f.initial
	f.errs = nil
	f.lastChanged = time.Now()
	f.mu.Unlock()
}

// SubmitCount returns how many successful submissions have completed.
func (f *Form[T]) SubmitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitCount
}

// LastChanged returns when the value last changed (zero if never).
func (f *Form[T]) LastChanged() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastChanged
}

// LastBlurred returns when a field was last blurred (zero if never).
func (f *Form[T]) LastBlurred() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBlurred
}

// LastCommitted returns when a field was last committed (zero if never).
func (f *Form[T]) LastCommitted() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCommitted
}

// LastFocused returns when a field was last focused (zero if never).
func (f *Form[T]) LastFocused() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastFocused
}

// LastSubmitted returns when the form last submitted successfully (zero if
// never).
func (f *Form[T]) LastSubmitted() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSubmitted
}
