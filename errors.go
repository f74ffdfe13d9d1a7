package tform

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError represents a single validation entry addressed by a structural
// path into the form value.
type FieldError struct {
	Path    Path   `json:"path"`
	Message string `json:"message"`
	// Temporary marks an error that must not block submission, e.g. one
	// produced by in-flight debounced validation.
	Temporary bool `json:"temporary,omitempty"`
}

// FieldErrors is a collection of validation errors that implements error.
type FieldErrors []FieldError

// Error summarizes the first few errors.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(fe)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := fe[i]
		// e.g. required at /email
		fmt.Fprintf(b, "%s at %s", it.Message, it.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Self returns the errors that belong to this exact location (empty path),
// excluding descendants.
func (fe FieldErrors) Self() FieldErrors {
	var out FieldErrors
	for _, e := range fe {
		if len(e.Path) == 0 {
			out = append(out, e)
		}
	}
	return out
}

// Blocking returns the errors that gate submission, i.e. all non-temporary
// entries.
func (fe FieldErrors) Blocking() FieldErrors {
	var out FieldErrors
	for _, e := range fe {
		if !e.Temporary {
			out = append(out, e)
		}
	}
	return out
}

// At is shorthand for DescendErrors(fe, path).
func (fe FieldErrors) At(path Path) FieldErrors { return DescendErrors(fe, path) }

// DescendErrors retains the errors whose path begins with prefix and strips
// the prefix from each retained entry. Returns nil when nothing matches.
func DescendErrors(errs FieldErrors, prefix Path) FieldErrors {
	if len(prefix) == 0 {
		return errs
	}
	var out FieldErrors
	for _, e := range errs {
		if !e.Path.HasPrefix(prefix) {
			continue
		}
		out = append(out, FieldError{
			Path:      e.Path.TrimPrefix(prefix),
			Message:   e.Message,
			Temporary: e.Temporary,
		})
	}
	return out
}

// AscendErrors re-prepends prefix to every error's path. It is the inverse of
// DescendErrors over the matching subset.
func AscendErrors(errs FieldErrors, prefix Path) FieldErrors {
	if len(prefix) == 0 {
		return errs
	}
	out := make(FieldErrors, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{
			Path:      prefix.Join(e.Path),
			Message:   e.Message,
			Temporary: e.Temporary,
		})
	}
	return out
}

// AppendErrors appends errors to the destination, initializing the slice when
// needed.
func AppendErrors(dst FieldErrors, more ...FieldError) FieldErrors {
	if dst == nil {
		dst = FieldErrors{}
	}
	dst = append(dst, more...)
	return dst
}

// AsFieldErrors extracts FieldErrors from an error using errors.As internally.
func AsFieldErrors(err error) (FieldErrors, bool) {
	if err == nil {
		return nil, false
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
