// Package rules provides reusable validators that produce path-addressed
// tform.FieldErrors, with messages resolved through the i18n package.
package rules

import (
	"cmp"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tform "github.com/sampbarrow/tform"
	"github.com/sampbarrow/tform/i18n"
)

// Validator inspects a value and returns field errors addressed relative to
// that value.
type Validator[T any] func(v T) tform.FieldErrors

// All runs every validator in order and concatenates their errors.
func All[T any](vs ...Validator[T]) Validator[T] {
	return func(v T) tform.FieldErrors {
		var out tform.FieldErrors
		for _, rule := range vs {
			if rule == nil {
				continue
			}
			out = append(out, rule(v)...)
		}
		return out
	}
}

// At scopes validators to a struct field, selected the same way as
// tform.Prop. Errors produced by the inner validators are prefixed with the
// field's path.
func At[T, F any](selector func(*T) *F, vs ...Validator[F]) Validator[T] {
	op := tform.Prop(selector)
	inner := All(vs...)
	return func(v T) tform.FieldErrors {
		return tform.AscendErrors(inner(op.Forward(v)), op.Path)
	}
}

// Each applies validators to every element of a slice, prefixing each
// element's errors with its index segment.
func Each[E any](vs ...Validator[E]) Validator[[]E] {
	inner := All(vs...)
	return func(s []E) tform.FieldErrors {
		var out tform.FieldErrors
		for i, e := range s {
			out = append(out, tform.AscendErrors(inner(e), tform.Path{tform.Index(i)})...)
		}
		return out
	}
}

// Temporary marks every error produced by the inner validator as temporary,
// so it never blocks submission.
func Temporary[T any](inner Validator[T]) Validator[T] {
	return func(v T) tform.FieldErrors {
		errs := inner(v)
		out := make(tform.FieldErrors, len(errs))
		for i, e := range errs {
			e.Temporary = true
			out[i] = e
		}
		return out
	}
}

// Required rejects the type's zero value.
func Required[T comparable]() Validator[T] {
	return func(v T) tform.FieldErrors {
		var zero T
		if v == zero {
			return tform.FieldErrors{{Message: i18n.T(i18n.CodeRequired, nil)}}
		}
		return nil
	}
}

// NonEmpty rejects strings that are empty after trimming whitespace.
func NonEmpty() Validator[string] {
	return func(v string) tform.FieldErrors {
		if strings.TrimSpace(v) == "" {
			return tform.FieldErrors{{Message: i18n.T(i18n.CodeRequired, nil)}}
		}
		return nil
	}
}

// MinLen requires at least min characters.
func MinLen(min int) Validator[string] {
	return func(v string) tform.FieldErrors {
		if len([]rune(v)) < min {
			return tform.FieldErrors{{Message: i18n.T(i18n.CodeTooShort, map[string]string{"min": strconv.Itoa(min)})}}
		}
		return nil
	}
}

// MaxLen allows at most max characters.
func MaxLen(max int) Validator[string] {
	return func(v string) tform.FieldErrors {
		if len([]rune(v)) > max {
			return tform.FieldErrors{{Message: i18n.T(i18n.CodeTooLong, map[string]string{"max": strconv.Itoa(max)})}}
		}
		return nil
	}
}

// Match requires the string to match the pattern.
func Match(re *regexp.Regexp) Validator[string] {
	return func(v string) tform.FieldErrors {
		if !re.MatchString(v) {
			return tform.FieldErrors{{Message: i18n.T(i18n.CodePattern, map[string]string{"pattern": re.String()})}}
		}
		return nil
	}
}

// Min requires the value to be at least min.
func Min[N cmp.Ordered](min N) Validator[N] {
	return func(v N) tform.FieldErrors {
		if v < min {
			return tform.FieldErrors{{Message: i18n.T(i18n.CodeTooSmall, map[string]string{"min": fmt.Sprint(min)})}}
		}
		return nil
	}
}

// Max requires the value to be at most max.
func Max[N cmp.Ordered](max N) Validator[N] {
	return func(v N) tform.FieldErrors {
		if v > max {
			return tform.FieldErrors{{Message: i18n.T(i18n.CodeTooBig, map[string]string{"max": fmt.Sprint(max)})}}
		}
		return nil
	}
}

// Bind adapts a pure Validator into the context-aware tform.Validator shape
// expected by tform.WithValidator.
func Bind[T any](vs ...Validator[T]) tform.Validator[T] {
	inner := All(vs...)
	return func(_ context.Context, v T) tform.FieldErrors { return inner(v) }
}
