package tform_test

import (
	"context"
	"errors"
	"testing"

	tform "github.com/sampbarrow/tform"
)

type signup struct {
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func TestForm_FieldRoundTrip(t *testing.T) {
	form := tform.New(signup{Email: "a@example.com"})
	email := tform.PropField(form.Field(), func(s *signup) *string { return &s.Email })
	if email.Value() != "a@example.com" {
		t.Fatalf("unexpected initial value: %q", email.Value())
	}
	email.Set("b@example.com")
	if form.Value().Email != "b@example.com" {
		t.Fatalf("write did not reach the form: %+v", form.Value())
	}
	// a fresh snapshot observes the update
	if next := tform.PropField(form.Field(), func(s *signup) *string { return &s.Email }); next.Value() != "b@example.com" {
		t.Fatalf("fresh snapshot should see the new value, got %q", next.Value())
	}
	if form.LastChanged().IsZero() {
		t.Fatalf("expected lastChanged to be recorded")
	}
}

func TestForm_StaleSnapshotWritesStillApplyToLatest(t *testing.T) {
	form := tform.New(signup{Email: "a@example.com", Age: 30})
	email := tform.PropField(form.Field(), func(s *signup) *string { return &s.Email })
	age := tform.PropField(form.Field(), func(s *signup) *int { return &s.Age })

	// Both snapshots predate each other's writes; functional updates must
	// still merge instead of last-write-wins.
	email.Set("b@example.com")
	age.Update(func(prev int) int { return prev + 1 })

	got := form.Value()
	if got.Email != "b@example.com" || got.Age != 31 {
		t.Fatalf("expected merged writes, got %+v", got)
	}
}

func TestForm_ValidateAndSubmit(t *testing.T) {
	validate := func(_ context.Context, s signup) tform.FieldErrors {
		var errs tform.FieldErrors
		if s.Email == "" {
			errs = append(errs, tform.FieldError{
				Message: "required",
				Path:    tform.Path{tform.Key("email")},
			})
		}
		return errs
	}
	var submitted []signup
	form := tform.New(signup{},
		tform.WithValidator(validate),
		tform.WithSubmit(func(_ context.Context, s signup) error {
			submitted = append(submitted, s)
			return nil
		}),
	)

	err := form.Submit(context.Background())
	if err == nil {
		t.Fatalf("expected validation error")
	}
	fe, ok := tform.AsFieldErrors(err)
	if !ok || len(fe) != 1 || !fe[0].Path.Equal(tform.Path{tform.Key("email")}) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if len(submitted) != 0 || form.SubmitCount() != 0 {
		t.Fatalf("submit must not run with blocking errors")
	}
	if form.CanSubmit() {
		t.Fatalf("CanSubmit should be false with blocking errors")
	}

	form.SetValue(signup{Email: "a@example.com"})
	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if len(submitted) != 1 || form.SubmitCount() != 1 {
		t.Fatalf("expected one successful submission")
	}
	if form.LastSubmitted().IsZero() {
		t.Fatalf("expected lastSubmitted to be recorded")
	}
}

func TestForm_TemporaryErrorsDoNotBlock(t *testing.T) {
	form := tform.New(signup{Email: "a@example.com"},
		tform.WithValidator(func(_ context.Context, _ signup) tform.FieldErrors {
			return tform.FieldErrors{{
				Message:   "checking availability",
				Path:      tform.Path{tform.Key("email")},
				Temporary: true,
			}}
		}),
		tform.WithSubmit(func(context.Context, signup) error { return nil }),
	)
	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("temporary errors must not block submission: %v", err)
	}
	// still visible on the field
	email := tform.PropField(form.Field(), func(s *signup) *string { return &s.Email })
	if !email.HasSelfErrors() {
		t.Fatalf("temporary error should remain visible")
	}
}

func TestForm_SubmitErrorsPropagate(t *testing.T) {
	boom := errors.New("wire failure")
	form := tform.New(signup{Email: "a@example.com"},
		tform.WithSubmit(func(context.Context, signup) error { return boom }),
	)
	if err := form.Submit(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected submit error, got %v", err)
	}
	if form.SubmitCount() != 0 {
		t.Fatalf("failed submission must not bump the counter")
	}
}

func TestForm_SubmitWithoutSubmitFunc(t *testing.T) {
	form := tform.New(signup{})
	if err := form.Submit(context.Background()); !errors.Is(err, tform.ErrNoSubmit) {
		t.Fatalf("expected ErrNoSubmit, got %v", err)
	}
}

func TestForm_DirtyAndReset(t *testing.T) {
	form := tform.New(signup{Email: "a@example.com"})
	if form.Dirty() {
		t.Fatalf("fresh form should not be dirty")
	}
	form.UpdateValue(func(s signup) signup { s.Age = 1; return s })
	if !form.Dirty() {
		t.Fatalf("changed form should be dirty")
	}
	form.SetErrors(tform.FieldErrors{{Message: "x"}})
	form.Reset()
	if form.Dirty() {
		t.Fatalf("reset form should not be dirty")
	}
	if len(form.Errors()) != 0 {
		t.Fatalf("reset should clear errors, got %v", form.Errors())
	}
	if form.Value().Email != "a@example.com" {
		t.Fatalf("reset should restore the initial value, got %+v", form.Value())
	}
}

func TestForm_DisabledPropagates(t *testing.T) {
	form := tform.New(signup{}, tform.WithDisabled[signup](true))
	email := tform.PropField(form.Field(), func(s *signup) *string { return &s.Email })
	if !email.Disabled() {
		t.Fatalf("derived field should inherit disabled flag")
	}
	if form.CanSubmit() {
		t.Fatalf("disabled form cannot submit")
	}
}

func TestForm_FieldErrorScoping(t *testing.T) {
	form := tform.New(signup{})
	form.SetErrors(tform.FieldErrors{
		{Message: "bad email", Path: tform.Path{tform.Key("email")}},
		{Message: "too young", Path: tform.Path{tform.Key("age")}},
	})
	email := tform.PropField(form.Field(), func(s *signup) *string { return &s.Email })
	if got := email.SelfErrors(); len(got) != 1 || got[0].Message != "bad email" {
		t.Fatalf("unexpected scoped errors: %v", got)
	}
	email.SetErrors(nil)
	if got := form.Errors(); len(got) != 1 || got[0].Message != "too young" {
		t.Fatalf("clearing one field should preserve siblings, got %v", got)
	}
}

func TestForm_TriggerTimestamps(t *testing.T) {
	form := tform.New(signup{})
	root := form.Field()
	root.Focus()
	root.Blur()
	root.Commit()
	if form.LastFocused().IsZero() || form.LastBlurred().IsZero() || form.LastCommitted().IsZero() {
		t.Fatalf("expected all trigger timestamps to be recorded")
	}
}
