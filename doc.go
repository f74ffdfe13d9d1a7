package tform

// Package tform provides:
//
// - Composable form state via Field (read projection + write injection over a root value)
// - A lens-based operator algebra (Prop/MapKey/At/Transform/Narrow/Or) with uniform Pipe composition
// - A stable error model via FieldErrors (structural Path, message, temporary flag)
// - A Form container tracking value, errors, and the submission lifecycle
//
// Design policy:
// - Keep only public APIs in the root package; put reusable validators under rules/.
// - Place message catalogs under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	form := tform.New(Signup{}, tform.WithValidator(validate), tform.WithSubmit(send))
//	root := form.Field()
//	email := tform.PropField(root, func(s *Signup) *string { return &s.Email })
//	email.SetAndCommit("a@example.com")
//	err := form.Submit(ctx)
