package service

import "errors"

var (
	// ErrMissingCredentials marks a login or signup attempt with an
	// empty e-mail or password. The backend is never called for these.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrMagicLinkDisabled marks the magic-link sign-in path, which the
	// portal does not offer.
	ErrMagicLinkDisabled = errors.New("magic link sign-in is not available")

	// ErrNotOwned marks an attempt to read a resource belonging to a
	// different user.
	ErrNotOwned = errors.New("resource does not belong to the user")
)
