package store

import "errors"

var (
	// ErrEmailAlreadyExists marks an account insert that hit the unique
	// e-mail constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoAccountWasFound marks a lookup that matched no account.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrNoSessionWasFound marks a refresh-token lookup that matched no
	// live session.
	ErrNoSessionWasFound = errors.New("no session was found")

	// ErrTableNotAllowed marks a row-API request against a table
	// outside the allowlist.
	ErrTableNotAllowed = errors.New("table is not allowed")

	// ErrColumnNotAllowed marks a filter or payload column outside the
	// table's allowlist.
	ErrColumnNotAllowed = errors.New("column is not allowed")

	// ErrFilterRequired marks a delete without any filter; unfiltered
	// deletes are refused.
	ErrFilterRequired = errors.New("at least one filter is required")
)
