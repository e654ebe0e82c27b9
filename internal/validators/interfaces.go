// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

// Package validators holds input validation for the auth surface,
// decoupled from the transport layer so the same rules can back any
// endpoint that accepts credentials.
package validators

import "context"

// CredentialsValidator checks signup input against the account rules.
type CredentialsValidator interface {
	// Validate reports the first rule the credentials break, or nil.
	Validate(ctx context.Context, email, password string) error
}
