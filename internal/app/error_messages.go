// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

// Package app contains shared application-layer constants used across
// the portal's server handlers and the dev backend.
//
// All Msg* constants are human-readable message strings written into
// HTTP response bodies to describe the outcome of an operation. The
// hosted auth service fixes the wording of several of them; keeping
// them in one place guards against the proxies and the dev backend
// drifting apart.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidLoginCredentials is returned when the supplied
	// email/password combination does not match an account. The wording
	// is the hosted service's and travels verbatim to the end user.
	MsgInvalidLoginCredentials = "Invalid login credentials"

	// MsgUserAlreadyRegistered is returned when signup hits an existing
	// e-mail address.
	MsgUserAlreadyRegistered = "User already registered"

	// MsgUnsupportedGrantType is returned for token requests with a
	// grant type other than password.
	MsgUnsupportedGrantType = "unsupported grant type"

	// MsgMissingAccessToken is returned when a user lookup carries no
	// bearer token and no access-token cookie.
	MsgMissingAccessToken = "missing access token"

	// MsgInvalidAccessToken is returned when the presented token fails
	// verification or resolves to no account.
	MsgInvalidAccessToken = "invalid access token"

	// MsgNoAPIKey is returned by the apikey gate in front of every dev
	// backend route.
	MsgNoAPIKey = "No API key found in request"
)
