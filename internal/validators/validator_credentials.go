package validators

import (
	"context"
	"net/mail"
)

// minPasswordLength mirrors the hosted service's account policy.
const minPasswordLength = 6

type credentialsValidator struct{}

func NewCredentialsValidator() CredentialsValidator {
	return &credentialsValidator{}
}

func (v *credentialsValidator) Validate(_ context.Context, email, password string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return ErrShortPassword
	}
	return nil
}
