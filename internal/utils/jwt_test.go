package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "portal-test"
	testSignKey = "test-sign-key"
	testUserID  = "5f6b7c8d-0000-0000-0000-000000000001"
)

// TestGenerateJWTToken_RoundTrip verifies a generated token validates
// and yields the original subject.
func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt, 5*time.Second)
}

// TestGenerateJWTToken_InvalidParams rejects missing inputs.
func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{name: "no issuer", userID: testUserID, duration: time.Hour, signKey: testSignKey},
		{name: "no user id", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "no duration", issuer: testIssuer, userID: testUserID, signKey: testSignKey},
		{name: "no sign key", issuer: testIssuer, userID: testUserID, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

// TestValidateAndParseJWTToken_Expired maps expiry to ErrTokenIsExpired.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.ErrorIs(t, err, ErrTokenIsExpired)
}

// TestValidateAndParseJWTToken_WrongKey rejects foreign signatures.
func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-key", testIssuer)
	require.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongIssuer rejects tokens from another
// issuer.
func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}
