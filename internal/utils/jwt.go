package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/domy-v-italii/portal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenIsExpired marks a structurally valid token past its
	// expiry claim.
	ErrTokenIsExpired = errors.New("token is expired")
)

// GenerateJWTToken creates a signed HMAC-SHA256 access token.
//
// Claims:
//   - Issuer    (iss): the issuing service name
//   - Subject   (sub): the user id (UUID string)
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + tokenDuration
//
// All parameters are required.
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer, and expiry of
// tokenString and returns the parsed token. Expired tokens are reported
// as ErrTokenIsExpired so callers can map them to a distinct response.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(tokenSignKey), nil
		},
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return models.Token{}, errors.New("invalid token claims")
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("token has no subject")
	}

	token := models.Token{SignedString: tokenString, UserID: claims.Subject}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}

	return token, nil
}
