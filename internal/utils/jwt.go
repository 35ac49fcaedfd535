package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the "exp" claim from tokenString without verifying
// the signature. The client has no signing key; it only needs the expiry to
// decide whether a persisted session is worth restoring. Returns an error
// if the token cannot be parsed or carries no expiry claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString has an expiry claim in the
// past. Tokens that cannot be parsed are treated as expired; tokens without
// an expiry claim are treated as still valid (the backend decides).
func IsTokenExpired(tokenString string) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return true
		}
		// No exp claim: let the server reject it if it is stale.
		return false
	}

	return exp.Before(time.Now())
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
