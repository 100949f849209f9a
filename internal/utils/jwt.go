package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by ParseTokenExpiry when the token has no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiry")

// ParseTokenExpiry reads the "exp" claim of a JWT access token without
// verifying its signature. The farmer does not own the signing key; the value
// is only used for diagnostics.
//
// Returns an error if tokenString is not a JWT or carries no expiry.
//
// Example usage:
//
//	exp, err := utils.ParseTokenExpiry(session.AccessToken)
func ParseTokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
