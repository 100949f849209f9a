package models

import "time"

// Session is the result of a successful authentication. It lives for one
// processing pass over one account and is never persisted.
type Session struct {
	// AccessToken is attached as a bearer token to every authenticated call.
	AccessToken string

	// ExpiresAt is the "exp" claim of AccessToken when the token is a JWT.
	// Zero when the token carries no expiry or is not a JWT.
	ExpiresAt time.Time
}
