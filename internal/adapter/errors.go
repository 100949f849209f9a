package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrEmptyToken is returned when authentication succeeds without a token.
	ErrEmptyToken = errors.New("empty access token")
	// ErrProxyUnavailable is returned when the public IP cannot be resolved
	// through the configured proxy.
	ErrProxyUnavailable = errors.New("proxy unavailable")
)
