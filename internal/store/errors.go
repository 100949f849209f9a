package store

import "errors"

var (
	// ErrInvalidProxy is returned when a proxy line cannot be parsed into a
	// URL with a supported scheme and a host.
	ErrInvalidProxy = errors.New("invalid proxy")

	// ErrNoProxies is returned when proxying is enabled but the proxy file
	// contains no usable entry.
	ErrNoProxies = errors.New("no proxies configured")
)
