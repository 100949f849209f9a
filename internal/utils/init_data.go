// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/station-farmer/models"
)

// ErrMalformedCredential is returned when the identity payload embedded into
// a credential cannot be decoded. It is fatal for the unit of work that owns
// the credential.
var ErrMalformedCredential = errors.New("malformed credential")

const initDataUserKey = "user"

// ParseInitDataUser extracts the user identity from a Telegram initData blob.
//
// The blob is a query string; the "user" parameter holds a percent-encoded
// JSON object. Decoding follows decodeURIComponent semantics, so "+" is kept
// as-is rather than turned into a space.
//
// Returns an error wrapping [ErrMalformedCredential] when the parameter is
// missing, cannot be unescaped, is not valid JSON, or carries no user id.
func ParseInitDataUser(initData string) (models.Identity, error) {
	raw, ok := lookupQueryParam(strings.TrimSpace(initData), initDataUserKey)
	if !ok {
		return models.Identity{}, fmt.Errorf("%w: no %q parameter", ErrMalformedCredential, initDataUserKey)
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: unescape user: %v", ErrMalformedCredential, err)
	}

	var identity models.Identity
	if err = json.Unmarshal([]byte(decoded), &identity); err != nil {
		return models.Identity{}, fmt.Errorf("%w: decode user: %v", ErrMalformedCredential, err)
	}
	if identity.ID == 0 {
		return models.Identity{}, fmt.Errorf("%w: user id is empty", ErrMalformedCredential)
	}

	return identity, nil
}

func lookupQueryParam(query, key string) (string, bool) {
	for pair := range strings.SplitSeq(query, "&") {
		k, v, found := strings.Cut(pair, "=")
		if found && k == key {
			return v, true
		}
	}
	return "", false
}
