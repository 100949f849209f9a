// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInitData(userJSON string) string {
	return "query_id=AAH123&user=" + url.PathEscape(userJSON) + "&auth_date=1727000000&hash=abcdef"
}

func TestParseInitDataUser_Success(t *testing.T) {
	initData := buildInitData(`{"id":5123456789,"first_name":"Alice","last_name":"","username":"alice_w","language_code":"en"}`)

	identity, err := ParseInitDataUser(initData)

	require.NoError(t, err)
	assert.Equal(t, int64(5123456789), identity.ID)
	assert.Equal(t, "Alice", identity.FirstName)
	assert.Equal(t, "alice_w", identity.Username)
}

func TestParseInitDataUser_UserIsFirstParam(t *testing.T) {
	initData := "user=" + url.PathEscape(`{"id":42,"first_name":"Bob"}`) + "&hash=x"

	identity, err := ParseInitDataUser(initData)

	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.ID)
}

func TestParseInitDataUser_PlusIsNotSpace(t *testing.T) {
	// decodeURIComponent не превращает "+" в пробел
	initData := "user=%7B%22id%22%3A7%2C%22first_name%22%3A%22A+B%22%7D"

	identity, err := ParseInitDataUser(initData)

	require.NoError(t, err)
	assert.Equal(t, "A+B", identity.FirstName)
}

func TestParseInitDataUser_TrimsWhitespace(t *testing.T) {
	initData := "  " + buildInitData(`{"id":1,"first_name":"C"}`) + "\r\n"

	identity, err := ParseInitDataUser(initData)

	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
}

func TestParseInitDataUser_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		initData string
	}{
		{name: "empty", initData: ""},
		{name: "no user param", initData: "query_id=1&auth_date=2&hash=3"},
		{name: "similar key only", initData: "xuser=" + url.PathEscape(`{"id":1}`)},
		{name: "bad escape", initData: "user=%7B%ZZ"},
		{name: "not json", initData: "user=hello"},
		{name: "zero id", initData: "user=" + url.PathEscape(`{"first_name":"NoID"}`)},
		{name: "id of wrong type", initData: "user=" + url.PathEscape(`{"id":"abc"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInitDataUser(tt.initData)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCredential)
		})
	}
}
