// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is one pre-captured Telegram WebApp initData blob. It is sent to
// the platform as-is and carries the account identity in its "user" query
// parameter.
type Credential string

// String returns the raw initData blob.
func (c Credential) String() string {
	return string(c)
}

// Identity is the user payload embedded into a [Credential].
type Identity struct {
	// ID is the numeric Telegram user id. The platform addresses every farming
	// and quest call by this id.
	ID int64 `json:"id"`

	// FirstName is the display name shown in the account banner.
	FirstName string `json:"first_name"`

	// LastName is optional and only used for display.
	LastName string `json:"last_name,omitempty"`

	// Username is optional and only used for display.
	Username string `json:"username,omitempty"`
}

// Account binds a [Credential] to its ordinal position in the credential list.
// Index is zero-based and drives proxy assignment; the number shown in logs is
// Index+1.
type Account struct {
	Index      int
	Credential Credential
}

// Number returns the one-based account number used in log output.
func (a Account) Number() int {
	return a.Index + 1
}

// NewAccounts wraps credentials into accounts numbered by their list position.
func NewAccounts(credentials []Credential) []Account {
	accounts := make([]Account, 0, len(credentials))
	for i, c := range credentials {
		accounts = append(accounts, Account{Index: i, Credential: c})
	}
	return accounts
}
