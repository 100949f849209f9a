// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store loads the process inputs of the farmer: the credential list
// and the proxy list. Both are line-delimited text files read once at
// startup; nothing is ever written back.
package store

import (
	"context"

	"github.com/MKhiriev/station-farmer/models"
)

// CredentialStorage provides the accounts to process.
type CredentialStorage interface {
	// LoadAccounts reads every credential and numbers the accounts in file
	// order starting from zero.
	LoadAccounts(ctx context.Context) ([]models.Account, error)
}

// ProxyStorage provides the outbound proxy list.
type ProxyStorage interface {
	// LoadProxies reads and normalises every proxy URL.
	LoadProxies(ctx context.Context) (*ProxyPool, error)
}
