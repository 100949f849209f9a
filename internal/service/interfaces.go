// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the per-account business logic of the farmer.
//
// [AccountService] drives one account through a full pass: proxy check,
// identity decoding, login, the farming decision and the quest sweep. The
// service is stateless between passes; every decision is recomputed from what
// the platform reports.
package service

import (
	"context"

	"github.com/MKhiriev/station-farmer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_service_mock.go -package=mock

// AccountService processes a single account.
type AccountService interface {
	// Process runs one pass over account. Platform and proxy failures are
	// logged and swallowed; only a malformed credential is returned as an
	// error, wrapping utils.ErrMalformedCredential.
	Process(ctx context.Context, account models.Account) error
}

// ProxyProvider assigns an outbound proxy URL to an account index.
type ProxyProvider interface {
	ProxyFor(index int) string
}
