// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the farmer and the
// TonStation platform.
//
// The primary abstraction is [PlatformAdapter], which decouples the account
// processor from the REST protocol. The package ships an HTTP implementation
// ([NewHTTPPlatformAdapter]) built on resty that can be routed through an
// outbound proxy. One adapter is created per account and per pass, so
// adapters never share a connection pool or a proxy.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/station-farmer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_adapter_mock.go -package=mock

// PlatformAdapter defines the fixed set of platform calls issued for one
// account. Implementations are responsible for serialisation, the bearer
// header and mapping transport-level errors to the sentinel values defined in
// this package.
type PlatformAdapter interface {
	// Authenticate exchanges the raw credential for a session. An empty
	// access token in an otherwise successful response is an error.
	Authenticate(ctx context.Context, credential models.Credential) (models.Session, error)

	// GetFarmStatus returns the running farm cycles of userID. An empty slice
	// means no cycle is running.
	GetFarmStatus(ctx context.Context, session models.Session, userID int64) ([]models.FarmCycle, error)

	// StartFarm starts a new farm cycle and returns it.
	StartFarm(ctx context.Context, session models.Session, userID int64) (models.FarmCycle, error)

	// ClaimFarm claims the reward of the finished cycle cycleID.
	ClaimFarm(ctx context.Context, session models.Session, userID int64, cycleID string) (models.Amount, error)

	// ListQuests returns the quests offered to userID in platform order.
	ListQuests(ctx context.Context, session models.Session, userID int64) ([]models.Quest, error)

	// StartQuest marks quest as started.
	StartQuest(ctx context.Context, session models.Session, userID int64, quest models.Quest) error

	// ClaimQuest claims quest and returns its reward amount.
	ClaimQuest(ctx context.Context, session models.Session, userID int64, quest models.Quest) (models.Amount, error)

	// ResolvePublicIP returns the public IP address seen by the outside world
	// through the adapter's transport. Failures wrap [ErrProxyUnavailable].
	ResolvePublicIP(ctx context.Context) (string, error)
}

// Factory builds a [PlatformAdapter] routed through proxyURL. An empty
// proxyURL yields a direct connection.
type Factory func(proxyURL string) (PlatformAdapter, error)
