// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// farmer's services and workers.
//
// All Msg* constants are human-readable log messages describing the outcome
// of a step of account processing. Keeping them in one place keeps the
// console output consistent and lets tests match on them.
package app

const (
	// MsgAccountBanner opens the log of every account: number and first name.
	MsgAccountBanner = "Account %d | %s"

	// MsgAdapterCreateFailed is logged when the platform client for an
	// account cannot be built (e.g. an unparsable proxy URL).
	MsgAdapterCreateFailed = "unable to create platform client"

	// MsgProxyCheckFailed is logged when the public IP cannot be resolved
	// through the account's proxy. The account is skipped for this pass.
	MsgProxyCheckFailed = "unable to check proxy IP"

	MsgLoginFailed     = "login failed"
	MsgLoginSuccessful = "login successful"
)

// Farming messages.
const (
	MsgFarmStatusFailed  = "get farming status failed"
	MsgFarmNotRunning    = "no farm running, starting farm"
	MsgFarmCompletion    = "farm completion time"
	MsgFarmRemaining     = "farm is running, %s remaining"
	MsgFarmClaimFailed   = "failed to claim farm"
	MsgFarmClaimed       = "farm claimed successfully, received %s"
	MsgFarmStartFailed   = "failed to start farm"
	MsgFarmStartedEnding = "farm started successfully, ends %s"
)

// Quest messages.
const (
	MsgQuestListFailed  = "failed to get quest list"
	MsgQuestSkipped     = "skipping quest"
	MsgQuestStartFailed = "failed to start quest"
	MsgQuestClaimFailed = "failed to complete quest"
	MsgQuestCompleted   = "quest %s completed successfully | reward %s SOON"
)
