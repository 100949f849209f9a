// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the farmer application runtime.
//
// It loads the process inputs, wires the account service into the pass
// runner selected by the execution mode and drives the pass loop for the
// lifetime of the process.
package client
