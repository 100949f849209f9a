// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrInterrupted is returned by [CountdownWaiter] when the user quits the
// countdown from the keyboard.
var ErrInterrupted = errors.New("countdown interrupted by user")
