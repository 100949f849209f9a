// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// BuildInfo is the link-time metadata of a farmer binary together with the
// execution mode it was built for. Missing values read as "N/A".
type BuildInfo struct {
	Mode    string
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns [BuildInfo] for mode with empty metadata replaced by
// "N/A".
func NewBuildInfo(mode, version, date, commit string) BuildInfo {
	return BuildInfo{
		Mode:    orNotAvailable(mode),
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Lines returns the metadata as "Label: value" lines in display order.
func (b BuildInfo) Lines() []string {
	return []string{
		"Mode: " + b.Mode,
		"Build version: " + b.Version,
		"Build date: " + b.Date,
		"Build commit: " + b.Commit,
	}
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notAvailable
	}
	return v
}
