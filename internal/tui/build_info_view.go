// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/station-farmer/models"
)

// RenderBanner renders the startup banner of a farmer binary.
func RenderBanner(info models.BuildInfo) string {
	lines := append([]string{titleStyle.Render("TonStation farmer")}, info.Lines()...)
	return bannerStyle.Render(strings.Join(lines, "\n"))
}
