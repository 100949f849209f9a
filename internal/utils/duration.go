package utils

import (
	"fmt"
	"time"
)

// FormatRemaining renders d as "HHh MMm SSs", truncated to whole seconds.
// Hours are not wrapped into days. Negative durations render as zero.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
}
