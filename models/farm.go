package models

import "time"

// FarmTaskID is the fixed task identifier sent when a new farm cycle is started.
const FarmTaskID = "1"

// FarmCycle is the platform-side timed reward state of an account.
type FarmCycle struct {
	ID      string    `json:"_id"`
	TimeEnd time.Time `json:"timeEnd"`
}

// Expired reports whether the cycle is claimable at now.
func (f FarmCycle) Expired(now time.Time) bool {
	return !now.Before(f.TimeEnd)
}

// Remaining returns the time left until the cycle ends, or zero if it already
// ended.
func (f FarmCycle) Remaining(now time.Time) time.Duration {
	if f.Expired(now) {
		return 0
	}
	return f.TimeEnd.Sub(now)
}
