// Package age computes display durations relative to a reference time.
package age

import "time"

// AgeData computes how long ago start was and whether timing data exists.
// Start times in the future clamp to zero.
func AgeData(start time.Time, now time.Time) (time.Duration, bool) {
	if start.IsZero() {
		return 0, false
	}
	age := now.Sub(start)
	if age < 0 {
		age = 0
	}
	return age, true
}

// UntilData computes the time left before deadline and whether timing data
// exists. The duration is negative once the deadline has passed.
func UntilData(deadline time.Time, now time.Time) (time.Duration, bool) {
	if deadline.IsZero() {
		return 0, false
	}
	return deadline.Sub(now), true
}
