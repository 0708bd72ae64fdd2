// Package market evaluates check-in time windows and formats market
// schedule values for display. All wall-clock values from the directory
// service are naive local timestamps interpreted in America/Los_Angeles;
// they are parsed in that zone, never converted.
package market

import (
	"sync"
	"time"
)

// WindowState classifies the current instant against a check-in window.
type WindowState int

const (
	WindowNotStarted WindowState = iota
	WindowOpen
	WindowEnded
)

func (s WindowState) String() string {
	switch s {
	case WindowNotStarted:
		return "not_started"
	case WindowOpen:
		return "open"
	case WindowEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// localTimestampLayout matches the directory's checkInStart/checkInEnd
// fields, e.g. "2025-01-17 08:00:00".
const localTimestampLayout = "2006-01-02 15:04:05"

var loadLocation = sync.OnceValue(func() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		// cmd/server imports time/tzdata, so this only happens in stripped
		// test binaries; a fixed PST offset keeps behavior sane there.
		return time.FixedZone("PST", -8*60*60)
	}
	return loc
})

// Location returns the fixed market timezone.
func Location() *time.Location {
	return loadLocation()
}

// ParseLocal interprets a directory wall-clock timestamp in the market
// timezone.
func ParseLocal(value string) (time.Time, error) {
	return time.ParseInLocation(localTimestampLayout, value, Location())
}

// EvaluateWindow classifies now against [start, end]. The boundary contract
// is asymmetric and deliberate: the instant equal to start is already Open,
// and the instant equal to end is still Open. Only strictly-before-start is
// NotStarted and strictly-after-end is Ended.
func EvaluateWindow(now, start, end time.Time) WindowState {
	switch {
	case now.Before(start):
		return WindowNotStarted
	case now.After(end):
		return WindowEnded
	default:
		return WindowOpen
	}
}
