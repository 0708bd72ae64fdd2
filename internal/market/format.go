package market

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatLongDate renders a directory date ("2025-01-17") as a long-form
// date ("January 17, 2025"). Malformed input is returned unchanged so an
// upstream formatting quirk degrades the display instead of failing the
// request.
func FormatLongDate(yyyymmdd string) string {
	parsed, err := time.Parse("2006-01-02", yyyymmdd)
	if err != nil {
		return yyyymmdd
	}
	return parsed.Format("January 02, 2006")
}

// FormatClock12 renders a 24-hour clock value ("08:00" or "08:00:00") as
// 12-hour time ("8:00 AM"). Malformed input is returned unchanged.
func FormatClock12(clock string) string {
	if !strings.Contains(clock, ":") {
		return clock
	}
	parts := strings.Split(clock, ":")
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return clock
	}
	minutes := 0
	if len(parts) > 1 {
		minutes, err = strconv.Atoi(parts[1])
		if err != nil {
			return clock
		}
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return clock
	}

	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, meridiem)
}

// ClockOf extracts the clock portion of a wall-clock timestamp
// ("2025-01-17 08:00:00" yields "08:00:00"). Input without a space is
// returned unchanged.
func ClockOf(timestamp string) string {
	fields := strings.Fields(timestamp)
	if len(fields) == 0 {
		return timestamp
	}
	return fields[len(fields)-1]
}
