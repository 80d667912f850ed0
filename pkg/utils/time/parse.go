// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Tries the RSS layouts first, then falls back to dateparse for anything else

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts tried before the heuristic parser. The single-digit day layouts
// also accept two-digit days.
var timeFormats = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseFlexibleTime parses a feed timestamp, preserving its zone offset.
// It returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	if t, err := dateparse.ParseAny(timeStr); err == nil {
		return t
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

// FormatClock renders t as HH:mm in its own zone, the way the ticker shows it.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
