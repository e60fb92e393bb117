package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// StartOfDay normalizes a time to 00:00:00.000 of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the time's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// DeadlinePassed reports whether a calendar-date deadline is closed as of the
// given instant. A deadline is valid through the end of its own day, and asOf is
// normalized to the start of its day, so a deadline equal to "today" is still open.
func DeadlinePassed(deadline, asOf time.Time) bool {
	return EndOfDay(deadline).Before(StartOfDay(asOf))
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
