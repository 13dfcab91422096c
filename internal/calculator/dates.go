package calculator

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// maxProjectionDays keeps projected dates inside the range of time.Duration.
const maxProjectionDays = 100 * 365

// daysBetween returns the whole number of days from "from" to "to", rounded up.
// The result is negative when "to" is before "from".
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// addDays adds a possibly fractional number of days to t.
func addDays(t time.Time, days float64) time.Time {
	if days > maxProjectionDays {
		days = maxProjectionDays
	}
	return t.Add(time.Duration(days * float64(day)))
}

// Midnight truncates t to midnight in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
