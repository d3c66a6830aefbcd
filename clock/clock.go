// Package clock implements the 24-hour wall-clock values used by flight
// schedules: exactly four zero-padded digits ("0905", "2330"), no date and no
// timezone. Every schedule in a network shares one reference zone.
//
// The only arithmetic is the wrap-around difference Diff: a later reading that
// is smaller than or equal to an earlier one is taken to cross midnight, so the
// result is always in (0, 24h].
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadClock indicates a clock string that is not four digits forming a valid HHMM time.
var ErrBadClock = errors.New("clock: malformed HHMM time")

// MinutesPerDay is the length of the wrap-around cycle.
const MinutesPerDay = 24 * 60

// Time is a time of day in minutes after midnight, in [0, MinutesPerDay).
type Time int

// Parse converts a 4-digit 24-hour string into a Time.
func Parse(s string) (Time, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	var digits [4]int
	for i := 0; i < 4; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
		}
		digits[i] = int(c - '0')
	}
	hour := digits[0]*10 + digits[1]
	minute := digits[2]*10 + digits[3]
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	return Time(hour*60 + minute), nil
}

// MustParse is Parse for fixtures and constants; it panics on malformed input.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return t
}

// Hour returns the hour component (0-23).
func (t Time) Hour() int { return int(t) / 60 }

// Minute returns the minute component (0-59).
func (t Time) Minute() int { return int(t) % 60 }

// String renders t back into the HHMM form.
func (t Time) String() string {
	return fmt.Sprintf("%02d%02d", t.Hour(), t.Minute())
}

// Diff returns the wrap-around duration from a to b. If b is not strictly
// after a on the same day, a full day is added: Diff("2300", "0100") is two
// hours and Diff(x, x) is 24 hours.
func Diff(a, b Time) time.Duration {
	minutes := int(b) - int(a)
	if minutes <= 0 {
		minutes += MinutesPerDay
	}

	return time.Duration(minutes) * time.Minute
}

// Until is the method form of Diff: the wait from t until the next occurrence of next.
func (t Time) Until(next Time) time.Duration { return Diff(t, next) }
