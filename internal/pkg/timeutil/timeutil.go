package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const minutesPerDay = 24 * 60

// Clock is a wall-clock time of day with minute precision. The zero value is
// midnight.
type Clock struct {
	Hour   int
	Minute int
}

// MalformedTimeError reports a clock-time string that does not parse as HH:MM.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed clock time %q: expected HH:MM with hour 00-23 and minute 00-59", e.Value)
}

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses a strict HH:MM string. Malformed input fails with a
// *MalformedTimeError rather than coercing to midnight; callers decide how to
// handle the failure.
func ParseClock(s string) (Clock, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, &MalformedTimeError{Value: s}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return Clock{Hour: hour, Minute: minute}, nil
}

// MustParseClock is ParseClock for compile-time constants; it panics on
// malformed input.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinuteOfDay returns the clock time as minutes since midnight.
func (c Clock) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// AddMinutes shifts t by delta minutes (delta may be negative). The result
// wraps modulo 24h; only the time of day is returned, any day rollover is
// discarded.
func AddMinutes(t Clock, delta int) Clock {
	total := (t.MinuteOfDay() + delta) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return Clock{Hour: total / 60, Minute: total % 60}
}

// HoursBetween computes the elapsed hours from login to logout, rounded to two
// decimals. When logout's minute of day is numerically smaller than login's,
// the logout happened on the following calendar day and 24h is added before
// dividing. The result is always in [0, 24). No shift-length sanity check is
// applied here.
func HoursBetween(login, logout Clock) float64 {
	diff := logout.MinuteOfDay() - login.MinuteOfDay()
	if diff < 0 {
		diff += minutesPerDay
	}
	return Round2(float64(diff) / 60)
}

// Round2 rounds to two decimals, half away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
