package employee

import (
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Department string
	Shift      Shift
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName joins the display name components.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

// ArrivalSpreadMinutes is the width of the expected arrival window. A login
// past the window's upper bound is flagged late at ingestion time.
const ArrivalSpreadMinutes = 30

// ParseShift normalizes a free-text shift value to the closed Day/Night set.
// Matching is case-insensitive; empty input defaults to Day. The second return
// reports whether the input was recognized so callers can warn on garbage
// instead of silently defaulting.
func ParseShift(s string) (Shift, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "":
		return ShiftDay, true
	case "night":
		return ShiftNight, true
	default:
		return ShiftDay, false
	}
}

// WindowStart returns the start of the expected arrival window for the shift.
func (s Shift) WindowStart() timeutil.Clock {
	if s == ShiftNight {
		return timeutil.Clock{Hour: 19, Minute: 45}
	}
	return timeutil.Clock{Hour: 7, Minute: 45}
}

// WindowEnd returns the upper bound of the expected arrival window. Arrivals
// after this are late; variance within the window is not.
func (s Shift) WindowEnd() timeutil.Clock {
	return timeutil.AddMinutes(s.WindowStart(), ArrivalSpreadMinutes)
}
