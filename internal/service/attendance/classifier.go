package attendance

import (
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

// Policy holds the classification thresholds. The defaults mirror observed
// business behavior rather than documented rules, so both are configurable.
type Policy struct {
	// PresentHours is the minimum worked hours for a full day.
	PresentHours float64
	// PartialHours is the minimum worked hours for a partial day; anything
	// below it (but above zero) is an early leave.
	PartialHours float64
}

func DefaultPolicy() Policy {
	return Policy{PresentHours: 8, PartialHours: 6}
}

// Classify assigns exactly one status to a punch. It is a pure total function:
// it never fails, malformed times are rejected upstream by timeutil before a
// punch reaches it.
//
// The rules are an ordered decision list, first match wins:
//
//  1. no login                        -> Absent (covers the logout-without-login anomaly too)
//  2. login, no logout                -> Present (open session, no overnight inference without a logout)
//  3. hours >= PresentHours           -> Late when the ingestion-time late flag is set, else Present
//  4. PartialHours <= hours < Present -> Partial Day
//  5. 0 < hours < PartialHours        -> Early Leave
//  6. hours <= 0 with both times      -> Absent (data anomaly)
func (p Policy) Classify(login, logout *timeutil.Clock, totalHours float64, late bool) attendance.Status {
	switch {
	case login == nil:
		return attendance.StatusAbsent
	case logout == nil:
		return attendance.StatusPresent
	case totalHours >= p.PresentHours:
		if late {
			return attendance.StatusLate
		}
		return attendance.StatusPresent
	case totalHours >= p.PartialHours:
		return attendance.StatusPartialDay
	case totalHours > 0:
		return attendance.StatusEarlyLeave
	default:
		return attendance.StatusAbsent
	}
}

// BuildRecord computes hours and status for one punch row. TotalHours is zero
// whenever either time is missing; it is never negative.
func (p Policy) BuildRecord(row attendance.PunchRow) attendance.Record {
	var totalHours float64
	if row.LoginTime != nil && row.LogoutTime != nil {
		totalHours = timeutil.HoursBetween(*row.LoginTime, *row.LogoutTime)
	}

	login := row.LoginTime
	logout := row.LogoutTime
	if login == nil {
		// Logout without login is not a valid observed state; drop the
		// orphan logout and classify the day as absent.
		logout = nil
	}

	// Unknown or empty roster shift falls back to Day.
	shift, _ := employee.ParseShift(row.Shift)

	return attendance.Record{
		Date:         row.Date,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		Department:   row.Department,
		Shift:        string(shift),
		Login:        login,
		Logout:       logout,
		TotalHours:   totalHours,
		Late:         row.Late,
		Status:       p.Classify(login, logout, totalHours, row.Late),
	}
}
