package attendance

import (
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
)

func clock(t *testing.T, s string) *timeutil.Clock {
	t.Helper()
	c, err := timeutil.ParseClock(s)
	if err != nil {
		t.Fatalf("bad clock literal %q: %v", s, err)
	}
	return &c
}

func TestClassify(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name   string
		login  string
		logout string
		hours  float64
		late   bool
		want   attendance.Status
	}{
		{"no login no logout", "", "", 0, false, attendance.StatusAbsent},
		{"open session", "08:00", "", 0, false, attendance.StatusPresent},
		{"open session flagged late stays present", "09:30", "", 0, true, attendance.StatusPresent},
		{"full day", "08:00", "16:30", 8.5, false, attendance.StatusPresent},
		{"full day but late login", "09:00", "17:30", 8.5, true, attendance.StatusLate},
		{"exactly eight hours", "08:00", "16:00", 8, false, attendance.StatusPresent},
		{"exactly eight hours late", "08:00", "16:00", 8, true, attendance.StatusLate},
		{"exactly six hours is partial", "08:00", "14:00", 6, false, attendance.StatusPartialDay},
		{"seven hours is partial", "08:00", "15:00", 7, false, attendance.StatusPartialDay},
		{"under six hours is early leave", "08:00", "12:30", 4.5, false, attendance.StatusEarlyLeave},
		{"one minute worked is early leave", "08:00", "08:01", 0.02, false, attendance.StatusEarlyLeave},
		{"zero hours with both times is anomaly", "08:00", "08:00", 0, false, attendance.StatusAbsent},
		{"logout without login", "", "16:00", 0, false, attendance.StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var login, logout *timeutil.Clock
			if tt.login != "" {
				login = clock(t, tt.login)
			}
			if tt.logout != "" {
				logout = clock(t, tt.logout)
			}

			got := policy.Classify(login, logout, tt.hours, tt.late)
			assert.Equal(t, tt.want, got)

			// Classification is pure: same inputs, same status.
			assert.Equal(t, got, policy.Classify(login, logout, tt.hours, tt.late))
		})
	}
}

func TestClassifyConfigurableThresholds(t *testing.T) {
	policy := Policy{PresentHours: 7, PartialHours: 5}

	assert.Equal(t, attendance.StatusPresent, policy.Classify(clock(t, "08:00"), clock(t, "15:00"), 7, false))
	assert.Equal(t, attendance.StatusPartialDay, policy.Classify(clock(t, "08:00"), clock(t, "13:30"), 5.5, false))
	assert.Equal(t, attendance.StatusEarlyLeave, policy.Classify(clock(t, "08:00"), clock(t, "12:00"), 4, false))
}

func TestBuildRecord(t *testing.T) {
	policy := DefaultPolicy()
	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	row := func(login, logout string, shift string, late bool) attendance.PunchRow {
		r := attendance.PunchRow{
			Punch: attendance.Punch{
				ID:         "p1",
				EmployeeID: "42",
				Date:       date,
				Late:       late,
			},
			EmployeeName: "Ada Lovelace",
			Department:   "Engineering",
			Shift:        shift,
		}
		if login != "" {
			r.LoginTime = clock(t, login)
		}
		if logout != "" {
			r.LogoutTime = clock(t, logout)
		}
		return r
	}

	t.Run("day shift full day", func(t *testing.T) {
		rec := policy.BuildRecord(row("07:50", "16:05", "Day", false))
		assert.Equal(t, 8.25, rec.TotalHours)
		assert.Equal(t, attendance.StatusPresent, rec.Status)
		assert.Equal(t, "Day", rec.Shift)
	})

	t.Run("night shift over midnight", func(t *testing.T) {
		rec := policy.BuildRecord(row("20:10", "04:30", "Night", false))
		assert.Equal(t, 8.33, rec.TotalHours)
		assert.Equal(t, attendance.StatusPresent, rec.Status)
	})

	t.Run("early leave", func(t *testing.T) {
		rec := policy.BuildRecord(row("08:00", "12:30", "Day", false))
		assert.Equal(t, 4.5, rec.TotalHours)
		assert.Equal(t, attendance.StatusEarlyLeave, rec.Status)
	})

	t.Run("absence carries zero hours", func(t *testing.T) {
		rec := policy.BuildRecord(row("", "", "Day", false))
		assert.Zero(t, rec.TotalHours)
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.Nil(t, rec.Login)
		assert.Nil(t, rec.Logout)
	})

	t.Run("orphan logout is dropped and absent", func(t *testing.T) {
		rec := policy.BuildRecord(row("", "16:00", "Day", false))
		assert.Zero(t, rec.TotalHours)
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.Nil(t, rec.Logout)
	})

	t.Run("unknown employee defaults to day shift", func(t *testing.T) {
		rec := policy.BuildRecord(row("08:00", "16:30", "", false))
		assert.Equal(t, "Day", rec.Shift)
		assert.Equal(t, attendance.StatusPresent, rec.Status)
	})

	t.Run("late flag carried through", func(t *testing.T) {
		rec := policy.BuildRecord(row("09:05", "17:30", "Day", true))
		assert.True(t, rec.Late)
		assert.Equal(t, attendance.StatusLate, rec.Status)
	})
}
