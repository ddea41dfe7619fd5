package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	rows       []attendance.PunchRow
	lastFilter attendance.Filter
}

func (f *fakePunchRepo) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	return punch, nil
}

func (f *fakePunchRepo) CreateBatch(ctx context.Context, punches []attendance.Punch) (int, error) {
	return len(punches), nil
}

func (f *fakePunchRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.PunchRow, error) {
	f.lastFilter = filter

	var out []attendance.PunchRow
	for _, row := range f.rows {
		if row.Date.Before(filter.StartDate) || row.Date.After(filter.EndDate) {
			continue
		}
		if filter.Department != "" && row.Department != filter.Department {
			continue
		}
		if filter.Shift != "" && row.Shift != filter.Shift {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakePunchRepo) ListEmployeeIDsWithPunch(ctx context.Context, date time.Time) ([]string, error) {
	var ids []string
	for _, row := range f.rows {
		if row.Date.Equal(date) {
			ids = append(ids, row.EmployeeID)
		}
	}
	return ids, nil
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func punchRow(t *testing.T, id, date, login, logout, dept, shift string, late bool) attendance.PunchRow {
	t.Helper()
	row := attendance.PunchRow{
		Punch: attendance.Punch{
			ID:         "p-" + id + "-" + date,
			EmployeeID: id,
			Date:       day(t, date),
			Late:       late,
		},
		EmployeeName: "Employee " + id,
		Department:   dept,
		Shift:        shift,
	}
	if login != "" {
		row.LoginTime = clock(t, login)
	}
	if logout != "" {
		row.LogoutTime = clock(t, logout)
	}
	return row
}

func TestAttendanceServiceListOrdering(t *testing.T) {
	repo := &fakePunchRepo{rows: []attendance.PunchRow{
		punchRow(t, "10", "2026-08-20", "08:00", "16:30", "Engineering", "Day", false),
		punchRow(t, "2", "2026-08-20", "08:05", "16:40", "Engineering", "Day", false),
		punchRow(t, "2", "2026-08-21", "08:00", "16:30", "Engineering", "Day", false),
		punchRow(t, "10", "2026-08-21", "", "", "Engineering", "Day", false),
	}}
	svc := NewAttendanceService(repo, DefaultPolicy())

	got, total, err := svc.List(context.Background(), attendance.ListRequest{
		StartDate: "2026-08-20",
		EndDate:   "2026-08-21",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, got, 4)

	// Date descending, then numeric employee id ascending ("2" before "10").
	assert.Equal(t, "2026-08-21", got[0].Date)
	assert.Equal(t, "2", got[0].EmployeeID)
	assert.Equal(t, "2026-08-21", got[1].Date)
	assert.Equal(t, "10", got[1].EmployeeID)
	assert.Equal(t, "2026-08-20", got[2].Date)
	assert.Equal(t, "2", got[2].EmployeeID)
	assert.Equal(t, "10", got[3].EmployeeID)

	// The absent day carries nulls and zero hours.
	assert.Equal(t, "Absent", got[1].Status)
	assert.Nil(t, got[1].Login)
	assert.Zero(t, got[1].TotalHours)
}

func TestAttendanceServiceListPagination(t *testing.T) {
	repo := &fakePunchRepo{}
	for i := 1; i <= 5; i++ {
		repo.rows = append(repo.rows,
			punchRow(t, string(rune('0'+i)), "2026-08-20", "08:00", "16:30", "Engineering", "Day", false))
	}
	svc := NewAttendanceService(repo, DefaultPolicy())

	req := attendance.ListRequest{StartDate: "2026-08-20", EndDate: "2026-08-20", Page: 2, Limit: 2}
	got, total, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].EmployeeID)
	assert.Equal(t, "4", got[1].EmployeeID)

	// Page past the end is empty, not an error.
	req.Page = 9
	got, total, err = svc.List(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, got)
}

func TestAttendanceServiceListRejectsBadRange(t *testing.T) {
	svc := NewAttendanceService(&fakePunchRepo{}, DefaultPolicy())

	_, _, err := svc.List(context.Background(), attendance.ListRequest{
		StartDate: "2026-08-21",
		EndDate:   "2026-08-20",
	})
	assert.Error(t, err)

	_, _, err = svc.List(context.Background(), attendance.ListRequest{StartDate: "21-08-2026"})
	assert.Error(t, err)
}

func TestAttendanceServiceDefaultWindow(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := NewAttendanceService(repo, DefaultPolicy())

	_, _, err := svc.List(context.Background(), attendance.ListRequest{})
	require.NoError(t, err)

	gap := repo.lastFilter.EndDate.Sub(repo.lastFilter.StartDate)
	assert.Equal(t, time.Duration(DefaultWindowDays-1)*24*time.Hour, gap)
}

func TestAttendanceServiceSummary(t *testing.T) {
	repo := &fakePunchRepo{rows: []attendance.PunchRow{
		punchRow(t, "1", "2026-08-20", "08:00", "16:30", "Engineering", "Day", false), // Present
		punchRow(t, "2", "2026-08-20", "09:10", "17:40", "Engineering", "Day", true),  // Late
		punchRow(t, "3", "2026-08-20", "", "", "Engineering", "Day", false),           // Absent
		punchRow(t, "4", "2026-08-20", "08:00", "12:30", "Engineering", "Day", false), // Early Leave
		punchRow(t, "5", "2026-08-20", "08:00", "15:00", "Engineering", "Day", false), // Partial Day
		punchRow(t, "6", "2026-08-20", "08:00", "16:00", "Engineering", "Day", false), // Present (exactly 8h)
	}}
	svc := NewAttendanceService(repo, DefaultPolicy())

	summary, err := svc.Summary(context.Background(), attendance.ListRequest{
		StartDate: "2026-08-20",
		EndDate:   "2026-08-20",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, summary.Total)

	counts := make(map[attendance.Status]int)
	percents := make(map[attendance.Status]float64)
	for _, sc := range summary.Statuses {
		counts[sc.Status] = sc.Count
		percents[sc.Status] = sc.Percent
	}
	assert.Equal(t, 2, counts[attendance.StatusPresent])
	assert.Equal(t, 1, counts[attendance.StatusLate])
	assert.Equal(t, 1, counts[attendance.StatusAbsent])
	assert.Equal(t, 1, counts[attendance.StatusEarlyLeave])
	assert.Equal(t, 1, counts[attendance.StatusPartialDay])

	assert.Equal(t, 33.33, percents[attendance.StatusPresent])
	assert.Equal(t, 16.67, percents[attendance.StatusLate])
}
