package cron

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	roster []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) Upsert(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	return f.roster, int64(len(f.roster)), nil
}
func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return f.roster, nil
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePunchRepo struct {
	punchedIDs []string
	inserted   []attendance.Punch
}

func (f *fakePunchRepo) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	return punch, nil
}
func (f *fakePunchRepo) CreateBatch(ctx context.Context, punches []attendance.Punch) (int, error) {
	f.inserted = append(f.inserted, punches...)
	return len(punches), nil
}
func (f *fakePunchRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.PunchRow, error) {
	return nil, nil
}
func (f *fakePunchRepo) ListEmployeeIDsWithPunch(ctx context.Context, date time.Time) ([]string, error) {
	return f.punchedIDs, nil
}

func TestBackfillAbsences(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{roster: []employee.Employee{
		{ID: "1", Shift: employee.ShiftDay},
		{ID: "2", Shift: employee.ShiftNight},
		{ID: "3", Shift: employee.ShiftDay},
	}}
	punchRepo := &fakePunchRepo{punchedIDs: []string{"2"}}

	jobs := NewAttendanceJobs(punchRepo, employeeRepo)
	require.NoError(t, jobs.BackfillAbsences(context.Background()))

	require.Len(t, punchRepo.inserted, 2)
	for _, p := range punchRepo.inserted {
		assert.Nil(t, p.LoginTime)
		assert.Nil(t, p.LogoutTime)
		assert.False(t, p.Late)
		assert.NotEqual(t, "2", p.EmployeeID)
	}
}

func TestBackfillAbsencesEmptyRoster(t *testing.T) {
	punchRepo := &fakePunchRepo{}
	jobs := NewAttendanceJobs(punchRepo, &fakeEmployeeRepo{})

	require.NoError(t, jobs.BackfillAbsences(context.Background()))
	assert.Empty(t, punchRepo.inserted)
}
