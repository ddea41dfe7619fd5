package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

// AttendanceJobs materializes explicit absences: roster employees with no
// punch on a finished day get an empty punch row, so range listings show
// Absent instead of silently missing days.
type AttendanceJobs struct {
	punchRepo    attendance.PunchRepository
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceJobs(punchRepo attendance.PunchRepository, employeeRepo employee.EmployeeRepository) *AttendanceJobs {
	return &AttendanceJobs{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("backfill_absences", 1*time.Hour, j.BackfillAbsences)
}

// BackfillAbsences inserts empty punches for yesterday for any employee that
// never clocked in. The batch insert skips conflicts, so reruns are harmless.
func (j *AttendanceJobs) BackfillAbsences(ctx context.Context) error {
	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	roster, err := j.employeeRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	if len(roster) == 0 {
		return nil
	}

	punched, err := j.punchRepo.ListEmployeeIDsWithPunch(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to load punched employee ids: %w", err)
	}

	seen := make(map[string]struct{}, len(punched))
	for _, id := range punched {
		seen[id] = struct{}{}
	}

	var missing []attendance.Punch
	for _, emp := range roster {
		if _, ok := seen[emp.ID]; ok {
			continue
		}
		missing = append(missing, attendance.Punch{
			EmployeeID: emp.ID,
			Date:       yesterday,
		})
	}

	if len(missing) == 0 {
		return nil
	}

	inserted, err := j.punchRepo.CreateBatch(ctx, missing)
	if err != nil {
		return fmt.Errorf("failed to backfill absences: %w", err)
	}

	slog.Info("Backfilled absences", "date", yesterday.Format("2006-01-02"), "count", inserted)
	return nil
}
