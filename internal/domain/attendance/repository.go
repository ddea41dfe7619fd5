package attendance

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for raw punch rows. Punches are
// the only attendance state that is persisted; classified records are derived
// on the way out.
type PunchRepository interface {
	// Create inserts a single punch.
	Create(ctx context.Context, punch Punch) (Punch, error)

	// CreateBatch inserts punches in bulk. Used by the seeder and the
	// absence backfill job.
	CreateBatch(ctx context.Context, punches []Punch) (int, error)

	// List retrieves punches joined with roster metadata for a date range,
	// filtered but unpaginated. Ordering and pagination happen in the
	// service after classification.
	List(ctx context.Context, filter Filter) ([]PunchRow, error)

	// ListEmployeeIDsWithPunch returns the ids of employees that already
	// have a punch on the given date.
	ListEmployeeIDsWithPunch(ctx context.Context, date time.Time) ([]string, error)
}

// PunchRow is a punch with the roster metadata needed to classify and display
// it. EmployeeName, Department and Shift are empty for punches referencing an
// unknown employee; classification still proceeds with the Day-shift default.
type PunchRow struct {
	Punch
	EmployeeName string
	Department   string
	Shift        string
}

// Filter bounds a punch query. Dates are inclusive calendar days.
type Filter struct {
	StartDate  time.Time
	EndDate    time.Time
	Department string
	Shift      string
	Search     string
}
