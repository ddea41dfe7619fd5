package attendance

import "context"

// AttendanceService derives classified records from stored punches.
type AttendanceService interface {
	// List returns one page of classified records for the filtered range,
	// sorted by date descending then employee id ascending, together with
	// the total record count before pagination.
	List(ctx context.Context, req ListRequest) ([]RecordResponse, int64, error)

	// ListAll returns every classified record for the filtered range,
	// unpaginated, in the same order as List.
	ListAll(ctx context.Context, req ListRequest) ([]Record, error)

	// Summary tallies statuses over the filtered range.
	Summary(ctx context.Context, req ListRequest) (Summary, error)
}
