package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

// DefaultWindowDays is the trailing range used when the caller gives no dates.
const DefaultWindowDays = 30

const defaultPageLimit = 20

type AttendanceServiceImpl struct {
	punchRepo attendance.PunchRepository
	policy    Policy
}

func NewAttendanceService(punchRepo attendance.PunchRepository, policy Policy) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		punchRepo: punchRepo,
		policy:    policy,
	}
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context, req attendance.ListRequest) ([]attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter, err := buildFilter(req, time.Now())
	if err != nil {
		return nil, err
	}

	rows, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, s.policy.BuildRecord(row))
	}

	// Sorting happens here rather than in SQL because employee ids compare
	// numerically when they are numeric strings.
	attendance.SortRecords(records)

	return records, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListRequest) ([]attendance.RecordResponse, int64, error) {
	records, err := s.ListAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(records))

	page := req.Page
	if page <= 0 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	start := (page - 1) * limit
	if start > len(records) {
		start = len(records)
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}

	responses := make([]attendance.RecordResponse, 0, end-start)
	for _, record := range records[start:end] {
		responses = append(responses, attendance.ToResponse(record))
	}

	return responses, total, nil
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, req attendance.ListRequest) (attendance.Summary, error) {
	records, err := s.ListAll(ctx, req)
	if err != nil {
		return attendance.Summary{}, err
	}
	return attendance.Summarize(records), nil
}

// buildFilter resolves the requested date range against now. An empty range
// defaults to the trailing DefaultWindowDays ending today; a single bound
// extends DefaultWindowDays in the other direction.
func buildFilter(req attendance.ListRequest, now time.Time) (attendance.Filter, error) {
	filter := attendance.Filter{
		Department: req.Department,
		Shift:      req.Shift,
		Search:     req.Search,
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return attendance.Filter{}, fmt.Errorf("invalid end_date: %w", err)
		}
		filter.EndDate = end
	} else {
		filter.EndDate = today
	}

	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return attendance.Filter{}, fmt.Errorf("invalid start_date: %w", err)
		}
		filter.StartDate = start
	} else {
		filter.StartDate = filter.EndDate.AddDate(0, 0, -(DefaultWindowDays - 1))
	}

	if filter.StartDate.After(filter.EndDate) {
		return attendance.Filter{}, attendance.ErrInvalidDateRange
	}

	// The repository compares shift text verbatim.
	if filter.Shift != "" {
		if filter.Shift == "day" {
			filter.Shift = "Day"
		}
		if filter.Shift == "night" {
			filter.Shift = "Night"
		}
	}

	return filter, nil
}
