package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type ListRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Department string `json:"department"`
	Shift      string `json:"shift"`
	Search     string `json:"search"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	if r.StartDate != "" {
		var ok bool
		if start, ok = validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.EndDate != "" {
		var ok bool
		if end, ok = validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if !start.IsZero() && !end.IsZero() && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if r.Shift != "" {
		if !validator.IsInSlice(r.Shift, []string{"Day", "Night", "day", "night"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift",
				Message: "shift must be Day or Night",
			})
		}
	}

	if r.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be positive",
		})
	}

	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	Date         string  `json:"date"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Shift        string  `json:"shift"`
	Login        *string `json:"login"`
	Logout       *string `json:"logout"`
	TotalHours   float64 `json:"total_hours"`
	Late         bool    `json:"late"`
	Status       string  `json:"status"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		Date:         r.Date.Format("2006-01-02"),
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
		Shift:        r.Shift,
		Login:        clockPtrToString(r.Login),
		Logout:       clockPtrToString(r.Logout),
		TotalHours:   r.TotalHours,
		Late:         r.Late,
		Status:       string(r.Status),
	}
}

func clockPtrToString(c *timeutil.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
