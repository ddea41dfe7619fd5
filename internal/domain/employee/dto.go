package employee

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	ID         string `json:"id,omitempty"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Shift      string `json:"shift"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if _, ok := ParseShift(r.Shift); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be Day or Night",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	Department string
	Shift      *Shift
	Search     string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Shift      string `json:"shift"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Department: emp.Department,
		Shift:      string(emp.Shift),
	}
}

// ImportEntry is one record of the JSON employee registry.
type ImportEntry struct {
	ID         string
	FirstName  string
	LastName   string
	Department string
	Shift      string
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}
