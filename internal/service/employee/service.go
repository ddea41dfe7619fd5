package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	id := req.ID
	if validator.IsEmpty(id) {
		id = uuid.NewString()
	}

	shift, _ := employee.ParseShift(req.Shift)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Shift:      shift,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, total, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// Import implements employee.EmployeeService. Entries are upserted inside one
// transaction; invalid entries are skipped with a warning rather than failing
// the whole batch.
func (s *EmployeeServiceImpl) Import(ctx context.Context, entries []employee.ImportEntry) (employee.ImportResult, error) {
	var result employee.ImportResult

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, entry := range entries {
			if validator.IsEmpty(entry.ID) {
				result.Skipped++
				result.Warnings = append(result.Warnings, "skipped entry with empty id")
				continue
			}
			if validator.IsEmpty(entry.FirstName) && validator.IsEmpty(entry.LastName) {
				result.Skipped++
				result.Warnings = append(result.Warnings, fmt.Sprintf("skipped entry %s: no name", entry.ID))
				continue
			}

			shift, ok := employee.ParseShift(entry.Shift)
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("entry %s: unrecognized shift %q, defaulting to Day", entry.ID, entry.Shift))
			}

			if err := s.employeeRepo.Upsert(txCtx, employee.Employee{
				ID:         entry.ID,
				FirstName:  entry.FirstName,
				LastName:   entry.LastName,
				Department: entry.Department,
				Shift:      shift,
			}); err != nil {
				return fmt.Errorf("failed to import employee %s: %w", entry.ID, err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return employee.ImportResult{}, err
	}

	for _, warning := range result.Warnings {
		slog.Warn("registry import", "warning", warning)
	}

	return result, nil
}
