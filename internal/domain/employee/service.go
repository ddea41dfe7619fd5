package employee

import "context"

// EmployeeService manages the roster.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, filter Filter) ([]EmployeeResponse, int64, error)
	Delete(ctx context.Context, id string) error

	// Import upserts roster entries from the JSON employee registry.
	Import(ctx context.Context, entries []ImportEntry) (ImportResult, error)
}
