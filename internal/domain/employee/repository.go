package employee

import "context"

// EmployeeRepository defines data access methods for the employee roster.
type EmployeeRepository interface {
	// Create inserts a new roster entry.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves a single employee.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves roster entries with filters and pagination.
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)

	// ListAll retrieves the full roster, unfiltered. Used by the synthetic
	// data seeder and the absence backfill job.
	ListAll(ctx context.Context) ([]Employee, error)

	// Upsert inserts or refreshes a roster entry by id. Used by the JSON
	// registry import.
	Upsert(ctx context.Context, emp Employee) error

	// Delete removes a roster entry.
	Delete(ctx context.Context, id string) error
}
