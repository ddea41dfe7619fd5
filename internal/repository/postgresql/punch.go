package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements attendance.PunchRepository.
func (p *punchRepositoryImpl) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO attendance_punches (employee_id, date, login_time, logout_time, late)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		punch.EmployeeID,
		punch.Date,
		clockPtrToDB(punch.LoginTime),
		clockPtrToDB(punch.LogoutTime),
		punch.Late,
	).Scan(&punch.ID, &punch.CreatedAt, &punch.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Punch{}, attendance.ErrPunchExists
		}
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch, nil
}

// CreateBatch implements attendance.PunchRepository. Conflicting rows (an
// existing punch for the same employee and date) are skipped, so the seeder
// and the absence backfill job stay idempotent.
func (p *punchRepositoryImpl) CreateBatch(ctx context.Context, punches []attendance.Punch) (int, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO attendance_punches (employee_id, date, login_time, logout_time, late)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, punch := range punches {
		batch.Queue(query,
			punch.EmployeeID,
			punch.Date,
			clockPtrToDB(punch.LoginTime),
			clockPtrToDB(punch.LogoutTime),
			punch.Late,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range punches {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert punch batch: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// List implements attendance.PunchRepository.
func (p *punchRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.PunchRow, error) {
	q := GetQuerier(ctx, p.db)

	conditions := []string{"p.date >= $1", "p.date <= $2"}
	args := []interface{}{filter.StartDate, filter.EndDate}
	argPos := 3

	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("e.department = $%d", argPos))
		args = append(args, filter.Department)
		argPos++
	}

	if filter.Shift != "" {
		conditions = append(conditions, fmt.Sprintf("e.shift = $%d", argPos))
		args = append(args, filter.Shift)
		argPos++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.department ILIKE $%d OR p.employee_id = $%d)",
			argPos, argPos, argPos, argPos+1,
		))
		args = append(args, "%"+filter.Search+"%", filter.Search)
		argPos += 2
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.date, p.login_time, p.logout_time, p.late,
			   p.created_at, p.updated_at,
			   COALESCE(TRIM(e.first_name || ' ' || e.last_name), ''),
			   COALESCE(e.department, ''),
			   COALESCE(e.shift, '')
		FROM attendance_punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
	`, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var result []attendance.PunchRow
	for rows.Next() {
		var row attendance.PunchRow
		var loginStr, logoutStr *string
		if err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.Date, &loginStr, &logoutStr, &row.Late,
			&row.CreatedAt, &row.UpdatedAt,
			&row.EmployeeName, &row.Department, &row.Shift,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch row: %w", err)
		}

		if row.LoginTime, err = clockPtrFromDB(loginStr); err != nil {
			return nil, fmt.Errorf("punch %s has invalid login time: %w", row.ID, err)
		}
		if row.LogoutTime, err = clockPtrFromDB(logoutStr); err != nil {
			return nil, fmt.Errorf("punch %s has invalid logout time: %w", row.ID, err)
		}

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch rows: %w", err)
	}

	return result, nil
}

// ListEmployeeIDsWithPunch implements attendance.PunchRepository.
func (p *punchRepositoryImpl) ListEmployeeIDsWithPunch(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM attendance_punches WHERE date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punched employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee id rows: %w", err)
	}

	return ids, nil
}

// Punch times are stored as HH:MM text; the column is narrow on purpose, a
// punch has no timezone and no seconds.
func clockPtrToDB(c *timeutil.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

func clockPtrFromDB(s *string) (*timeutil.Clock, error) {
	if s == nil {
		return nil, nil
	}
	c, err := timeutil.ParseClock(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
