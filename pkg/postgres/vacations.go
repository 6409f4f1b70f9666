package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/natbar-dev/shiftplan/pkg/db"
)

// ListVacationRequests retrieves the vacation requests whose range overlaps
// a month.
func (d *DB) ListVacationRequests(ctx context.Context, year int, month time.Month) ([]db.VacationRequestRecord, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, start_date, end_date, type, status, notes, manager_notes, created_at, updated_at
		FROM vacation_request
		WHERE start_date < $2 AND end_date >= $1
		ORDER BY employee_id, start_date
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacation requests: %w", err)
	}
	defer rows.Close()

	var requests []db.VacationRequestRecord
	for rows.Next() {
		var v db.VacationRequestRecord
		if err := rows.Scan(
			&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.Type,
			&v.Status, &v.Notes, &v.ManagerNotes, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vacation requests: %w", err)
	}

	return requests, nil
}

// GetVacationRequest retrieves a single vacation request by ID. Returns nil
// without error when no request exists.
func (d *DB) GetVacationRequest(ctx context.Context, id string) (*db.VacationRequestRecord, error) {
	var v db.VacationRequestRecord
	err := d.pool.QueryRow(ctx, `
		SELECT id, employee_id, start_date, end_date, type, status, notes, manager_notes, created_at, updated_at
		FROM vacation_request
		WHERE id = $1
	`, id).Scan(
		&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.Type,
		&v.Status, &v.Notes, &v.ManagerNotes, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation request %s: %w", id, err)
	}

	return &v, nil
}

// UpdateVacationRequest writes the mutable fields of a vacation request.
func (d *DB) UpdateVacationRequest(ctx context.Context, record db.VacationRequestRecord) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE vacation_request
		SET status = $2, manager_notes = $3, updated_at = NOW()
		WHERE id = $1
	`, record.ID, record.Status, record.ManagerNotes)
	if err != nil {
		return fmt.Errorf("failed to update vacation request %s: %w", record.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vacation request %s not found", record.ID)
	}
	return nil
}
