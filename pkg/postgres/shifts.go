package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/natbar-dev/shiftplan/pkg/db"
)

// ListShifts retrieves the shift rows dated within a month.
func (d *DB) ListShifts(ctx context.Context, year int, month time.Month) ([]db.ShiftRecord, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := d.pool.Query(ctx, `
		SELECT id, date, shift_type, COALESCE(employee_id, ''), start_time, end_time,
		       status, unassignment_details, created_at, updated_at
		FROM shift
		WHERE date >= $1 AND date < $2
		ORDER BY date, shift_type
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.ShiftRecord
	for rows.Next() {
		var s db.ShiftRecord
		var details []byte
		if err := rows.Scan(
			&s.ID, &s.Date, &s.ShiftType, &s.EmployeeID, &s.StartTime, &s.EndTime,
			&s.Status, &details, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		if err := json.Unmarshal(details, &s.UnassignmentDetails); err != nil {
			return nil, fmt.Errorf("failed to decode unassignment details for shift %s: %w", s.ID, err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// ReplaceShifts atomically swaps the stored schedule for a month. It takes
// the period advisory lock so concurrent generations of the same month
// serialize rather than interleave their delete and insert phases.
func (d *DB) ReplaceShifts(ctx context.Context, year int, month time.Month, shifts []db.ShiftRecord) error {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockMonth(ctx, tx, year, month); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM shift WHERE date >= $1 AND date < $2
	`, start, end); err != nil {
		return fmt.Errorf("failed to delete shifts for %04d-%02d: %w", year, int(month), err)
	}

	for _, shift := range shifts {
		details, err := json.Marshal(shift.UnassignmentDetails)
		if err != nil {
			return fmt.Errorf("failed to encode unassignment details for shift %s: %w", shift.ID, err)
		}

		var employeeID *string
		if shift.EmployeeID != "" {
			employeeID = &shift.EmployeeID
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO shift (id, date, shift_type, employee_id, start_time, end_time, status, unassignment_details)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, shift.ID, shift.Date, shift.ShiftType, employeeID, shift.StartTime, shift.EndTime, shift.Status, details); err != nil {
			return fmt.Errorf("failed to insert shift %s: %w", shift.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
