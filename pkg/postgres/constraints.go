package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/natbar-dev/shiftplan/pkg/db"
)

// ListConstraints retrieves the constraint records dated within a month.
func (d *DB) ListConstraints(ctx context.Context, year int, month time.Month) ([]db.ConstraintRecord, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, date, unavailable, preference, notes, created_at, updated_at
		FROM constraint_record
		WHERE date >= $1 AND date < $2
		ORDER BY employee_id, date
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query constraints: %w", err)
	}
	defer rows.Close()

	var constraints []db.ConstraintRecord
	for rows.Next() {
		var c db.ConstraintRecord
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Date, &c.Unavailable, &c.Preference, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan constraint: %w", err)
		}
		constraints = append(constraints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating constraints: %w", err)
	}

	return constraints, nil
}

// UpsertConstraint writes a constraint, superseding any existing record on
// the same (employee, date) key.
func (d *DB) UpsertConstraint(ctx context.Context, record db.ConstraintRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO constraint_record (id, employee_id, date, unavailable, preference, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			unavailable = EXCLUDED.unavailable,
			preference = EXCLUDED.preference,
			notes = EXCLUDED.notes,
			updated_at = NOW()
	`, record.ID, record.EmployeeID, record.Date, record.Unavailable, record.Preference, record.Notes)
	if err != nil {
		return fmt.Errorf("failed to upsert constraint: %w", err)
	}
	return nil
}

// InsertConstraints writes a batch of constraints in one transaction,
// superseding existing records on conflicting keys. Used when approving a
// vacation materializes one unavailable day per date of the range.
func (d *DB) InsertConstraints(ctx context.Context, records []db.ConstraintRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, record := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO constraint_record (id, employee_id, date, unavailable, preference, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (employee_id, date) DO UPDATE SET
				unavailable = EXCLUDED.unavailable,
				preference = EXCLUDED.preference,
				notes = EXCLUDED.notes,
				updated_at = NOW()
		`, record.ID, record.EmployeeID, record.Date, record.Unavailable, record.Preference, record.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert constraint: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListRecurringConstraints retrieves all recurring weekly rules.
func (d *DB) ListRecurringConstraints(ctx context.Context) ([]db.RecurringConstraintRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, weekday, status, notes, created_at, updated_at
		FROM recurring_constraint
		ORDER BY employee_id, weekday
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring constraints: %w", err)
	}
	defer rows.Close()

	var records []db.RecurringConstraintRecord
	for rows.Next() {
		var r db.RecurringConstraintRecord
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Weekday, &r.Status, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recurring constraint: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring constraints: %w", err)
	}

	return records, nil
}
