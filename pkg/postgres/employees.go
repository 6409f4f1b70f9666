package postgres

import (
	"context"
	"fmt"

	"github.com/natbar-dev/shiftplan/pkg/db"
)

// ListEmployees retrieves all employee records.
func (d *DB) ListEmployees(ctx context.Context) ([]db.EmployeeRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, active, contract_type,
		       preferred_shift_types, blocked_shift_types, blocked_weekdays,
		       last_friday_date, created_at, updated_at
		FROM employee
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.EmployeeRecord
	for rows.Next() {
		var e db.EmployeeRecord
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.Active, &e.ContractType,
			&e.PreferredShiftTypes, &e.BlockedShiftTypes, &e.BlockedWeekdays,
			&e.LastFridayDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}
