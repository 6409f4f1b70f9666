package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/pkg/db"
)

// SubmitConstraintInput is one employee's availability entry for a date.
type SubmitConstraintInput struct {
	EmployeeID  string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
	Unavailable bool
	Preference  string `validate:"omitempty,oneof=SHORT LONG MORNING EVENING"`
	Notes       string
}

// SubmitConstraintStore defines the database operations needed for submitting a constraint
type SubmitConstraintStore interface {
	ListEmployees(ctx context.Context) ([]db.EmployeeRecord, error)
	UpsertConstraint(ctx context.Context, record db.ConstraintRecord) error
}

// SubmitConstraint records an availability constraint, superseding any
// earlier entry for the same employee and date.
func SubmitConstraint(
	ctx context.Context,
	database SubmitConstraintStore,
	logger *zap.Logger,
	input SubmitConstraintInput,
) (*db.ConstraintRecord, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", input.Date, err)
	}

	logger.Debug("Starting submitConstraint",
		zap.String("employee_id", input.EmployeeID),
		zap.String("date", input.Date),
		zap.Bool("unavailable", input.Unavailable))

	employees, err := database.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	found := false
	for _, emp := range employees {
		if emp.ID == input.EmployeeID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("employee %s not found", input.EmployeeID)
	}

	record := db.ConstraintRecord{
		ID:          uuid.New().String(),
		EmployeeID:  input.EmployeeID,
		Date:        date,
		Unavailable: input.Unavailable,
		Preference:  input.Preference,
		Notes:       input.Notes,
	}

	if err := database.UpsertConstraint(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save constraint: %w", err)
	}

	logger.Info("Constraint saved",
		zap.String("employee_id", record.EmployeeID),
		zap.String("date", input.Date))

	return &record, nil
}
