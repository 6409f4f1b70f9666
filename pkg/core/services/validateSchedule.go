package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/internal/config"
	"github.com/natbar-dev/shiftplan/pkg/core/scheduling"
	"github.com/natbar-dev/shiftplan/pkg/db"
)

// ValidateScheduleInput selects the month to check.
type ValidateScheduleInput struct {
	Year  int `validate:"required,min=2000,max=2200"`
	Month int `validate:"required,min=1,max=12"`
}

// ScheduleViolation is one assigned shift that breaks at least one rule.
type ScheduleViolation struct {
	ShiftID    string
	Date       time.Time
	ShiftType  string
	EmployeeID string
	Reasons    []scheduling.Reason
}

// ValidateScheduleResult contains the outcome of checking a stored month.
type ValidateScheduleResult struct {
	Period scheduling.Period
	// TotalShifts counts stored rows; CheckedShifts excludes unassigned ones.
	TotalShifts   int
	CheckedShifts int
	Violations    []ScheduleViolation
	Clean         bool
}

// ValidateScheduleStore defines the database operations needed for validating a schedule
type ValidateScheduleStore interface {
	ListEmployees(ctx context.Context) ([]db.EmployeeRecord, error)
	ListConstraints(ctx context.Context, year int, month time.Month) ([]db.ConstraintRecord, error)
	ListRecurringConstraints(ctx context.Context) ([]db.RecurringConstraintRecord, error)
	ListVacationRequests(ctx context.Context, year int, month time.Month) ([]db.VacationRequestRecord, error)
	ListShifts(ctx context.Context, year int, month time.Month) ([]db.ShiftRecord, error)
}

// ValidateSchedule re-checks every assigned shift of a stored month against
// the full rule set. It catches violations introduced by manual edits after
// generation; it never modifies the schedule.
func ValidateSchedule(
	ctx context.Context,
	database ValidateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	input ValidateScheduleInput,
) (*ValidateScheduleResult, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	period := scheduling.Period{Year: input.Year, Month: time.Month(input.Month)}
	logger.Debug("Starting validateSchedule", zap.String("period", period.String()))

	logger.Debug("Fetching shifts")
	shiftRecords, err := database.ListShifts(ctx, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	logger.Debug("Found shifts", zap.Int("count", len(shiftRecords)))

	if len(shiftRecords) == 0 {
		return nil, fmt.Errorf("no schedule stored for %s - generate one first", period)
	}

	logger.Debug("Fetching employees")
	employeeRecords, err := database.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	logger.Debug("Fetching constraints")
	constraintRecords, err := database.ListConstraints(ctx, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch constraints: %w", err)
	}

	logger.Debug("Fetching recurring constraints")
	recurringRecords, err := database.ListRecurringConstraints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring constraints: %w", err)
	}

	logger.Debug("Fetching vacation requests")
	vacationRecords, err := database.ListVacationRequests(ctx, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vacation requests: %w", err)
	}

	snapshot, err := scheduling.BuildSnapshot(
		period,
		constraintsFromRecords(constraintRecords),
		recurringFromRecords(recurringRecords),
		vacationsFromRecords(vacationRecords),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability snapshot: %w", err)
	}

	shifts := shiftsFromRecords(shiftRecords)

	logger.Info("Validating schedule",
		zap.String("period", period.String()),
		zap.Int("shifts", len(shifts)))
	results, err := scheduling.Validate(
		shifts,
		employeesFromRecords(employeeRecords),
		snapshot,
		policyFromConfig(cfg),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Walk the stored shift order so the violation list is deterministic.
	var violations []ScheduleViolation
	for _, shift := range shifts {
		result, ok := results[shift.ID]
		if !ok || result.Eligible() {
			continue
		}
		violations = append(violations, ScheduleViolation{
			ShiftID:    shift.ID,
			Date:       shift.Date,
			ShiftType:  string(shift.Type),
			EmployeeID: shift.EmployeeID,
			Reasons:    result.Reasons,
		})
	}

	logger.Info("Validation completed",
		zap.Int("checked", len(results)),
		zap.Int("violations", len(violations)))

	for _, v := range violations {
		logger.Warn("Rule violation",
			zap.String("date", v.Date.Format("2006-01-02")),
			zap.String("shift_type", v.ShiftType),
			zap.String("employee_id", v.EmployeeID),
			zap.Int("reasons", len(v.Reasons)))
	}

	return &ValidateScheduleResult{
		Period:        period,
		TotalShifts:   len(shiftRecords),
		CheckedShifts: len(results),
		Violations:    violations,
		Clean:         len(violations) == 0,
	}, nil
}
