package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/internal/config"
	"github.com/natbar-dev/shiftplan/pkg/core/scheduling"
	"github.com/natbar-dev/shiftplan/pkg/db"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// GenerateScheduleInput is the parameter set for one generation run.
type GenerateScheduleInput struct {
	Year  int `validate:"required,min=2000,max=2200"`
	Month int `validate:"required,min=1,max=12"`
	// DryRun plans without saving.
	DryRun bool
	// Force saves even when some slots could not be filled.
	Force bool
}

// GenerateScheduleResult contains the planned schedule and save outcome.
type GenerateScheduleResult struct {
	Period   scheduling.Period
	Shifts   []scheduling.Shift
	Problems []scheduling.Shift
	Success  bool
	Saved    bool
}

// GenerateScheduleStore defines the database operations needed for generating a schedule
type GenerateScheduleStore interface {
	ListEmployees(ctx context.Context) ([]db.EmployeeRecord, error)
	ListConstraints(ctx context.Context, year int, month time.Month) ([]db.ConstraintRecord, error)
	ListRecurringConstraints(ctx context.Context) ([]db.RecurringConstraintRecord, error)
	ListVacationRequests(ctx context.Context, year int, month time.Month) ([]db.VacationRequestRecord, error)
	ReplaceShifts(ctx context.Context, year int, month time.Month, shifts []db.ShiftRecord) error
}

// GenerateSchedule plans a full month of shifts and replaces the stored
// schedule for that month. Unfillable slots do not block saving when Force
// is set; DryRun never saves.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	input GenerateScheduleInput,
) (*GenerateScheduleResult, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	period := scheduling.Period{Year: input.Year, Month: time.Month(input.Month)}
	logger.Debug("Starting generateSchedule",
		zap.String("period", period.String()),
		zap.Bool("dry_run", input.DryRun),
		zap.Bool("force", input.Force))

	// Step 1: DB query - Fetch employees
	logger.Debug("Fetching employees")
	employeeRecords, err := database.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	logger.Debug("Found employees", zap.Int("count", len(employeeRecords)))

	// Step 2: DB query - Fetch constraints for the month
	logger.Debug("Fetching constraints")
	constraintRecords, err := database.ListConstraints(ctx, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch constraints: %w", err)
	}
	logger.Debug("Found constraints", zap.Int("count", len(constraintRecords)))

	// Step 3: DB query - Fetch recurring constraints
	logger.Debug("Fetching recurring constraints")
	recurringRecords, err := database.ListRecurringConstraints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring constraints: %w", err)
	}
	logger.Debug("Found recurring constraints", zap.Int("count", len(recurringRecords)))

	// Step 4: DB query - Fetch vacation requests overlapping the month
	logger.Debug("Fetching vacation requests")
	vacationRecords, err := database.ListVacationRequests(ctx, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vacation requests: %w", err)
	}
	logger.Debug("Found vacation requests", zap.Int("count", len(vacationRecords)))

	// Step 5: Build the availability snapshot
	snapshot, err := scheduling.BuildSnapshot(
		period,
		constraintsFromRecords(constraintRecords),
		recurringFromRecords(recurringRecords),
		vacationsFromRecords(vacationRecords),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability snapshot: %w", err)
	}

	// Step 6: Expand configured closure rules into concrete dates
	closedDates, err := cfg.ClosureDates(period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to expand closure rules: %w", err)
	}
	logger.Debug("Expanded closure dates", zap.Int("count", len(closedDates)))

	// Step 7: Run the planner
	logger.Info("Running schedule planner", zap.String("period", period.String()))
	outcome, err := scheduling.Generate(scheduling.PlanConfig{
		Period:      period,
		Employees:   employeesFromRecords(employeeRecords),
		Snapshot:    snapshot,
		Policy:      policyFromConfig(cfg),
		ClosedDates: closedDates,
	})
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	problems := outcome.Problems()
	success := len(problems) == 0

	logger.Info("Planning completed",
		zap.Bool("success", success),
		zap.Int("shifts", len(outcome.Shifts)),
		zap.Int("problems", len(problems)))

	for _, problem := range problems {
		logger.Warn("Unfilled shift",
			zap.String("date", problem.Date.Format("2006-01-02")),
			zap.String("shift_type", string(problem.Type)),
			zap.Int("rejected_candidates", len(problem.UnassignmentDetails)))
	}

	// Determine if we should save the schedule to the database
	shouldSave := !input.DryRun && (success || input.Force)

	if shouldSave {
		logger.Info("Saving schedule to database",
			zap.Bool("success", success),
			zap.Bool("forced", input.Force && !success))
		records := shiftRecordsFromPlan(outcome.Shifts)
		if err := database.ReplaceShifts(ctx, period.Year, period.Month, records); err != nil {
			return nil, fmt.Errorf("failed to save schedule: %w", err)
		}
		logger.Info("Schedule saved", zap.Int("count", len(records)))
	} else if input.DryRun {
		logger.Info("Dry run mode - schedule not saved")
	} else {
		logger.Warn("Schedule has unfilled shifts - not saving (use force to save anyway)")
	}

	return &GenerateScheduleResult{
		Period:   period,
		Shifts:   outcome.Shifts,
		Problems: problems,
		Success:  success,
		Saved:    shouldSave,
	}, nil
}
