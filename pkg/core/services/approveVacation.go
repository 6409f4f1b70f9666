package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/pkg/core/scheduling"
	"github.com/natbar-dev/shiftplan/pkg/db"
)

// ApproveVacationInput is the review decision for one pending request.
type ApproveVacationInput struct {
	RequestID    string `validate:"required"`
	Approve      bool
	ManagerNotes string
}

// ApproveVacationResult contains the reviewed request and, on approval, the
// number of dates materialized as unavailability constraints.
type ApproveVacationResult struct {
	Request     db.VacationRequestRecord
	DaysBlocked int
}

// ApproveVacationStore defines the database operations needed for reviewing a vacation request
type ApproveVacationStore interface {
	GetVacationRequest(ctx context.Context, id string) (*db.VacationRequestRecord, error)
	UpdateVacationRequest(ctx context.Context, record db.VacationRequestRecord) error
	InsertConstraints(ctx context.Context, records []db.ConstraintRecord) error
}

// ApproveVacation reviews a pending vacation request. Approval also writes
// one unavailable constraint per date of the range, so the planner and
// validator see the absence without consulting vacation state separately.
func ApproveVacation(
	ctx context.Context,
	database ApproveVacationStore,
	logger *zap.Logger,
	input ApproveVacationInput,
) (*ApproveVacationResult, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	logger.Debug("Starting approveVacation",
		zap.String("request_id", input.RequestID),
		zap.Bool("approve", input.Approve))

	request, err := database.GetVacationRequest(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vacation request: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("vacation request %s not found", input.RequestID)
	}
	if request.Status != string(scheduling.StatusPending) {
		return nil, fmt.Errorf("vacation request %s already reviewed (status %s)", request.ID, request.Status)
	}

	if input.Approve {
		request.Status = string(scheduling.StatusApproved)
	} else {
		request.Status = string(scheduling.StatusRejected)
	}
	request.ManagerNotes = input.ManagerNotes

	logger.Info("Updating vacation request",
		zap.String("request_id", request.ID),
		zap.String("employee_id", request.EmployeeID),
		zap.String("status", request.Status))
	if err := database.UpdateVacationRequest(ctx, *request); err != nil {
		return nil, fmt.Errorf("failed to update vacation request: %w", err)
	}

	result := &ApproveVacationResult{Request: *request}
	if !input.Approve {
		return result, nil
	}

	// Materialize the approved range as per-date constraints, end inclusive.
	var constraints []db.ConstraintRecord
	for d := scheduling.DayOnly(request.StartDate); !d.After(scheduling.DayOnly(request.EndDate)); d = d.AddDate(0, 0, 1) {
		constraints = append(constraints, db.ConstraintRecord{
			ID:          uuid.New().String(),
			EmployeeID:  request.EmployeeID,
			Date:        d,
			Unavailable: true,
			Notes:       fmt.Sprintf("vacation %s", request.ID),
		})
	}

	logger.Info("Materializing vacation constraints",
		zap.String("request_id", request.ID),
		zap.Int("days", len(constraints)))
	if err := database.InsertConstraints(ctx, constraints); err != nil {
		return nil, fmt.Errorf("failed to insert vacation constraints: %w", err)
	}

	result.DaysBlocked = len(constraints)
	return result, nil
}
