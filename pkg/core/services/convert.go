package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/natbar-dev/shiftplan/internal/config"
	"github.com/natbar-dev/shiftplan/pkg/core/scheduling"
	"github.com/natbar-dev/shiftplan/pkg/db"
)

// Conversions between storage records and the scheduling core's types.
// The core never sees database records and the store never sees core types.

func employeesFromRecords(records []db.EmployeeRecord) []scheduling.Employee {
	employees := make([]scheduling.Employee, len(records))
	for i, r := range records {
		preferred := make([]scheduling.ShiftType, len(r.PreferredShiftTypes))
		for j, t := range r.PreferredShiftTypes {
			preferred[j] = scheduling.ShiftType(t)
		}
		blocked := make([]scheduling.ShiftType, len(r.BlockedShiftTypes))
		for j, t := range r.BlockedShiftTypes {
			blocked[j] = scheduling.ShiftType(t)
		}
		weekdays := make([]time.Weekday, len(r.BlockedWeekdays))
		for j, d := range r.BlockedWeekdays {
			weekdays[j] = time.Weekday(d)
		}

		employees[i] = scheduling.Employee{
			ID:                  r.ID,
			FirstName:           r.FirstName,
			LastName:            r.LastName,
			Active:              r.Active,
			Contract:            scheduling.ContractType(r.ContractType),
			PreferredShiftTypes: preferred,
			BlockedShiftTypes:   blocked,
			BlockedWeekdays:     weekdays,
			LastFridayDate:      r.LastFridayDate,
		}
	}
	return employees
}

func constraintsFromRecords(records []db.ConstraintRecord) []scheduling.Constraint {
	constraints := make([]scheduling.Constraint, len(records))
	for i, r := range records {
		constraints[i] = scheduling.Constraint{
			EmployeeID:  r.EmployeeID,
			Date:        scheduling.DayOnly(r.Date),
			Unavailable: r.Unavailable,
			Preference:  scheduling.PreferenceKind(r.Preference),
			Notes:       r.Notes,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return constraints
}

func recurringFromRecords(records []db.RecurringConstraintRecord) []scheduling.RecurringConstraint {
	recurring := make([]scheduling.RecurringConstraint, len(records))
	for i, r := range records {
		recurring[i] = scheduling.RecurringConstraint{
			EmployeeID: r.EmployeeID,
			Weekday:    time.Weekday(r.Weekday),
			Status:     scheduling.ApprovalStatus(r.Status),
			Notes:      r.Notes,
		}
	}
	return recurring
}

func vacationsFromRecords(records []db.VacationRequestRecord) []scheduling.VacationRequest {
	vacations := make([]scheduling.VacationRequest, len(records))
	for i, r := range records {
		vacations[i] = scheduling.VacationRequest{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			StartDate:    scheduling.DayOnly(r.StartDate),
			EndDate:      scheduling.DayOnly(r.EndDate),
			Type:         scheduling.VacationType(r.Type),
			Status:       scheduling.ApprovalStatus(r.Status),
			Notes:        r.Notes,
			ManagerNotes: r.ManagerNotes,
		}
	}
	return vacations
}

func shiftsFromRecords(records []db.ShiftRecord) []scheduling.Shift {
	shifts := make([]scheduling.Shift, len(records))
	for i, r := range records {
		shifts[i] = scheduling.Shift{
			ID:         r.ID,
			Date:       scheduling.DayOnly(r.Date),
			Type:       scheduling.ShiftType(r.ShiftType),
			EmployeeID: r.EmployeeID,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			Status:     scheduling.ShiftStatus(r.Status),
		}
	}
	return shifts
}

// shiftRecordsFromPlan converts planned shifts to storage records. Each
// record gets a fresh row ID; the plan's deterministic shift keys are not
// reused because regeneration replaces the rows wholesale.
func shiftRecordsFromPlan(shifts []scheduling.Shift) []db.ShiftRecord {
	records := make([]db.ShiftRecord, len(shifts))
	for i, s := range shifts {
		details := make([]db.UnassignmentDetailRecord, len(s.UnassignmentDetails))
		for j, d := range s.UnassignmentDetails {
			reasons := make([]string, len(d.Reasons))
			for k, reason := range d.Reasons {
				reasons[k] = fmt.Sprintf("%s: %s", reason.Code, reason.Detail)
			}
			details[j] = db.UnassignmentDetailRecord{
				EmployeeID: d.EmployeeID,
				Reasons:    reasons,
			}
		}

		records[i] = db.ShiftRecord{
			ID:                  uuid.New().String(),
			Date:                s.Date,
			ShiftType:           string(s.Type),
			EmployeeID:          s.EmployeeID,
			StartTime:           s.StartTime,
			EndTime:             s.EndTime,
			Status:              string(s.Status),
			UnassignmentDetails: details,
		}
	}
	return records
}

func policyFromConfig(cfg *config.Config) scheduling.Policy {
	policy := scheduling.DefaultPolicy()
	if cfg.Policy.WeeklyShiftLimit > 0 {
		policy.WeeklyShiftLimit = cfg.Policy.WeeklyShiftLimit
	}
	policy.CountFridayTowardWeekly = cfg.Policy.CountFridayTowardWeekly
	policy.RotationSeed = cfg.Policy.RotationSeed
	return policy
}
