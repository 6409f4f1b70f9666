package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/pkg/core/scheduling"
	"github.com/natbar-dev/shiftplan/pkg/db"
)

// mockValidateScheduleStore implements ValidateScheduleStore for testing
type mockValidateScheduleStore struct {
	employees   []db.EmployeeRecord
	constraints []db.ConstraintRecord
	recurring   []db.RecurringConstraintRecord
	vacations   []db.VacationRequestRecord
	shifts      []db.ShiftRecord

	listShiftsErr error
}

func (m *mockValidateScheduleStore) ListEmployees(ctx context.Context) ([]db.EmployeeRecord, error) {
	return m.employees, nil
}

func (m *mockValidateScheduleStore) ListConstraints(ctx context.Context, year int, month time.Month) ([]db.ConstraintRecord, error) {
	return m.constraints, nil
}

func (m *mockValidateScheduleStore) ListRecurringConstraints(ctx context.Context) ([]db.RecurringConstraintRecord, error) {
	return m.recurring, nil
}

func (m *mockValidateScheduleStore) ListVacationRequests(ctx context.Context, year int, month time.Month) ([]db.VacationRequestRecord, error) {
	return m.vacations, nil
}

func (m *mockValidateScheduleStore) ListShifts(ctx context.Context, year int, month time.Month) ([]db.ShiftRecord, error) {
	if m.listShiftsErr != nil {
		return nil, m.listShiftsErr
	}
	return m.shifts, nil
}

func storedShift(id, date, shiftType, employeeID string) db.ShiftRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	status := "OK"
	if employeeID == "" {
		status = "PROBLEM"
	}
	return db.ShiftRecord{
		ID:         id,
		Date:       d,
		ShiftType:  shiftType,
		EmployeeID: employeeID,
		StartTime:  "08:00",
		EndTime:    "16:00",
		Status:     status,
	}
}

func TestValidateSchedule_CleanSchedule(t *testing.T) {
	store := &mockValidateScheduleStore{
		employees: testEmployeeRecords(2),
		shifts: []db.ShiftRecord{
			storedShift("s1", "2024-06-03", "MORNING", "e01"),
			storedShift("s2", "2024-06-03", "EVENING_TYPE2", "e02"),
		},
	}

	result, err := ValidateSchedule(context.Background(), store, testConfig(), zap.NewNop(), ValidateScheduleInput{
		Year:  2024,
		Month: 6,
	})
	require.NoError(t, err)

	assert.True(t, result.Clean)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 2, result.TotalShifts)
	assert.Equal(t, 2, result.CheckedShifts)
}

func TestValidateSchedule_FlagsWeeklyLimit(t *testing.T) {
	// Three shifts in one week for the same employee; the limit is two.
	store := &mockValidateScheduleStore{
		employees: testEmployeeRecords(2),
		shifts: []db.ShiftRecord{
			storedShift("s1", "2024-06-03", "MORNING", "e01"),
			storedShift("s2", "2024-06-04", "EVENING_TYPE1", "e01"),
			storedShift("s3", "2024-06-05", "MORNING", "e01"),
		},
	}

	result, err := ValidateSchedule(context.Background(), store, testConfig(), zap.NewNop(), ValidateScheduleInput{
		Year:  2024,
		Month: 6,
	})
	require.NoError(t, err)

	assert.False(t, result.Clean)
	require.Len(t, result.Violations, 3)

	// The Wednesday shift also repeats Monday's shift type.
	wednesday := result.Violations[2]
	assert.Equal(t, "s3", wednesday.ShiftID)
	codes := make([]scheduling.ReasonCode, len(wednesday.Reasons))
	for i, r := range wednesday.Reasons {
		codes[i] = r.Code
	}
	assert.Contains(t, codes, scheduling.ReasonWeeklyLimitExceeded)
	assert.Contains(t, codes, scheduling.ReasonSameShiftTypeThisWeek)
}

func TestValidateSchedule_FlagsUnavailableAssignment(t *testing.T) {
	store := &mockValidateScheduleStore{
		employees: testEmployeeRecords(2),
		constraints: []db.ConstraintRecord{
			{
				ID:          "c1",
				EmployeeID:  "e01",
				Date:        time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
				Unavailable: true,
			},
		},
		shifts: []db.ShiftRecord{
			storedShift("s1", "2024-06-03", "MORNING", "e01"),
		},
	}

	result, err := ValidateSchedule(context.Background(), store, testConfig(), zap.NewNop(), ValidateScheduleInput{
		Year:  2024,
		Month: 6,
	})
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, "e01", result.Violations[0].EmployeeID)
	require.Len(t, result.Violations[0].Reasons, 1)
	assert.Equal(t, scheduling.ReasonUnavailable, result.Violations[0].Reasons[0].Code)
}

func TestValidateSchedule_SkipsUnassignedShifts(t *testing.T) {
	store := &mockValidateScheduleStore{
		employees: testEmployeeRecords(2),
		shifts: []db.ShiftRecord{
			storedShift("s1", "2024-06-03", "MORNING", "e01"),
			storedShift("s2", "2024-06-03", "EVENING_TYPE1", ""),
		},
	}

	result, err := ValidateSchedule(context.Background(), store, testConfig(), zap.NewNop(), ValidateScheduleInput{
		Year:  2024,
		Month: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalShifts)
	assert.Equal(t, 1, result.CheckedShifts)
	assert.True(t, result.Clean)
}

func TestValidateSchedule_NoStoredSchedule(t *testing.T) {
	store := &mockValidateScheduleStore{employees: testEmployeeRecords(2)}

	_, err := ValidateSchedule(context.Background(), store, testConfig(), zap.NewNop(), ValidateScheduleInput{
		Year:  2024,
		Month: 6,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no schedule stored")
}

func TestValidateSchedule_UnknownEmployee(t *testing.T) {
	store := &mockValidateScheduleStore{
		employees: testEmployeeRecords(1),
		shifts: []db.ShiftRecord{
			storedShift("s1", "2024-06-03", "MORNING", "ghost"),
		},
	}

	_, err := ValidateSchedule(context.Background(), store, testConfig(), zap.NewNop(), ValidateScheduleInput{
		Year:  2024,
		Month: 6,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown employee")
}
