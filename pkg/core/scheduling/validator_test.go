package scheduling

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_GeneratedScheduleIsClean(t *testing.T) {
	employees := testEmployees(8)
	snap := emptySnapshot(t)
	outcome := generateJune(t, PlanConfig{Employees: employees, Snapshot: snap, Policy: DefaultPolicy()})

	results, err := Validate(outcome.Shifts, employees, snap, DefaultPolicy(), nil)
	require.NoError(t, err)

	for id, result := range results {
		assert.True(t, result.Eligible(), "generated shift %s flagged: %v", id, result.Codes())
	}
}

func TestValidate_DetectsManualWeeklyLimitViolation(t *testing.T) {
	employees := testEmployees(2)
	snap := emptySnapshot(t)

	// Manually build a week where employee "a" holds three non-Friday
	// shifts, as a manager edit could.
	var shifts []Shift
	for _, d := range []struct {
		day  int
		role SlotRole
	}{
		{10, RoleMorning},
		{11, RoleEvening},
		{12, RoleMorning},
	} {
		s := shiftFor(date(2024, time.June, d.day), d.role, ContractType1)
		s.EmployeeID = "a"
		s.Status = ShiftOK
		shifts = append(shifts, s)
	}

	results, err := Validate(shifts, employees, snap, DefaultPolicy(), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, s := range shifts {
		assert.Contains(t, results[s.ID].Codes(), ReasonWeeklyLimitExceeded, "shift %s", s.ID)
	}

	// The Wednesday morning shift also repeats Monday's shift type.
	wedID := shifts[2].ID
	assert.Contains(t, results[wedID].Codes(), ReasonSameShiftTypeThisWeek)
}

func TestValidate_ShiftDoesNotConflictWithItself(t *testing.T) {
	employees := testEmployees(1)
	snap := emptySnapshot(t)

	s := shiftFor(date(2024, time.June, 10), RoleMorning, ContractType1)
	s.EmployeeID = "a"
	s.Status = ShiftOK

	results, err := Validate([]Shift{s}, employees, snap, DefaultPolicy(), nil)
	require.NoError(t, err)
	require.Contains(t, results, s.ID)
	assert.True(t, results[s.ID].Eligible())
}

func TestValidate_IdempotentAndSideEffectFree(t *testing.T) {
	employees := testEmployees(4)
	snap := emptySnapshot(t)
	outcome := generateJune(t, PlanConfig{Employees: employees, Snapshot: snap, Policy: DefaultPolicy()})

	before, err := json.Marshal(outcome.Shifts)
	require.NoError(t, err)

	first, err := Validate(outcome.Shifts, employees, snap, DefaultPolicy(), nil)
	require.NoError(t, err)
	second, err := Validate(outcome.Shifts, employees, snap, DefaultPolicy(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	after, err := json.Marshal(outcome.Shifts)
	require.NoError(t, err)
	assert.Equal(t, before, after, "Validate must not mutate its input")
}

func TestValidate_SkipsUnassignedShifts(t *testing.T) {
	employees := testEmployees(1)
	snap := emptySnapshot(t)

	unassigned := unassignedShiftFor(date(2024, time.June, 10), RoleEvening)
	unassigned.Status = ShiftProblem

	results, err := Validate([]Shift{unassigned}, employees, snap, DefaultPolicy(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidate_UnknownEmployeeIsError(t *testing.T) {
	employees := testEmployees(1)
	snap := emptySnapshot(t)

	s := shiftFor(date(2024, time.June, 10), RoleMorning, ContractType1)
	s.EmployeeID = "ghost"

	_, err := Validate([]Shift{s}, employees, snap, DefaultPolicy(), nil)
	assert.Error(t, err)
}

func TestValidate_DetectsConsecutiveFridayAcrossHistory(t *testing.T) {
	lastFriday := date(2024, time.May, 31)
	employees := []Employee{{ID: "a", Active: true, Contract: ContractType1, LastFridayDate: &lastFriday}}
	snap := emptySnapshot(t)

	// June 7 is exactly one week after the last Friday worked.
	s := shiftFor(date(2024, time.June, 7), RoleFridayA, ContractType1)
	s.EmployeeID = "a"
	s.Status = ShiftOK

	results, err := Validate([]Shift{s}, employees, snap, DefaultPolicy(), nil)
	require.NoError(t, err)
	assert.Contains(t, results[s.ID].Codes(), ReasonConsecutiveFriday)
}
