package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// addAssigned commits a shift for an employee on a date with the given
// slot role, bypassing evaluation.
func addAssigned(idx *scheduleIndex, empID string, d time.Time, role SlotRole, contract ContractType) {
	s := shiftFor(d, role, contract)
	s.EmployeeID = empID
	s.Status = ShiftOK
	idx.add(&s)
}

func TestWeeklyLimitRule_ThirdShiftInWeekRejected(t *testing.T) {
	// e1 works Monday and Wednesday; a Tuesday shift would make 3 in the
	// Sunday-start week of June 9.
	emp := Employee{ID: "e1", Active: true, Contract: ContractType1}
	idx := newScheduleIndex([]Employee{emp})
	addAssigned(idx, "e1", date(2024, time.June, 10), RoleMorning, emp.Contract)
	addAssigned(idx, "e1", date(2024, time.June, 12), RoleMorning, emp.Contract)

	rule := &WeeklyLimitRule{}
	shift := shiftFor(date(2024, time.June, 11), RoleEvening, emp.Contract)
	shift.EmployeeID = emp.ID

	reasons := rule.Check(envWith(emptySnapshot(t), idx), &emp, &shift)
	assert.Len(t, reasons, 1)
	assert.Equal(t, ReasonWeeklyLimitExceeded, reasons[0].Code)
}

func TestWeeklyLimitRule_SecondShiftAllowed(t *testing.T) {
	emp := Employee{ID: "e1", Active: true, Contract: ContractType1}
	idx := newScheduleIndex([]Employee{emp})
	addAssigned(idx, "e1", date(2024, time.June, 10), RoleMorning, emp.Contract)

	rule := &WeeklyLimitRule{}
	shift := shiftFor(date(2024, time.June, 12), RoleEvening, emp.Contract)
	shift.EmployeeID = emp.ID

	assert.Empty(t, rule.Check(envWith(emptySnapshot(t), idx), &emp, &shift))
}

func TestWeeklyLimitRule_FridayShiftExemptByDefault(t *testing.T) {
	// Two weekday shifts in the week; a Friday shift is still allowed
	// because Fridays are capped separately per month.
	emp := Employee{ID: "e1", Active: true, Contract: ContractType1}
	idx := newScheduleIndex([]Employee{emp})
	addAssigned(idx, "e1", date(2024, time.June, 10), RoleMorning, emp.Contract)
	addAssigned(idx, "e1", date(2024, time.June, 12), RoleEvening, emp.Contract)

	rule := &WeeklyLimitRule{}
	shift := shiftFor(date(2024, time.June, 14), RoleFridayA, emp.Contract)
	shift.EmployeeID = emp.ID

	assert.Empty(t, rule.Check(envWith(emptySnapshot(t), idx), &emp, &shift))
}

func TestWeeklyLimitRule_FridayCountedWhenPolicyEnabled(t *testing.T) {
	emp := Employee{ID: "e1", Active: true, Contract: ContractType1}
	idx := newScheduleIndex([]Employee{emp})
	addAssigned(idx, "e1", date(2024, time.June, 10), RoleMorning, emp.Contract)
	addAssigned(idx, "e1", date(2024, time.June, 12), RoleEvening, emp.Contract)

	env := envWith(emptySnapshot(t), idx)
	env.Policy.CountFridayTowardWeekly = true

	rule := &WeeklyLimitRule{}
	shift := shiftFor(date(2024, time.June, 14), RoleFridayA, emp.Contract)
	shift.EmployeeID = emp.ID

	reasons := rule.Check(env, &emp, &shift)
	assert.Len(t, reasons, 1)
	assert.Equal(t, ReasonWeeklyLimitExceeded, reasons[0].Code)
}

func TestWeeklyLimitRule_NewWeekResetsCount(t *testing.T) {
	emp := Employee{ID: "e1", Active: true, Contract: ContractType1}
	idx := newScheduleIndex([]Employee{emp})
	addAssigned(idx, "e1", date(2024, time.June, 10), RoleMorning, emp.Contract)
	addAssigned(idx, "e1", date(2024, time.June, 12), RoleEvening, emp.Contract)

	rule := &WeeklyLimitRule{}
	// June 17 is the Monday of the following week.
	shift := shiftFor(date(2024, time.June, 17), RoleMorning, emp.Contract)
	shift.EmployeeID = emp.ID

	assert.Empty(t, rule.Check(envWith(emptySnapshot(t), idx), &emp, &shift))
}

func TestShiftTypeRepeatRule_SameTypeEarlierInWeek(t *testing.T) {
	emp := Employee{ID: "e1", Active: true, Contract: ContractType1}
	idx := newScheduleIndex([]Employee{emp})
	addAssigned(idx, "e1", date(2024, time.June, 10), RoleMorning, emp.Contract)

	rule := &ShiftTypeRepeatRule{}

	repeat := shiftFor(date(2024, time.June, 12), RoleMorning, emp.Contract)
	repeat.EmployeeID = emp.ID
	reasons := rule.Check(envWith(emptySnapshot(t), idx), &emp, &repeat)
	assert.Len(t, reasons, 1)
	assert.Equal(t, ReasonSameShiftTypeThisWeek, reasons[0].Code)

	// A different type the same week passes this rule.
	other := shiftFor(date(2024, time.June, 12), RoleEvening, emp.Contract)
	other.EmployeeID = emp.ID
	assert.Empty(t, rule.Check(envWith(emptySnapshot(t), idx), &emp, &other))

	// The same type the following week passes.
	nextWeek := shiftFor(date(2024, time.June, 17), RoleMorning, emp.Contract)
	nextWeek.EmployeeID = emp.ID
	assert.Empty(t, rule.Check(envWith(emptySnapshot(t), idx), &emp, &nextWeek))
}
