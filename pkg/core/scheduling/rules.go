package scheduling

import "time"

// Rule checks one scheduling concern for a candidate-shift pair. A nil or
// empty return means the rule passes; every violated rule contributes its
// reasons so a candidate's rejection is always fully explained.
type Rule interface {
	Name() string
	Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason
}

// RuleEnv carries the read-only context rules evaluate against: the
// availability snapshot, the assignments visible so far, and the policy.
type RuleEnv struct {
	Snapshot    *Snapshot
	Assignments AssignmentView
	Policy      Policy
}

// AssignmentView exposes the already-made assignments a rule may inspect.
// During planning this is the incrementally-built working set; during
// validation it is the complete schedule minus the shift under review.
type AssignmentView interface {
	// HasShiftOn reports whether the employee already holds a shift on the date.
	HasShiftOn(employeeID string, date time.Time) bool
	// CountInWeek counts the employee's shifts in the week containing date.
	// Friday-type shifts are excluded unless includeFridays is set.
	CountInWeek(employeeID string, date time.Time, includeFridays bool) int
	// FridayTypesInMonth returns the Friday sub-types the employee holds in
	// the month containing date.
	FridayTypesInMonth(employeeID string, date time.Time) []ShiftType
	// HasShiftTypeBefore reports whether the employee holds a shift of the
	// given type earlier in the same week as date.
	HasShiftTypeBefore(employeeID string, date time.Time, t ShiftType) bool
	// WorkedEveningOn reports whether the employee holds an evening-class
	// shift on the date.
	WorkedEveningOn(employeeID string, date time.Time) bool
	// LastFridayBefore returns the employee's latest Friday-type shift date
	// strictly before the given date, considering both pre-period history
	// and assignments in view.
	LastFridayBefore(employeeID string, date time.Time) *time.Time
}

// DefaultRules returns the complete rule set in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		&UnavailabilityRule{},
		&VacationRule{},
		&RecurringConstraintRule{},
		&BlockedDayRule{},
		&DoubleBookingRule{},
		&WeeklyLimitRule{},
		&BlockedShiftTypeRule{},
		&ShiftTypeRepeatRule{},
		&MonthlyFridayRule{},
		&FridayVarietyRule{},
		&ThursdayFatigueRule{},
		&ConsecutiveFridayRule{},
	}
}
