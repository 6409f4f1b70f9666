package scheduling

import "fmt"

// UnavailabilityRule rejects candidates with a date-level unavailability
// constraint on the shift's date. This covers both self-reported
// constraints and vacation days materialized into constraint records.
type UnavailabilityRule struct{}

func (r *UnavailabilityRule) Name() string { return "Unavailability" }

func (r *UnavailabilityRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !env.Snapshot.UnavailableOn(emp.ID, shift.Date) {
		return nil
	}
	return []Reason{{
		Code:   ReasonUnavailable,
		Detail: fmt.Sprintf("marked unavailable on %s", shift.Date.Format(dateLayout)),
	}}
}

// VacationRule rejects candidates whose approved vacation range contains
// the shift's date. Deliberately distinct from UnavailabilityRule even
// when vacations are also materialized as constraints: the more specific
// reason is what managers see in the breakdown.
type VacationRule struct{}

func (r *VacationRule) Name() string { return "Vacation" }

func (r *VacationRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !env.Snapshot.OnVacation(emp.ID, shift.Date) {
		return nil
	}
	return []Reason{{
		Code:   ReasonOnVacation,
		Detail: fmt.Sprintf("approved vacation covers %s", shift.Date.Format(dateLayout)),
	}}
}

// RecurringConstraintRule rejects candidates with an approved weekly rule
// matching the shift's weekday.
type RecurringConstraintRule struct{}

func (r *RecurringConstraintRule) Name() string { return "RecurringConstraint" }

func (r *RecurringConstraintRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !env.Snapshot.RecurringBlocked(emp.ID, shift.Date) {
		return nil
	}
	return []Reason{{
		Code:   ReasonRecurringConstraint,
		Detail: fmt.Sprintf("approved recurring constraint on %s", shift.Date.Weekday()),
	}}
}

// BlockedDayRule rejects candidates whose profile blocks the shift's
// weekday outright, independent of any dated constraint.
type BlockedDayRule struct{}

func (r *BlockedDayRule) Name() string { return "BlockedDay" }

func (r *BlockedDayRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !emp.BlocksWeekday(shift.Date.Weekday()) {
		return nil
	}
	return []Reason{{
		Code:   ReasonBlockedDay,
		Detail: fmt.Sprintf("%s is blocked in the employee profile", shift.Date.Weekday()),
	}}
}
