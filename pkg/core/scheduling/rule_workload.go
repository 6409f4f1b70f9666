package scheduling

import "fmt"

// DoubleBookingRule rejects candidates who already hold a shift on the
// shift's date within the assignments in view.
type DoubleBookingRule struct{}

func (r *DoubleBookingRule) Name() string { return "DoubleBooking" }

func (r *DoubleBookingRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !env.Assignments.HasShiftOn(emp.ID, shift.Date) {
		return nil
	}
	return []Reason{{
		Code:   ReasonAlreadyAssigned,
		Detail: fmt.Sprintf("already holds a shift on %s", shift.Date.Format(dateLayout)),
	}}
}

// WeeklyLimitRule caps shifts per calendar week. Only non-Friday shifts
// count by default; Policy.CountFridayTowardWeekly folds Fridays into the
// same cap (they are otherwise capped separately per month).
type WeeklyLimitRule struct{}

func (r *WeeklyLimitRule) Name() string { return "WeeklyLimit" }

func (r *WeeklyLimitRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	countFridays := env.Policy.CountFridayTowardWeekly
	if shift.Type.IsFriday() && !countFridays {
		return nil
	}
	current := env.Assignments.CountInWeek(emp.ID, shift.Date, countFridays)
	if current+1 <= env.Policy.WeeklyShiftLimit {
		return nil
	}
	return []Reason{{
		Code:   ReasonWeeklyLimitExceeded,
		Detail: fmt.Sprintf("has %d shifts in the week of %s (limit %d)", current, WeekStart(shift.Date).Format(dateLayout), env.Policy.WeeklyShiftLimit),
	}}
}

// BlockedShiftTypeRule rejects candidates whose profile blocks the shift's
// concrete type.
type BlockedShiftTypeRule struct{}

func (r *BlockedShiftTypeRule) Name() string { return "BlockedShiftType" }

func (r *BlockedShiftTypeRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !emp.BlocksShiftType(shift.Type) {
		return nil
	}
	return []Reason{{
		Code:   ReasonBlockedShiftType,
		Detail: fmt.Sprintf("shift type %s is blocked in the employee profile", shift.Type),
	}}
}

// ShiftTypeRepeatRule rejects candidates who already worked the identical
// shift type earlier in the same week.
type ShiftTypeRepeatRule struct{}

func (r *ShiftTypeRepeatRule) Name() string { return "ShiftTypeRepeat" }

func (r *ShiftTypeRepeatRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !env.Assignments.HasShiftTypeBefore(emp.ID, shift.Date, shift.Type) {
		return nil
	}
	return []Reason{{
		Code:   ReasonSameShiftTypeThisWeek,
		Detail: fmt.Sprintf("already worked a %s shift earlier this week", shift.Type),
	}}
}
