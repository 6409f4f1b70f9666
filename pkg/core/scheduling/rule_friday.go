package scheduling

import "fmt"

// MonthlyFridayRule caps an employee to one Friday-type shift per calendar
// month.
type MonthlyFridayRule struct{}

func (r *MonthlyFridayRule) Name() string { return "MonthlyFriday" }

func (r *MonthlyFridayRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !shift.Type.IsFriday() {
		return nil
	}
	existing := env.Assignments.FridayTypesInMonth(emp.ID, shift.Date)
	if len(existing) == 0 {
		return nil
	}
	return []Reason{{
		Code:   ReasonTwoFridaysInMonth,
		Detail: fmt.Sprintf("already has %d Friday shift(s) in %s", len(existing), shift.Date.Format("2006-01")),
	}}
}

// FridayVarietyRule rejects repeating the same Friday sub-type (A vs B)
// within a month.
type FridayVarietyRule struct{}

func (r *FridayVarietyRule) Name() string { return "FridayVariety" }

func (r *FridayVarietyRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !shift.Type.IsFriday() {
		return nil
	}
	for _, t := range env.Assignments.FridayTypesInMonth(emp.ID, shift.Date) {
		if t == shift.Type {
			return []Reason{{
				Code:   ReasonRepeatedFridayType,
				Detail: fmt.Sprintf("already worked a %s shift in %s", shift.Type, shift.Date.Format("2006-01")),
			}}
		}
	}
	return nil
}

// ThursdayFatigueRule rejects a Friday shift for an employee who worked an
// evening-class shift on the immediately preceding Thursday.
type ThursdayFatigueRule struct{}

func (r *ThursdayFatigueRule) Name() string { return "ThursdayFatigue" }

func (r *ThursdayFatigueRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !shift.Type.IsFriday() {
		return nil
	}
	thursday := DayOnly(shift.Date).AddDate(0, 0, -1)
	if !env.Assignments.WorkedEveningOn(emp.ID, thursday) {
		return nil
	}
	return []Reason{{
		Code:   ReasonLongThursdayThenFri,
		Detail: fmt.Sprintf("worked an evening shift on Thursday %s", thursday.Format(dateLayout)),
	}}
}

// ConsecutiveFridayRule rejects back-to-back Friday weeks: exactly 7 days
// elapsed since the employee's last Friday-type shift. This is the one
// elapsed-day check in the rule set; every other window is calendar
// containment.
type ConsecutiveFridayRule struct{}

func (r *ConsecutiveFridayRule) Name() string { return "ConsecutiveFriday" }

func (r *ConsecutiveFridayRule) Check(env *RuleEnv, emp *Employee, shift *Shift) []Reason {
	if !shift.Type.IsFriday() {
		return nil
	}
	last := env.Assignments.LastFridayBefore(emp.ID, shift.Date)
	if last == nil || DaysBetween(*last, shift.Date) != 7 {
		return nil
	}
	return []Reason{{
		Code:   ReasonConsecutiveFriday,
		Detail: fmt.Sprintf("worked a Friday shift exactly one week earlier on %s", last.Format(dateLayout)),
	}}
}
