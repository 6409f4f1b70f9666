package scheduling

import "fmt"

// Validate re-runs the full rule set for every assigned shift in an
// existing schedule against the complete final schedule, so it catches
// violations introduced by manual edits after generation. Each shift is
// evaluated with itself excluded from the assignments in view.
//
// Side-effect free: inputs are never mutated, and running it twice on the
// same schedule yields the same result map. Unassigned shifts are skipped;
// the result map is keyed by shift ID and includes eligible shifts with an
// empty reason list.
func Validate(
	shifts []Shift,
	employees []Employee,
	snapshot *Snapshot,
	policy Policy,
	rules []Rule,
) (map[string]EvaluationResult, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("nil availability snapshot")
	}
	if rules == nil {
		rules = DefaultRules()
	}

	byID := make(map[string]*Employee, len(employees))
	for i := range employees {
		if err := checkEmployee(&employees[i]); err != nil {
			return nil, err
		}
		byID[employees[i].ID] = &employees[i]
	}

	idx := newScheduleIndex(employees)
	for i := range shifts {
		idx.add(&shifts[i])
	}

	results := make(map[string]EvaluationResult)
	for i := range shifts {
		shift := shifts[i]
		if !shift.Assigned() {
			continue
		}
		emp, ok := byID[shift.EmployeeID]
		if !ok {
			return nil, fmt.Errorf("shift %s assigned to unknown employee %s", shift.ID, shift.EmployeeID)
		}
		env := &RuleEnv{
			Snapshot:    snapshot,
			Assignments: &excludingView{idx: idx, excludeID: shift.ID},
			Policy:      policy,
		}
		results[shift.ID] = Evaluate(rules, env, emp, &shift)
	}

	return results, nil
}
