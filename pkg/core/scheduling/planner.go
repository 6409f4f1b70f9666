package scheduling

import (
	"fmt"
	"sort"
	"time"
)

// PlanConfig is the immutable input for one generation run. All reads
// happen before planning starts; the planner performs no I/O.
type PlanConfig struct {
	Period    Period
	Employees []Employee
	Snapshot  *Snapshot
	Policy    Policy
	// Rules defaults to DefaultRules when nil.
	Rules []Rule
	// ClosedDates are extra dates (site closures, public holidays) that get
	// no slots, beyond the always-excluded Saturdays.
	ClosedDates []time.Time
}

// PlanOutcome is the result of a generation run. The shift list always
// covers every required slot of the period; unfillable slots carry PROBLEM
// status and per-candidate diagnostics.
type PlanOutcome struct {
	Shifts      []Shift
	Diagnostics map[ShiftKey][]UnassignmentDetail
}

// Problems returns the shifts the planner could not fill.
func (o *PlanOutcome) Problems() []Shift {
	var problems []Shift
	for _, s := range o.Shifts {
		if s.Status == ShiftProblem {
			problems = append(problems, s)
		}
	}
	return problems
}

// Generate fills every slot of the period, walking dates in ascending
// order and selecting for each slot the first eligible candidate in
// fairness order. Given identical inputs (employees, snapshot, policy,
// seed) the output is byte-for-byte identical: candidate ordering uses the
// assigned-shift count with a deterministic per-slot-role rotation
// tie-break, never the wall clock or randomness.
func Generate(cfg PlanConfig) (*PlanOutcome, error) {
	if err := cfg.Period.Validate(); err != nil {
		return nil, err
	}
	if cfg.Snapshot == nil {
		return nil, fmt.Errorf("nil availability snapshot")
	}
	for i := range cfg.Employees {
		if err := checkEmployee(&cfg.Employees[i]); err != nil {
			return nil, err
		}
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	p := &planner{
		cfg:      cfg,
		rules:    rules,
		idx:      newScheduleIndex(cfg.Employees),
		counts:   make(map[string]int),
		rotation: make(map[SlotRole]int),
		closed:   make(map[string]bool),
		outcome: &PlanOutcome{
			Diagnostics: make(map[ShiftKey][]UnassignmentDetail),
		},
	}
	for _, d := range cfg.ClosedDates {
		p.closed[DayOnly(d).Format(dateLayout)] = true
	}
	for i := range cfg.Employees {
		emp := &cfg.Employees[i]
		if emp.Active {
			p.active = append(p.active, emp)
		}
	}
	// Stable base ordering; the rotation offsets walk over this.
	sort.Slice(p.active, func(i, j int) bool { return p.active[i].ID < p.active[j].ID })

	for _, date := range cfg.Period.Days() {
		if p.closed[date.Format(dateLayout)] {
			continue
		}
		for _, role := range SlotRolesFor(date) {
			p.planSlot(date, role)
		}
	}

	return p.outcome, nil
}

// planner holds the working state of a single Generate invocation. Nothing
// here survives the run; fairness counters and rotation offsets are never
// persisted.
type planner struct {
	cfg      PlanConfig
	rules    []Rule
	idx      *scheduleIndex
	active   []*Employee
	counts   map[string]int
	rotation map[SlotRole]int
	closed   map[string]bool
	outcome  *PlanOutcome
}

func (p *planner) planSlot(date time.Time, role SlotRole) {
	// Each slot role advances its own rotation offset so no employee is
	// preferentially first every day.
	offset := p.cfg.Policy.RotationSeed + p.rotation[role]
	p.rotation[role]++

	if len(p.active) == 0 {
		shift := unassignedShiftFor(date, role)
		shift.Status = ShiftProblem
		shift.UnassignmentDetails = []UnassignmentDetail{{
			Reasons: []Reason{{Code: ReasonNoActiveEmployees, Detail: "no active employees to schedule"}},
		}}
		p.record(shift)
		return
	}

	candidates := p.orderedCandidates(offset)
	var details []UnassignmentDetail

	for _, emp := range candidates {
		candidate := shiftFor(date, role, emp.Contract)
		candidate.EmployeeID = emp.ID

		env := &RuleEnv{Snapshot: p.cfg.Snapshot, Assignments: p.idx, Policy: p.cfg.Policy}
		result := Evaluate(p.rules, env, emp, &candidate)
		if result.Eligible() {
			candidate.Status = ShiftOK
			p.commit(candidate)
			return
		}
		details = append(details, UnassignmentDetail{EmployeeID: emp.ID, Reasons: result.Reasons})
	}

	shift := unassignedShiftFor(date, role)
	shift.Status = ShiftProblem
	shift.UnassignmentDetails = details
	p.record(shift)
}

// orderedCandidates sorts active employees by ascending assigned-shift
// count, breaking ties by rotated position in the stable base order.
func (p *planner) orderedCandidates(offset int) []*Employee {
	n := len(p.active)
	ordered := make([]*Employee, n)
	copy(ordered, p.active)
	rotated := func(basePos int) int {
		return ((basePos-offset)%n + n) % n
	}
	basePos := make(map[string]int, n)
	for i, emp := range p.active {
		basePos[emp.ID] = i
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := p.counts[ordered[i].ID], p.counts[ordered[j].ID]
		if ci != cj {
			return ci < cj
		}
		return rotated(basePos[ordered[i].ID]) < rotated(basePos[ordered[j].ID])
	})
	return ordered
}

func (p *planner) commit(shift Shift) {
	p.record(shift)
	indexed := shift
	p.idx.add(&indexed)
	p.counts[shift.EmployeeID]++
}

func (p *planner) record(shift Shift) {
	p.outcome.Shifts = append(p.outcome.Shifts, shift)
	if shift.Status == ShiftProblem {
		p.outcome.Diagnostics[shift.Key()] = shift.UnassignmentDetails
	}
}

func checkEmployee(emp *Employee) error {
	if emp.ID == "" {
		return fmt.Errorf("employee with empty id")
	}
	if emp.Contract != ContractType1 && emp.Contract != ContractType2 {
		return fmt.Errorf("employee %s has invalid contract type %q", emp.ID, emp.Contract)
	}
	return nil
}
