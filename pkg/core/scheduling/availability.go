package scheduling

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Snapshot is an immutable availability lookup built once per run from the
// three availability sources: date constraints, approved recurring weekly
// rules, and approved vacation requests. The planner and validator only
// read availability through a Snapshot, never from the sources directly.
type Snapshot struct {
	period Period
	// unavailable holds dates blocked by a Constraint record.
	unavailable map[string]map[string]bool
	// preference holds the non-blocking preference per (employee, date).
	preference map[string]map[string]PreferenceKind
	// recurring holds dates blocked by an approved weekly rule, expanded
	// over the period.
	recurring map[string]map[string]bool
	// vacations holds the approved inclusive date ranges per employee.
	vacations map[string][]vacationRange
}

type vacationRange struct {
	start time.Time
	end   time.Time
}

// BuildSnapshot merges the availability sources for one period.
//
// Duplicate constraints on the same (employee, date) key are resolved by
// keeping the most recently updated record. Recurring rules and vacation
// requests contribute only when APPROVED. Vacation ranges with a start
// after their end are rejected as malformed input.
func BuildSnapshot(
	period Period,
	constraints []Constraint,
	recurring []RecurringConstraint,
	vacations []VacationRequest,
) (*Snapshot, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		period:      period,
		unavailable: make(map[string]map[string]bool),
		preference:  make(map[string]map[string]PreferenceKind),
		recurring:   make(map[string]map[string]bool),
		vacations:   make(map[string][]vacationRange),
	}

	// Resolve duplicate constraints: latest UpdatedAt wins per key.
	type constraintKey struct {
		employeeID string
		date       string
	}
	latest := make(map[constraintKey]Constraint)
	for _, c := range constraints {
		if c.EmployeeID == "" {
			return nil, fmt.Errorf("constraint dated %s has no employee id", c.Date.Format(dateLayout))
		}
		key := constraintKey{c.EmployeeID, DayOnly(c.Date).Format(dateLayout)}
		if existing, ok := latest[key]; !ok || c.UpdatedAt.After(existing.UpdatedAt) {
			latest[key] = c
		}
	}
	for key, c := range latest {
		if c.Unavailable {
			if snap.unavailable[key.employeeID] == nil {
				snap.unavailable[key.employeeID] = make(map[string]bool)
			}
			snap.unavailable[key.employeeID][key.date] = true
		} else if c.Preference != PreferNone {
			if snap.preference[key.employeeID] == nil {
				snap.preference[key.employeeID] = make(map[string]PreferenceKind)
			}
			snap.preference[key.employeeID][key.date] = c.Preference
		}
	}

	// Expand approved recurring weekly rules into concrete dates.
	for _, rc := range recurring {
		if rc.Status != StatusApproved {
			continue
		}
		if rc.Weekday == time.Saturday {
			// Saturdays carry no shifts, nothing to block.
			continue
		}
		dates, err := expandWeekly(rc.Weekday, period)
		if err != nil {
			return nil, fmt.Errorf("expanding recurring constraint for employee %s: %w", rc.EmployeeID, err)
		}
		if snap.recurring[rc.EmployeeID] == nil {
			snap.recurring[rc.EmployeeID] = make(map[string]bool)
		}
		for _, d := range dates {
			snap.recurring[rc.EmployeeID][d.Format(dateLayout)] = true
		}
	}

	for _, v := range vacations {
		if v.Status != StatusApproved {
			continue
		}
		start, end := DayOnly(v.StartDate), DayOnly(v.EndDate)
		if start.After(end) {
			return nil, fmt.Errorf("vacation request %s has start %s after end %s",
				v.ID, start.Format(dateLayout), end.Format(dateLayout))
		}
		snap.vacations[v.EmployeeID] = append(snap.vacations[v.EmployeeID], vacationRange{start: start, end: end})
	}

	return snap, nil
}

// expandWeekly generates every occurrence of a weekday within the period.
func expandWeekly(weekday time.Weekday, period Period) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekday(weekday)},
		Dtstart:   period.Start(),
		Until:     period.End(),
	})
	if err != nil {
		return nil, err
	}
	return rule.All(), nil
}

func rruleWeekday(d time.Weekday) rrule.Weekday {
	switch d {
	case time.Sunday:
		return rrule.SU
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	default:
		return rrule.SA
	}
}

// UnavailableOn reports whether a constraint blocks the employee on the date.
func (s *Snapshot) UnavailableOn(employeeID string, date time.Time) bool {
	return s.unavailable[employeeID][DayOnly(date).Format(dateLayout)]
}

// OnVacation reports whether an approved vacation range contains the date.
func (s *Snapshot) OnVacation(employeeID string, date time.Time) bool {
	d := DayOnly(date)
	for _, r := range s.vacations[employeeID] {
		if !d.Before(r.start) && !d.After(r.end) {
			return true
		}
	}
	return false
}

// RecurringBlocked reports whether an approved weekly rule blocks the date.
func (s *Snapshot) RecurringBlocked(employeeID string, date time.Time) bool {
	return s.recurring[employeeID][DayOnly(date).Format(dateLayout)]
}

// PreferenceOn returns the employee's preference for the date, if any.
func (s *Snapshot) PreferenceOn(employeeID string, date time.Time) PreferenceKind {
	return s.preference[employeeID][DayOnly(date).Format(dateLayout)]
}
