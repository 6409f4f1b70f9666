package scheduling

import (
	"fmt"
	"time"
)

// ContractType determines which start/end time pairs an employee may work.
type ContractType string

const (
	ContractType1 ContractType = "TYPE1"
	ContractType2 ContractType = "TYPE2"
)

// ShiftType identifies the concrete kind of a shift slot.
type ShiftType string

const (
	ShiftMorning      ShiftType = "MORNING"
	ShiftEveningType1 ShiftType = "EVENING_TYPE1"
	ShiftEveningType2 ShiftType = "EVENING_TYPE2"
	ShiftFridayA      ShiftType = "FRIDAY_A"
	ShiftFridayB      ShiftType = "FRIDAY_B"
)

// IsFriday reports whether the shift type is one of the Friday slots.
func (t ShiftType) IsFriday() bool {
	return t == ShiftFridayA || t == ShiftFridayB
}

// IsEvening reports whether the shift type is an evening-class shift.
func (t ShiftType) IsEvening() bool {
	return t == ShiftEveningType1 || t == ShiftEveningType2
}

// SlotRole is the position a shift fills on a given date, before the
// concrete type and hours are resolved from the assignee's contract.
type SlotRole string

const (
	RoleMorning SlotRole = "morning"
	RoleEvening SlotRole = "evening"
	RoleFridayA SlotRole = "friday_a"
	RoleFridayB SlotRole = "friday_b"
)

// PreferenceKind is a closed enumeration of constraint preferences.
type PreferenceKind string

const (
	PreferNone    PreferenceKind = ""
	PreferShort   PreferenceKind = "SHORT"
	PreferLong    PreferenceKind = "LONG"
	PreferMorning PreferenceKind = "MORNING"
	PreferEvening PreferenceKind = "EVENING"
)

// ApprovalStatus is the review state of a recurring constraint or vacation request.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// VacationType categorizes a vacation request.
type VacationType string

const (
	VacationAnnual VacationType = "ANNUAL"
	VacationSick   VacationType = "SICK"
	VacationUnpaid VacationType = "UNPAID"
)

// ShiftStatus is the health of a planned or persisted shift.
type ShiftStatus string

const (
	ShiftOK                ShiftStatus = "OK"
	ShiftProblem           ShiftStatus = "PROBLEM"
	ShiftApprovedException ShiftStatus = "APPROVED_EXCEPTION"
)

// Employee is an active or inactive member of the scheduling pool.
type Employee struct {
	ID                  string
	FirstName           string
	LastName            string
	Active              bool
	Contract            ContractType
	PreferredShiftTypes []ShiftType
	BlockedShiftTypes   []ShiftType
	// BlockedWeekdays are day-level blocks, distinct from date-level unavailability.
	BlockedWeekdays []time.Weekday
	// LastFridayDate is the last Friday-type shift the employee worked before
	// the period being planned, used for consecutive-Friday detection.
	LastFridayDate *time.Time
}

// BlocksShiftType reports whether the employee has blocked the given shift type.
func (e *Employee) BlocksShiftType(t ShiftType) bool {
	for _, blocked := range e.BlockedShiftTypes {
		if blocked == t {
			return true
		}
	}
	return false
}

// BlocksWeekday reports whether the employee has a day-level block on the weekday.
func (e *Employee) BlocksWeekday(d time.Weekday) bool {
	for _, blocked := range e.BlockedWeekdays {
		if blocked == d {
			return true
		}
	}
	return false
}

// Constraint is a per-employee, per-date availability or preference record.
// At most one is active per (employee, date) key; duplicates are resolved by
// keeping the most recently updated record.
type Constraint struct {
	EmployeeID  string
	Date        time.Time
	Unavailable bool
	Preference  PreferenceKind
	Notes       string
	UpdatedAt   time.Time
}

// RecurringConstraint is a weekly-recurring unavailability rule. Only
// APPROVED rules are enforced; pending ones are visible but inert.
type RecurringConstraint struct {
	EmployeeID string
	Weekday    time.Weekday
	Status     ApprovalStatus
	Notes      string
}

// VacationRequest is an inclusive date-range absence request. Approved
// ranges make every contained date unavailable for the employee.
type VacationRequest struct {
	ID           string
	EmployeeID   string
	StartDate    time.Time
	EndDate      time.Time
	Type         VacationType
	Status       ApprovalStatus
	Notes        string
	ManagerNotes string
}

// Shift is a single work slot on a given date.
type Shift struct {
	// ID is a deterministic key of the form "<date>_<type>" within a plan.
	ID   string
	Date time.Time
	Type ShiftType
	// EmployeeID is empty when the slot is unassigned.
	EmployeeID string
	StartTime  string
	EndTime    string
	Status     ShiftStatus
	// UnassignmentDetails holds per-candidate rejection reasons, populated
	// only when the planner could not fill the slot.
	UnassignmentDetails []UnassignmentDetail
}

// Assigned reports whether the shift has an employee.
func (s *Shift) Assigned() bool {
	return s.EmployeeID != ""
}

// ShiftKey identifies a slot within a period by date and type.
type ShiftKey struct {
	Date string
	Type ShiftType
}

// Key returns the shift's lookup key.
func (s *Shift) Key() ShiftKey {
	return ShiftKey{Date: s.Date.Format(dateLayout), Type: s.Type}
}

// ReasonCode classifies why a candidate was rejected for a shift.
type ReasonCode string

const (
	ReasonUnavailable           ReasonCode = "UNAVAILABLE"
	ReasonOnVacation            ReasonCode = "ON_VACATION"
	ReasonAlreadyAssigned       ReasonCode = "ALREADY_ASSIGNED"
	ReasonWeeklyLimitExceeded   ReasonCode = "WEEKLY_LIMIT_EXCEEDED"
	ReasonBlockedShiftType      ReasonCode = "BLOCKED_SHIFT_TYPE"
	ReasonBlockedDay            ReasonCode = "BLOCKED_DAY"
	ReasonRecurringConstraint   ReasonCode = "RECURRING_CONSTRAINT"
	ReasonTwoFridaysInMonth     ReasonCode = "TWO_FRIDAYS_IN_MONTH"
	ReasonRepeatedFridayType    ReasonCode = "REPEATED_FRIDAY_TYPE"
	ReasonSameShiftTypeThisWeek ReasonCode = "SAME_SHIFT_TYPE_THIS_WEEK"
	ReasonLongThursdayThenFri   ReasonCode = "LONG_THURSDAY_THEN_FRIDAY"
	ReasonConsecutiveFriday     ReasonCode = "CONSECUTIVE_FRIDAY"
	ReasonNoActiveEmployees     ReasonCode = "NO_ACTIVE_EMPLOYEES"
)

// Reason is a single rule rejection with human-readable detail.
type Reason struct {
	Code   ReasonCode
	Detail string
}

// EvaluationResult is the outcome of running the full rule set for one
// candidate-shift pair. An empty reason list means the candidate is eligible.
type EvaluationResult struct {
	Reasons []Reason
}

// Eligible reports whether no rule rejected the candidate.
func (r EvaluationResult) Eligible() bool {
	return len(r.Reasons) == 0
}

// Codes returns the rejection codes in evaluation order.
func (r EvaluationResult) Codes() []ReasonCode {
	codes := make([]ReasonCode, len(r.Reasons))
	for i, reason := range r.Reasons {
		codes[i] = reason.Code
	}
	return codes
}

// UnassignmentDetail records why one candidate was rejected for a slot.
type UnassignmentDetail struct {
	EmployeeID string
	Reasons    []Reason
}

// Period is the calendar month being scheduled.
type Period struct {
	Year  int
	Month time.Month
}

// Validate checks that the period describes a real calendar month.
func (p Period) Validate() error {
	if p.Year < 1 {
		return fmt.Errorf("invalid period year %d", p.Year)
	}
	if p.Month < time.January || p.Month > time.December {
		return fmt.Errorf("invalid period month %d", p.Month)
	}
	return nil
}

// Start returns midnight on the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight on the last day of the period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Contains reports whether the date falls inside the period.
func (p Period) Contains(d time.Time) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}

// Days returns every date of the period in ascending order.
func (p Period) Days() []time.Time {
	start := p.Start()
	days := make([]time.Time, 0, 31)
	for d := start; d.Month() == p.Month; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Policy holds the tunable scheduling rules.
type Policy struct {
	// WeeklyShiftLimit caps shifts per employee per calendar week.
	WeeklyShiftLimit int
	// CountFridayTowardWeekly folds Friday shifts into the weekly cap.
	// Fridays are otherwise capped separately per month.
	CountFridayTowardWeekly bool
	// RotationSeed offsets the per-slot-role rotation used to break
	// fairness ties. The same seed always yields the same schedule.
	RotationSeed int
}

// DefaultPolicy returns the standard rule configuration.
func DefaultPolicy() Policy {
	return Policy{
		WeeklyShiftLimit:        2,
		CountFridayTowardWeekly: false,
		RotationSeed:            0,
	}
}
