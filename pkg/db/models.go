package db

import "time"

// EmployeeRecord is a stored member of the scheduling pool.
type EmployeeRecord struct {
	ID                  string
	FirstName           string
	LastName            string
	Active              bool
	ContractType        string
	PreferredShiftTypes []string
	BlockedShiftTypes   []string
	// BlockedWeekdays uses Go's time.Weekday numbering (Sunday = 0).
	BlockedWeekdays []int
	LastFridayDate  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ConstraintRecord is a stored per-employee, per-date availability record.
type ConstraintRecord struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Unavailable bool
	Preference  string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecurringConstraintRecord is a stored weekly unavailability rule.
type RecurringConstraintRecord struct {
	ID         string
	EmployeeID string
	Weekday    int
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VacationRequestRecord is a stored date-range absence request.
type VacationRequestRecord struct {
	ID           string
	EmployeeID   string
	StartDate    time.Time
	EndDate      time.Time
	Type         string
	Status       string
	Notes        string
	ManagerNotes string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UnassignmentDetailRecord is one candidate's rejection reasons for an
// unfilled shift, stored as JSON alongside the shift.
type UnassignmentDetailRecord struct {
	EmployeeID string   `json:"employee_id"`
	Reasons    []string `json:"reasons"`
}

// ShiftRecord is a stored shift slot, assigned or not.
type ShiftRecord struct {
	ID                  string
	Date                time.Time
	ShiftType           string
	EmployeeID          string
	StartTime           string
	EndTime             string
	Status              string
	UnassignmentDetails []UnassignmentDetailRecord
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
