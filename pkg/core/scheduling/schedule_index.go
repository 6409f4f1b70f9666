package scheduling

import "time"

// scheduleIndex is the working set of assignments for one run. The planner
// appends to it as slots are committed; the validator builds it once from a
// complete schedule. It implements AssignmentView.
type scheduleIndex struct {
	byEmployee map[string][]*Shift
	// historyFriday is each employee's last Friday-type shift worked before
	// the period in view, seeded from Employee.LastFridayDate.
	historyFriday map[string]time.Time
}

func newScheduleIndex(employees []Employee) *scheduleIndex {
	idx := &scheduleIndex{
		byEmployee:    make(map[string][]*Shift),
		historyFriday: make(map[string]time.Time),
	}
	for i := range employees {
		emp := &employees[i]
		if emp.LastFridayDate != nil {
			idx.historyFriday[emp.ID] = DayOnly(*emp.LastFridayDate)
		}
	}
	return idx
}

// add commits an assigned shift to the working set.
func (idx *scheduleIndex) add(shift *Shift) {
	if !shift.Assigned() {
		return
	}
	idx.byEmployee[shift.EmployeeID] = append(idx.byEmployee[shift.EmployeeID], shift)
}

func (idx *scheduleIndex) HasShiftOn(employeeID string, date time.Time) bool {
	d := DayOnly(date)
	for _, s := range idx.byEmployee[employeeID] {
		if DayOnly(s.Date).Equal(d) {
			return true
		}
	}
	return false
}

func (idx *scheduleIndex) CountInWeek(employeeID string, date time.Time, includeFridays bool) int {
	count := 0
	for _, s := range idx.byEmployee[employeeID] {
		if !SameWeek(s.Date, date) {
			continue
		}
		if s.Type.IsFriday() && !includeFridays {
			continue
		}
		count++
	}
	return count
}

func (idx *scheduleIndex) FridayTypesInMonth(employeeID string, date time.Time) []ShiftType {
	var types []ShiftType
	for _, s := range idx.byEmployee[employeeID] {
		if s.Type.IsFriday() && SameMonth(s.Date, date) {
			types = append(types, s.Type)
		}
	}
	return types
}

func (idx *scheduleIndex) HasShiftTypeBefore(employeeID string, date time.Time, t ShiftType) bool {
	d := DayOnly(date)
	for _, s := range idx.byEmployee[employeeID] {
		if s.Type == t && SameWeek(s.Date, date) && DayOnly(s.Date).Before(d) {
			return true
		}
	}
	return false
}

func (idx *scheduleIndex) WorkedEveningOn(employeeID string, date time.Time) bool {
	d := DayOnly(date)
	for _, s := range idx.byEmployee[employeeID] {
		if s.Type.IsEvening() && DayOnly(s.Date).Equal(d) {
			return true
		}
	}
	return false
}

// LastFridayBefore returns the employee's latest Friday-type shift date
// strictly before the given date, considering both pre-period history and
// the assignments in view.
func (idx *scheduleIndex) LastFridayBefore(employeeID string, date time.Time) *time.Time {
	d := DayOnly(date)
	var latest *time.Time
	if h, ok := idx.historyFriday[employeeID]; ok && h.Before(d) {
		hist := h
		latest = &hist
	}
	for _, s := range idx.byEmployee[employeeID] {
		if !s.Type.IsFriday() {
			continue
		}
		sd := DayOnly(s.Date)
		if !sd.Before(d) {
			continue
		}
		if latest == nil || sd.After(*latest) {
			latest = &sd
		}
	}
	return latest
}

// excludingView wraps a scheduleIndex but hides one shift, so a shift under
// validation never conflicts with its own assignment.
type excludingView struct {
	idx       *scheduleIndex
	excludeID string
}

func (v *excludingView) filtered(employeeID string) []*Shift {
	shifts := v.idx.byEmployee[employeeID]
	visible := make([]*Shift, 0, len(shifts))
	for _, s := range shifts {
		if s.ID != v.excludeID {
			visible = append(visible, s)
		}
	}
	return visible
}

func (v *excludingView) view(employeeID string) *scheduleIndex {
	return &scheduleIndex{
		byEmployee:    map[string][]*Shift{employeeID: v.filtered(employeeID)},
		historyFriday: v.idx.historyFriday,
	}
}

func (v *excludingView) HasShiftOn(employeeID string, date time.Time) bool {
	return v.view(employeeID).HasShiftOn(employeeID, date)
}

func (v *excludingView) CountInWeek(employeeID string, date time.Time, includeFridays bool) int {
	return v.view(employeeID).CountInWeek(employeeID, date, includeFridays)
}

func (v *excludingView) FridayTypesInMonth(employeeID string, date time.Time) []ShiftType {
	return v.view(employeeID).FridayTypesInMonth(employeeID, date)
}

func (v *excludingView) HasShiftTypeBefore(employeeID string, date time.Time, t ShiftType) bool {
	return v.view(employeeID).HasShiftTypeBefore(employeeID, date, t)
}

func (v *excludingView) WorkedEveningOn(employeeID string, date time.Time) bool {
	return v.view(employeeID).WorkedEveningOn(employeeID, date)
}

func (v *excludingView) LastFridayBefore(employeeID string, date time.Time) *time.Time {
	return v.view(employeeID).LastFridayBefore(employeeID, date)
}
