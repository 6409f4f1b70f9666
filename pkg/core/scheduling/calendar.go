package scheduling

import "time"

const dateLayout = "2006-01-02"

// Shift hours per slot role and contract type. TYPE2 contracts hand over
// an hour earlier, so their evening shift starts earlier and runs longer.
const (
	morningStartType1 = "08:00"
	morningEndType1   = "16:00"
	morningStartType2 = "08:00"
	morningEndType2   = "15:00"

	eveningStartType1 = "16:00"
	eveningEndType1   = "22:00"
	eveningStartType2 = "15:00"
	eveningEndType2   = "22:00"

	fridayShortStart = "08:00"
	fridayShortEnd   = "13:00"
	fridayLongStart  = "08:00"
	fridayLongEnd    = "14:30"
)

// DayOnly normalizes a time to midnight UTC so date comparisons and day
// diffs are exact integer arithmetic.
func DayOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Sunday beginning the calendar week containing d.
func WeekStart(d time.Time) time.Time {
	d = DayOnly(d)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// SameWeek reports whether two dates fall in the same Sunday-start week.
func SameWeek(a, b time.Time) bool {
	return WeekStart(a).Equal(WeekStart(b))
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysBetween returns the whole-day count from a to b (negative if b is
// earlier). Both inputs are midnight-normalized first.
func DaysBetween(a, b time.Time) int {
	return int(DayOnly(b).Sub(DayOnly(a)).Hours() / 24)
}

// SlotRolesFor returns the slots required on a date. Saturdays carry no
// shifts; Fridays have a short A slot and a long B slot; other weekdays
// have one morning-class and one evening-class slot.
func SlotRolesFor(date time.Time) []SlotRole {
	switch date.Weekday() {
	case time.Saturday:
		return nil
	case time.Friday:
		return []SlotRole{RoleFridayA, RoleFridayB}
	default:
		return []SlotRole{RoleMorning, RoleEvening}
	}
}

// resolveSlot returns the concrete shift type and hours a slot takes when
// worked under the given contract. The evening slot is the only role whose
// type varies by contract.
func resolveSlot(role SlotRole, contract ContractType) (ShiftType, string, string) {
	switch role {
	case RoleFridayA:
		return ShiftFridayA, fridayShortStart, fridayShortEnd
	case RoleFridayB:
		return ShiftFridayB, fridayLongStart, fridayLongEnd
	case RoleEvening:
		if contract == ContractType2 {
			return ShiftEveningType2, eveningStartType2, eveningEndType2
		}
		return ShiftEveningType1, eveningStartType1, eveningEndType1
	default:
		if contract == ContractType2 {
			return ShiftMorning, morningStartType2, morningEndType2
		}
		return ShiftMorning, morningStartType1, morningEndType1
	}
}

// shiftFor builds the prospective shift a candidate would work for a slot.
func shiftFor(date time.Time, role SlotRole, contract ContractType) Shift {
	shiftType, start, end := resolveSlot(role, contract)
	return Shift{
		ID:        date.Format(dateLayout) + "_" + string(shiftType),
		Date:      date,
		Type:      shiftType,
		StartTime: start,
		EndTime:   end,
	}
}

// unassignedShiftFor builds the placeholder shift recorded when no
// candidate could fill a slot. TYPE1 hours are used for the evening slot
// since no contract is attached.
func unassignedShiftFor(date time.Time, role SlotRole) Shift {
	return shiftFor(date, role, ContractType1)
}
