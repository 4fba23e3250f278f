package tariff

import "time"

// DayClass classifies a civil calendar day for tariff selection.
// New tariff dimensions (holidays, per-vehicle-class rates) should be added
// as variants here and resolved in DayClassOf; the pricing engine stays
// oblivious to how many variants exist.
type DayClass string

const (
	// DayClassWeekday covers Monday through Friday
	DayClassWeekday DayClass = "WEEKDAY"

	// DayClassWeekend covers Saturday and Sunday
	DayClassWeekend DayClass = "WEEKEND"
)

// String returns the string representation of DayClass
func (d DayClass) String() string {
	return string(d)
}

// IsValid returns true if the day class is a known variant
func (d DayClass) IsValid() bool {
	switch d {
	case DayClassWeekday, DayClassWeekend:
		return true
	}
	return false
}

// DayClassOf resolves the day class of the civil day containing t.
// Saturday and Sunday map to weekend, all other days to weekday.
// Callers pricing a time span must resolve the class per hour, not once
// per span: a span crossing midnight can change class midway.
func DayClassOf(t time.Time) DayClass {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return DayClassWeekend
	default:
		return DayClassWeekday
	}
}
