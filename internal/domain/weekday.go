package domain

import "fmt"

// Weekday identifies a school-week day. Ordinal runs 0 (Monday) through
// 4 (Friday); the planner does not schedule weekends.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// WeekDays lists the planning days in order.
var WeekDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayOrdinals = map[Weekday]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3, Friday: 4,
}

// Ordinal returns the day's position in the planning week, or -1 for an
// unknown day.
func (d Weekday) Ordinal() int {
	if o, ok := weekdayOrdinals[d]; ok {
		return o
	}
	return -1
}

// ParseWeekday normalizes a weekday string. Accepts full lowercase names only.
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(s)
	if _, ok := weekdayOrdinals[d]; !ok {
		return "", fmt.Errorf("invalid weekday %q (expected monday..friday)", s)
	}
	return d, nil
}
