package timetable

import (
	"fmt"
	"time"
)

// Wire layouts used by the timetable service. Each field uses exactly one of them.
const (
	DateLayout      = "2006-01-02"
	DateTimeLayout  = "2006-01-02T15:04:05"
	TimeOfDayLayout = "15:04:05"

	// stampLayout is the minute-precision form used in classroom range paths.
	stampLayout = "200601021504"
)

// Date is a calendar date without a clock component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// TimeOfDay is a wall-clock time without a date, used by weekly recurring slots.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayOf returns the clock component of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

func (c TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// On places c on date d in loc.
func (c TimeOfDay) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, c.Second, 0, loc)
}
