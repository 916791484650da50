package parser

import (
	"strings"
	"time"
)

// Day is a relative or weekday keyword that anchors a due date.
type Day int

const (
	Tomorrow Day = iota
	Today
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayKeywords = [...]string{
	Tomorrow:  "tomorrow",
	Today:     "today",
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

func (d Day) String() string {
	if d < 0 || int(d) >= len(dayKeywords) {
		return "unknown"
	}
	return dayKeywords[d]
}

// MarshalText renders the keyword for JSON/YAML output.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Weekday returns the time.Weekday of a named weekday.
// ok is false for Today and Tomorrow.
func (d Day) Weekday() (wd time.Weekday, ok bool) {
	switch d {
	case Monday:
		return time.Monday, true
	case Tuesday:
		return time.Tuesday, true
	case Wednesday:
		return time.Wednesday, true
	case Thursday:
		return time.Thursday, true
	case Friday:
		return time.Friday, true
	case Saturday:
		return time.Saturday, true
	case Sunday:
		return time.Sunday, true
	default:
		return 0, false
	}
}

// ISOWeekday returns 1 (Monday) through 7 (Sunday).
func (d Day) ISOWeekday() (int, bool) {
	wd, ok := d.Weekday()
	if !ok {
		return 0, false
	}
	if wd == time.Sunday {
		return 7, true
	}
	return int(wd), true
}

// Lookup tables, filled once in init and only read afterwards.
var (
	monthNames map[string]time.Month
	dayNames   map[string]Day
)

func init() {
	monthNames = make(map[string]time.Month, 23)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		monthNames[name] = m
		monthNames[name[:3]] = m
	}

	dayNames = make(map[string]Day, len(dayKeywords)+7)
	for d := range dayKeywords {
		day := Day(d)
		name := dayKeywords[d]
		dayNames[name] = day
		// today/tomorrow only match their full names
		if _, ok := day.Weekday(); ok {
			dayNames[name[:3]] = day
		}
	}
}

// LookupMonth matches a full or 3-letter month name, ignoring case.
func LookupMonth(token string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(token)]
	return m, ok
}

// LookupDay matches a day keyword, ignoring case.
func LookupDay(token string) (Day, bool) {
	d, ok := dayNames[strings.ToLower(token)]
	return d, ok
}

// DaysIn returns the number of days in month m of year.
func DaysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
