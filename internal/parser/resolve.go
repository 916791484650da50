package parser

import "time"

// resolve turns an anchor and a time token into an instant relative to now.
// The time is always decomposed first; a bad time stops resolution.
func (p *Parser) resolve(anchor Anchor, timeText string, now time.Time) (*time.Time, Invalid) {
	hour, minute, ok := BreakTime(timeText)
	if !ok {
		return nil, InvalidTime
	}

	var (
		due     time.Time
		invalid Invalid
	)
	switch a := anchor.(type) {
	case MonthAnchor:
		due, invalid = resolveMonth(a, hour, minute, now)
	case DayAnchor:
		due = resolveDay(a.Day, hour, minute, now)
	default:
		return nil, InvalidNone
	}

	if invalid != InvalidNone {
		return nil, invalid
	}
	return &due, InvalidNone
}

func resolveMonth(a MonthAnchor, hour, minute int, now time.Time) (time.Time, Invalid) {
	if a.Month < time.January || a.Month > time.December || a.DayOfMonth <= 0 {
		return time.Time{}, InvalidDate
	}

	year := now.Year()
	if a.HasYear {
		year = a.Year
		if year < 100 {
			year = now.Year() - now.Year()%100 + year
			if year < now.Year() {
				return time.Time{}, InvalidYear
			}
		}
	}

	due := time.Date(year, a.Month, a.DayOfMonth, hour, minute, 0, 0, now.Location())

	if !afterMinute(due, now) {
		if a.HasYear {
			return time.Time{}, InvalidYear
		}
		due = due.AddDate(1, 0, 0)
	}

	// time.Date normalises overflow (feb 30 becomes mar 2), so a changed
	// month means the day did not exist.
	if due.Month() != a.Month || a.DayOfMonth > DaysIn(a.Month, due.Year()) {
		return time.Time{}, InvalidDate
	}
	return due, InvalidNone
}

func resolveDay(day Day, hour, minute int, now time.Time) time.Time {
	due := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	switch day {
	case Today:
		if !afterMinute(due, now) {
			due = due.AddDate(0, 0, 1)
		}
	case Tomorrow:
		due = due.AddDate(0, 0, 1)
	default:
		wd, _ := day.Weekday()
		ahead := (int(wd) - int(now.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		due = due.AddDate(0, 0, ahead)
		if !afterMinute(due, now) {
			due = due.AddDate(0, 0, 7)
		}
	}
	return due
}

// afterMinute compares at minute granularity.
func afterMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).After(b.Truncate(time.Minute))
}
