// Package formatters renders due dates and parse results for the terminal.
package formatters

import (
	"fmt"
	"time"

	"duelist/internal/parser"

	"github.com/charmbracelet/lipgloss"
)

const (
	dueLayout       = "Jan 2 3:04pm"
	dueLayoutYear   = "Jan 2, 2006 3:04pm"
	headerLayout    = "Monday Jan 2"
	noDueDateLabel  = "No Due Date"
	invalidLabelFmt = "Invalid %s"
)

// State classifies a due date relative to now.
type State int

const (
	StateNone State = iota
	StateLate
	StateToday
	StateUpcoming
)

func (s State) String() string {
	switch s {
	case StateLate:
		return "late"
	case StateToday:
		return "today"
	case StateUpcoming:
		return "upcoming"
	default:
		return "none"
	}
}

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))

	lateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// DueState returns StateLate when due has passed, StateToday when it falls
// later on now's calendar day and StateUpcoming otherwise.
func DueState(due *time.Time, now time.Time) State {
	if due == nil {
		return StateNone
	}
	d := due.In(now.Location())
	if d.Before(now) {
		return StateLate
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return StateToday
	}
	return StateUpcoming
}

// FormatDue renders due as "Jun 2 7:00pm", adding the year when it is not
// now's year.
func FormatDue(due, now time.Time) string {
	due = due.In(now.Location())
	if due.Year() != now.Year() {
		return due.Format(dueLayoutYear)
	}
	return due.Format(dueLayout)
}

// DueLabel is the one-line feedback shown while typing an item.
func DueLabel(res parser.Result, now time.Time) string {
	switch {
	case !res.Valid():
		return fmt.Sprintf(invalidLabelFmt, res.Invalid)
	case res.Due == nil:
		return noDueDateLabel
	default:
		return FormatDue(*res.Due, now)
	}
}

// RenderDueLabel colours DueLabel green for a date, red when invalid and grey
// when there is no date.
func RenderDueLabel(res parser.Result, now time.Time, color bool) string {
	label := DueLabel(res, now)
	if !color {
		return label
	}
	switch {
	case !res.Valid():
		return invalidStyle.Render(label)
	case res.Due == nil:
		return noneStyle.Render(label)
	default:
		return validStyle.Render(label)
	}
}

// StateStyle returns the style list rows use for a due state.
func StateStyle(s State) lipgloss.Style {
	switch s {
	case StateLate:
		return lateStyle
	case StateToday:
		return todayStyle
	case StateUpcoming:
		return upcomingStyle
	default:
		return noneStyle
	}
}

// Remaining returns "3d left", "2h ago" or "now" for due at now.
func Remaining(due, now time.Time) string {
	d := due.Sub(now)
	if d >= 0 {
		if d < time.Minute {
			return "now"
		}
		return humanizeDuration(d) + " left"
	}
	d = -d
	if d < time.Minute {
		return "now"
	}
	return humanizeDuration(d) + " ago"
}

// Relative returns "in 3d" or "3d ago".
func Relative(due, now time.Time) string {
	d := due.Sub(now)
	if d >= 0 {
		return "in " + humanizeDuration(d)
	}
	return humanizeDuration(-d) + " ago"
}

// HeaderDate renders now as "Thursday Oct 15".
func HeaderDate(now time.Time) string {
	return now.Format(headerLayout)
}

// humanizeDuration converts duration to its largest whole unit
func humanizeDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	weeks := days / 7
	months := days / 30
	years := days / 365

	switch {
	case years > 0:
		return fmt.Sprintf("%dy", years)
	case months > 0:
		return fmt.Sprintf("%dmo", months)
	case weeks > 0:
		return fmt.Sprintf("%dw", weeks)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", seconds)
}
