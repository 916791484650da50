package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	timePattern     = regexp.MustCompile(`(?i)^\d{1,2}((a|p)|:\d{0,2})`)
	minutesPattern  = regexp.MustCompile(`:\d{2}`)
	meridiemPattern = regexp.MustCompile(`(?i)(a|p)m?`)
	slashPattern    = regexp.MustCompile(`/\d`)
)

// IsTime reports whether token looks like a time of day: "7pm", "11:59",
// "9a", or a bare hour from 1 to 12.
func IsTime(token string) bool {
	if timePattern.MatchString(token) {
		return true
	}
	if n, err := strconv.Atoi(token); err == nil && n > 0 && n < 13 {
		return true
	}
	return false
}

// isSlashDate matches "M/D" and "M/D/Y" shaped tokens.
func isSlashDate(token string) bool {
	n := len(slashPattern.FindAllStringIndex(token, -1))
	return n > 0 && n < 3
}

// BreakTime decomposes a time token into a 24-hour hour and minute.
//
// Without an "a" marker the hour is read as afternoon, so "3" is 15:00 and
// "11:59" is 23:59. "12a" is midnight and a bare "12" stays noon.
func BreakTime(token string) (hour, minute int, ok bool) {
	hasAM := strings.ContainsAny(token, "aA")
	stripped := meridiemPattern.ReplaceAllString(token, "")

	var err error
	if strings.Contains(token, ":") {
		if !minutesPattern.MatchString(token) {
			return 0, 0, false
		}
		parts := strings.Split(stripped, ":")
		if hour, err = strconv.Atoi(parts[0]); err != nil {
			return 0, 0, false
		}
		if minute, err = strconv.Atoi(parts[1]); err != nil {
			return 0, 0, false
		}
	} else {
		if hour, err = strconv.Atoi(stripped); err != nil {
			return 0, 0, false
		}
	}

	if hour < 0 || minute < 0 {
		return 0, 0, false
	}

	switch {
	case !hasAM && hour < 12:
		hour += 12
	case hasAM && hour == 12:
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
