package operations

import (
	"strings"
	"time"

	"duelist/internal/parser"
	"duelist/internal/utils"
)

// nowLayouts are tried in order by ParseNowFlag; all but RFC 3339 are read
// in the given location.
var nowLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseNowFlag parses a --now override. It accepts RFC 3339 or a local
// "2006-01-02 15:04" (or bare date, meaning midnight) in loc.
func ParseNowFlag(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, utils.ErrInvalidNow(value)
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range nowLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, utils.ErrInvalidNow(value)
}

// ValidateDefaultTime checks that text is a time the parser accepts, e.g. "9am".
func ValidateDefaultTime(text string) error {
	if _, _, ok := parser.BreakTime(text); !ok {
		return utils.ErrInvalidInput(text, parser.InvalidTime.String())
	}
	return nil
}
