// Package parser turns a single line of to-do input such as
// "ee411 homework due tue 11:59pm" into a task title and a resolved due date.
//
// The vocabulary is small and English only: month names and abbreviations
// with an optional day and year, slash dates, today/tomorrow, weekday names
// and a time of day. Parsing never fails with an error; problems are
// reported in Result.Invalid.
package parser

import (
	"strconv"
	"strings"
	"time"
)

// DefaultTime is used when an input names a day but no time.
const DefaultTime = "11:59pm"

// fillerWords are dropped before classification. Matching is exact and
// case-sensitive.
var fillerWords = map[string]struct{}{
	"at":  {},
	"due": {},
}

// Invalid says why an input could not produce a usable due date.
type Invalid int

const (
	InvalidNone Invalid = iota
	InvalidTime
	InvalidDate // bad month or day of month
	InvalidYear
)

func (i Invalid) String() string {
	switch i {
	case InvalidTime:
		return "Time"
	case InvalidDate:
		return "Date"
	case InvalidYear:
		return "Year"
	default:
		return ""
	}
}

// MarshalText renders the reason for JSON/YAML output.
func (i Invalid) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Anchor is the part of an input that fixes the calendar day. It is either
// a MonthAnchor or a DayAnchor; a nil Anchor means the input had no date.
type Anchor interface {
	anchor()
}

// MonthAnchor is a month name or slash date with its day and optional year.
// DayOfMonth is 0 when the input named a month without a day.
type MonthAnchor struct {
	Month      time.Month `json:"month" yaml:"month"`
	DayOfMonth int        `json:"day_of_month" yaml:"day_of_month"`
	Year       int        `json:"year,omitempty" yaml:"year,omitempty"`
	HasYear    bool       `json:"has_year" yaml:"has_year"`
}

// DayAnchor is today, tomorrow or a weekday name.
type DayAnchor struct {
	Day Day `json:"day" yaml:"day"`
}

func (MonthAnchor) anchor() {}
func (DayAnchor) anchor()   {}

// Result is the outcome of parsing one input.
type Result struct {
	Raw     string     `json:"raw" yaml:"raw"`
	Title   string     `json:"title" yaml:"title"`
	Due     *time.Time `json:"due,omitempty" yaml:"due,omitempty"`
	Invalid Invalid    `json:"invalid,omitempty" yaml:"invalid,omitempty"`

	// Anchor and Time record what the due date was resolved from.
	Anchor Anchor `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Time   string `json:"time,omitempty" yaml:"time,omitempty"`
}

// Valid reports whether the input had no invalid date expression.
func (r Result) Valid() bool {
	return r.Invalid == InvalidNone
}

// HasDue reports whether a due date was resolved.
func (r Result) HasDue() bool {
	return r.Due != nil
}

// Parser holds the clock and region an input is resolved against.
// A Parser is safe for concurrent use.
type Parser struct {
	now         func() time.Time
	loc         *time.Location
	defaultTime string
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLocation sets the region due dates are resolved in.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithDefaultTime overrides DefaultTime.
func WithDefaultTime(text string) Option {
	return func(p *Parser) {
		if text != "" {
			p.defaultTime = text
		}
	}
}

// New creates a Parser. Without options it uses time.Now, time.Local and
// DefaultTime.
func New(opts ...Option) *Parser {
	p := &Parser{
		now:         time.Now,
		loc:         time.Local,
		defaultTime: DefaultTime,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the region the parser resolves dates in.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// Now returns the parser's current instant in its region.
func (p *Parser) Now() time.Time {
	return p.now().In(p.loc)
}

var defaultParser = New()

// Parse parses text against the wall clock in the local region.
func Parse(text string) Result {
	return defaultParser.Parse(text)
}

// Parse parses text against the parser's clock.
func (p *Parser) Parse(text string) Result {
	return p.ParseAt(text, p.now())
}

// ParseAt parses text as if the current instant were now.
func (p *Parser) ParseAt(text string, now time.Time) Result {
	now = now.In(p.loc)
	c := classify(tokenize(text))

	res := Result{
		Raw:   text,
		Title: strings.Join(c.title, " "),
	}

	var anchor Anchor
	if c.hasMonth {
		anchor = MonthAnchor{
			Month:      c.month,
			DayOfMonth: c.dayOfMonth,
			Year:       c.year,
			HasYear:    c.hasYear,
		}
	} else if len(c.days) > 0 {
		anchor = DayAnchor{Day: c.days[0]}
	}

	timeText := ""
	if len(c.times) > 0 {
		timeText = c.times[0]
	}

	switch {
	case anchor != nil && timeText == "":
		timeText = p.defaultTime
	case anchor == nil && timeText != "":
		anchor = DayAnchor{Day: Today}
	case anchor == nil:
		return res
	}

	res.Anchor = anchor
	res.Time = timeText
	res.Due, res.Invalid = p.resolve(anchor, timeText, now)
	return res
}

func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, filler := fillerWords[f]; filler {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// classified is the transient state built while walking the tokens.
type classified struct {
	title []string

	hasMonth   bool
	month      time.Month
	monthIndex int
	dayOfMonth int
	hasDay     bool
	year       int
	hasYear    bool

	days  []Day
	times []string
}

func classify(tokens []string) classified {
	c := classified{monthIndex: -1}

	for i, token := range tokens {
		if m, ok := LookupMonth(token); ok {
			c.hasMonth = true
			c.month = m
			c.monthIndex = i
			continue
		}

		if c.monthIndex >= 0 && i == c.monthIndex+1 && !c.hasDay {
			if n, err := strconv.Atoi(strings.TrimRight(token, ",")); err == nil {
				c.dayOfMonth = n
				c.hasDay = true
				continue
			}
		}

		if c.monthIndex >= 0 && i == c.monthIndex+2 && c.hasDay && len(token) == 4 {
			if n, err := strconv.Atoi(token); err == nil {
				c.year = n
				c.hasYear = true
				continue
			}
		}

		if isSlashDate(token) && c.takeSlashDate(token) {
			continue
		}

		if d, ok := LookupDay(token); ok {
			c.days = append(c.days, d)
			continue
		}

		if IsTime(token) {
			c.times = append(c.times, token)
			continue
		}

		c.title = append(c.title, token)
	}

	return c
}

// takeSlashDate records an "M/D" or "M/D/Y" token. Month numbers outside
// 1..12 are kept so resolution reports them as an invalid date.
func (c *classified) takeSlashDate(token string) bool {
	parts := strings.Split(token, "/")
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	c.hasMonth = true
	c.month = time.Month(month)
	c.dayOfMonth = day
	c.hasDay = true
	c.year, c.hasYear = 0, false
	if len(parts) > 2 {
		if year, err := strconv.Atoi(parts[2]); err == nil {
			c.year = year
			c.hasYear = true
		}
	}
	return true
}
