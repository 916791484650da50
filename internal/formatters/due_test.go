package formatters

import (
	"testing"
	"time"

	"duelist/internal/parser"
)

var testNow = time.Date(2020, time.June, 1, 10, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time {
	return &t
}

func TestDueLabel(t *testing.T) {
	tests := []struct {
		name     string
		res      parser.Result
		expected string
	}{
		{"no due date", parser.Result{Title: "groceries"}, "No Due Date"},
		{"invalid time", parser.Result{Invalid: parser.InvalidTime}, "Invalid Time"},
		{"invalid date", parser.Result{Invalid: parser.InvalidDate}, "Invalid Date"},
		{"invalid year", parser.Result{Invalid: parser.InvalidYear}, "Invalid Year"},
		{
			"same year",
			parser.Result{Due: ptr(time.Date(2020, time.June, 2, 19, 0, 0, 0, time.UTC))},
			"Jun 2 7:00pm",
		},
		{
			"morning",
			parser.Result{Due: ptr(time.Date(2020, time.December, 25, 9, 5, 0, 0, time.UTC))},
			"Dec 25 9:05am",
		},
		{
			"other year",
			parser.Result{Due: ptr(time.Date(2021, time.January, 5, 23, 59, 0, 0, time.UTC))},
			"Jan 5, 2021 11:59pm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueLabel(tt.res, testNow); got != tt.expected {
				t.Errorf("DueLabel() = %q, want %q", got, tt.expected)
			}
			if got := RenderDueLabel(tt.res, testNow, false); got != tt.expected {
				t.Errorf("RenderDueLabel(color=false) = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDueLabelFromParser(t *testing.T) {
	p := parser.New(parser.WithLocation(time.UTC))

	res := p.ParseAt("buy groceries tue 7pm", testNow)
	if got := DueLabel(res, testNow); got != "Jun 2 7:00pm" {
		t.Errorf("DueLabel = %q", got)
	}

	res = p.ParseAt("party 13/5", testNow)
	if got := DueLabel(res, testNow); got != "Invalid Date" {
		t.Errorf("DueLabel = %q", got)
	}
}

func TestDueState(t *testing.T) {
	tests := []struct {
		name     string
		due      *time.Time
		expected State
	}{
		{"none", nil, StateNone},
		{"yesterday", ptr(testNow.AddDate(0, 0, -1)), StateLate},
		{"earlier today", ptr(testNow.Add(-time.Hour)), StateLate},
		{"later today", ptr(testNow.Add(time.Hour)), StateToday},
		{"exactly now", ptr(testNow), StateToday},
		{"tomorrow", ptr(testNow.AddDate(0, 0, 1)), StateUpcoming},
		{"next year same day", ptr(testNow.AddDate(1, 0, 0)), StateUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueState(tt.due, testNow); got != tt.expected {
				t.Errorf("DueState() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDueStateUsesNowLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2020, time.June, 1, 20, 0, 0, 0, est)
	// 02:00 UTC on June 2 is 21:00 EST on June 1
	due := time.Date(2020, time.June, 2, 2, 0, 0, 0, time.UTC)
	if got := DueState(&due, now); got != StateToday {
		t.Errorf("DueState() = %v, want today", got)
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		offset   time.Duration
		expected string
	}{
		{30 * time.Second, "now"},
		{-30 * time.Second, "now"},
		{5 * time.Minute, "5m left"},
		{3 * time.Hour, "3h left"},
		{-2 * time.Hour, "2h ago"},
		{50 * time.Hour, "2d left"},
		{-15 * 24 * time.Hour, "2w ago"},
		{400 * 24 * time.Hour, "1y left"},
	}

	for _, tt := range tests {
		if got := Remaining(testNow.Add(tt.offset), testNow); got != tt.expected {
			t.Errorf("Remaining(%v) = %q, want %q", tt.offset, got, tt.expected)
		}
	}
}

func TestRelative(t *testing.T) {
	if got := Relative(testNow.Add(3*24*time.Hour), testNow); got != "in 3d" {
		t.Errorf("Relative = %q", got)
	}
	if got := Relative(testNow.Add(-45*24*time.Hour), testNow); got != "1mo ago" {
		t.Errorf("Relative = %q", got)
	}
}

func TestHeaderDate(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)
	if got := HeaderDate(now); got != "Thursday Oct 15" {
		t.Errorf("HeaderDate = %q", got)
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		StateNone: "none", StateLate: "late", StateToday: "today", StateUpcoming: "upcoming",
	} {
		if state.String() != want {
			t.Errorf("String() = %q, want %q", state.String(), want)
		}
	}
}
