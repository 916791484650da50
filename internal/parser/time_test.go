package parser

import (
	"testing"
	"time"
)

func TestIsTime(t *testing.T) {
	tests := []struct {
		token    string
		expected bool
	}{
		{"7pm", true},
		{"7PM", true},
		{"11:59", true},
		{"11:59pm", true},
		{"9a", true},
		{"3:5pm", true},
		{"12:", true},
		{"1", true},
		{"12", true},
		{"0", false},
		{"13", false},
		{"100", false},
		{"ee411", false},
		{"pm", false},
		{"homework", false},
		{"123pm", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsTime(tt.token); got != tt.expected {
				t.Errorf("IsTime(%q) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestBreakTime(t *testing.T) {
	tests := []struct {
		token  string
		hour   int
		minute int
		ok     bool
	}{
		{"11:59pm", 23, 59, true},
		{"11:59", 23, 59, true},
		{"11:59a", 11, 59, true},
		{"11:59am", 11, 59, true},
		{"11:59AM", 11, 59, true},
		{"3", 15, 0, true},
		{"3pm", 15, 0, true},
		{"3p", 15, 0, true},
		{"9am", 9, 0, true},
		{"12am", 0, 0, true},
		{"12:30a", 0, 30, true},
		{"12", 12, 0, true},
		{"12pm", 12, 0, true},
		{"13:15", 13, 15, true},
		{"0:05a", 0, 5, true},
		{"3:5pm", 0, 0, false},
		{"3:", 0, 0, false},
		{"25:00", 0, 0, false},
		{"11:75", 0, 0, false},
		{"noon", 0, 0, false},
		{"-5", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			hour, minute, ok := BreakTime(tt.token)
			if ok != tt.ok {
				t.Fatalf("BreakTime(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if !ok {
				return
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("BreakTime(%q) = %02d:%02d, want %02d:%02d", tt.token, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}

func TestIsSlashDate(t *testing.T) {
	tests := []struct {
		token    string
		expected bool
	}{
		{"12/25", true},
		{"1/5/21", true},
		{"1/5/2021", true},
		{"1/2/3/4", false},
		{"and/or", false},
		{"12/", false},
		{"/5", true},
	}

	for _, tt := range tests {
		if got := isSlashDate(tt.token); got != tt.expected {
			t.Errorf("isSlashDate(%q) = %v, want %v", tt.token, got, tt.expected)
		}
	}
}

func TestLookupTables(t *testing.T) {
	months := map[string]time.Month{
		"jan":       time.January,
		"January":   time.January,
		"SEP":       time.September,
		"september": time.September,
		"may":       time.May,
		"dec":       time.December,
	}
	for token, want := range months {
		got, ok := LookupMonth(token)
		if !ok || got != want {
			t.Errorf("LookupMonth(%q) = %v, %v; want %v", token, got, ok, want)
		}
	}
	if _, ok := LookupMonth("sept"); ok {
		t.Error("LookupMonth(\"sept\") should not match")
	}
	// "may" is its own abbreviation
	if len(monthNames) != 23 {
		t.Errorf("expected 23 month names, got %d", len(monthNames))
	}

	days := map[string]Day{
		"today":    Today,
		"Tomorrow": Tomorrow,
		"tue":      Tuesday,
		"TUESDAY":  Tuesday,
		"sun":      Sunday,
		"sat":      Saturday,
	}
	for token, want := range days {
		got, ok := LookupDay(token)
		if !ok || got != want {
			t.Errorf("LookupDay(%q) = %v, %v; want %v", token, got, ok, want)
		}
	}
	for _, token := range []string{"tod", "tom", "tues", "weekend"} {
		if _, ok := LookupDay(token); ok {
			t.Errorf("LookupDay(%q) should not match", token)
		}
	}
	if len(dayNames) != 16 {
		t.Errorf("expected 16 day names, got %d", len(dayNames))
	}
}

func TestDayISOWeekday(t *testing.T) {
	tests := []struct {
		day  Day
		iso  int
		ok   bool
		name string
	}{
		{Monday, 1, true, "monday"},
		{Saturday, 6, true, "saturday"},
		{Sunday, 7, true, "sunday"},
		{Today, 0, false, "today"},
		{Tomorrow, 0, false, "tomorrow"},
	}
	for _, tt := range tests {
		iso, ok := tt.day.ISOWeekday()
		if iso != tt.iso || ok != tt.ok {
			t.Errorf("%v.ISOWeekday() = %d, %v; want %d, %v", tt.day, iso, ok, tt.iso, tt.ok)
		}
		if tt.day.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.day.String(), tt.name)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month time.Month
		year  int
		days  int
	}{
		{time.February, 2020, 29},
		{time.February, 2021, 28},
		{time.February, 1900, 28},
		{time.February, 2000, 29},
		{time.April, 2021, 30},
		{time.December, 2021, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.month, tt.year); got != tt.days {
			t.Errorf("DaysIn(%v, %d) = %d, want %d", tt.month, tt.year, got, tt.days)
		}
	}
}
