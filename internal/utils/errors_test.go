package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorWithSuggestion(t *testing.T) {
	base := errors.New("boom")
	err := WrapWithSuggestion(base, "try again")

	if !errors.Is(err, base) {
		t.Error("errors.Is should see the wrapped error")
	}
	if !strings.Contains(err.Error(), "Suggestion: try again") {
		t.Errorf("expected suggestion in message, got %q", err.Error())
	}
	if WrapWithSuggestion(nil, "x") != nil {
		t.Error("wrapping nil should return nil")
	}

	plain := &ErrorWithSuggestion{Err: base}
	if plain.Error() != "boom" {
		t.Errorf("without suggestion expected bare message, got %q", plain.Error())
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{"item not found", ErrItemNotFound("milk"), []string{"milk", "duelist list"}},
		{"ambiguous", ErrAmbiguousReference("pay", []string{"pay rent", "pay bills"}), []string{"2 items", "pay rent, pay bills"}},
		{"empty title", ErrEmptyTitle("tue 7pm"), []string{"no title", "pay rent tue 7pm"}},
		{"invalid time", ErrInvalidInput("x 3:5pm", "Time"), []string{"invalid time", "two digits"}},
		{"invalid date", ErrInvalidInput("feb 30", "Date"), []string{"invalid date", "feb 28"}},
		{"invalid year", ErrInvalidInput("jan 5 2019", "Year"), []string{"invalid year", "past"}},
		{"invalid now", ErrInvalidNow("yesterday"), []string{"yesterday", "RFC 3339"}},
		{"unknown list", ErrUnknownList("soon", []string{"all", "today"}), []string{"soon", "all, today"}},
		{"invalid config", ErrInvalidConfig("timezone", "unknown"), []string{"timezone", "config.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ews *ErrorWithSuggestion
			if !errors.As(tt.err, &ews) {
				t.Fatalf("expected *ErrorWithSuggestion, got %T", tt.err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(tt.err.Error(), want) {
					t.Errorf("error %q should contain %q", tt.err.Error(), want)
				}
			}
		})
	}
}
