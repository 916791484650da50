package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptYesNoFrom(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		retries int
	}{
		{"yes", "y\n", true, 0},
		{"full yes uppercase", "YES\n", true, 0},
		{"no", "n\n", false, 0},
		{"retry then yes", "maybe\ny\n", true, 1},
		{"end of input", "", false, 0},
		{"answer without newline", "yes", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := PromptYesNoFrom(strings.NewReader(tt.input), &out, "Delete?")
			if got != tt.want {
				t.Errorf("PromptYesNoFrom(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if n := strings.Count(out.String(), "Please enter y or n"); n != tt.retries {
				t.Errorf("retry messages = %d, want %d", n, tt.retries)
			}
			if !strings.HasPrefix(out.String(), "Delete? (y/n): ") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}
