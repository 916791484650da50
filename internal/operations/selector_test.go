package operations

import (
	"strings"
	"testing"

	"duelist/backend"
)

func selectorItems() []backend.Item {
	return []backend.Item{
		{ID: "3f2a9c1e-aaaa-4bbb-8ccc-000000000001", Title: "Buy groceries"},
		{ID: "3f2a9c1e-bbbb-4bbb-8ccc-000000000002", Title: "buy milk"},
		{ID: "7d41e0b2-cccc-4bbb-8ccc-000000000003", Title: "essay"},
		{ID: "9e8d7c6b-dddd-4bbb-8ccc-000000000004", Title: "essay outline"},
		{ID: "a1b2c3d4-eeee-4bbb-8ccc-000000000005", Title: "2"},
	}
}

func TestSelectItem(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
		wantErr  string
	}{
		{name: "index", ref: "2", expected: "buy milk"},
		{name: "first index", ref: "1", expected: "Buy groceries"},
		{name: "last index", ref: "5", expected: "2"},
		{name: "out of range index falls back to title", ref: "9", wantErr: "no items found"},
		{name: "zero is not an index", ref: "0", wantErr: "no items found"},
		{name: "id prefix", ref: "7d41e0b2", expected: "essay"},
		{name: "id prefix ignores case", ref: "9E8D7C6B-DD", expected: "essay outline"},
		{name: "ambiguous id prefix", ref: "3f2a9c1e", wantErr: "matches 2 items"},
		{name: "exact title beats partial", ref: "essay", expected: "essay"},
		{name: "exact title ignores case", ref: "BUY MILK", expected: "buy milk"},
		{name: "single partial", ref: "groc", expected: "Buy groceries"},
		{name: "ambiguous partial", ref: "buy", wantErr: "matches 2 items"},
		{name: "no match", ref: "laundry", wantErr: "no items found"},
		{name: "empty", ref: "  ", wantErr: "no items found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := selectorItems()
			got, err := SelectItem(items, tt.ref)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error, got %q", got.Title)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.expected {
				t.Errorf("SelectItem(%q) = %q, want %q", tt.ref, got.Title, tt.expected)
			}
		})
	}
}

func TestSelectItemAmbiguousListsCandidates(t *testing.T) {
	_, err := SelectItem(selectorItems(), "buy")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"Buy groceries (3f2a9c1e)", "buy milk (3f2a9c1e)"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should list %q", err.Error(), want)
		}
	}
}

func TestSelectItemReturnsSliceElement(t *testing.T) {
	items := selectorItems()
	got, err := SelectItem(items, "3")
	if err != nil {
		t.Fatal(err)
	}
	if got != &items[2] {
		t.Error("SelectItem should point into the given slice")
	}
}

func TestValidateReference(t *testing.T) {
	tests := []struct {
		ref     string
		wantErr bool
	}{
		{"1", false},
		{"essay", false},
		{"3f2a9c1e", false},
		{"", true},
		{"   ", true},
		{"0", true},
		{"-2", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			err := ValidateReference(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReference(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "invalid item reference") {
				t.Errorf("unexpected message: %v", err)
			}
		})
	}
}
