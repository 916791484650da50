package input

import (
	"strings"
	"testing"
	"time"

	"duelist/backend"
	"duelist/internal/parser"

	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2020, time.June, 1, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) model {
	t.Helper()
	store, err := backend.NewSQLiteStore(":memory:",
		backend.WithStoreClock(func() time.Time { return testNow }),
		backend.WithStoreLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	p := parser.New(
		parser.WithClock(func() time.Time { return testNow }),
		parser.WithLocation(time.UTC),
	)
	return newModel(Options{Store: store, Parser: p})
}

func typeText(m model, text string) model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(model)
}

func press(m model, key tea.KeyType) (model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(model), cmd
}

// TestNewModel verifies model initialization
func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.textInput.Value() != "" {
		t.Error("Expected empty text input")
	}
	if m.textInput.Placeholder != "ex. buy groceries tue 7pm" {
		t.Errorf("Placeholder = %q", m.textInput.Placeholder)
	}
	if !m.textInput.Focused() {
		t.Error("Expected focused input")
	}
	if m.Init() == nil {
		t.Error("Expected Init to return a command")
	}
}

func TestViewShowsPromptAndHidesEmptyLabel(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "What's due?") {
		t.Errorf("view missing prompt:\n%s", view)
	}
	for _, label := range []string{"No Due Date", "Invalid"} {
		if strings.Contains(view, label) {
			t.Errorf("empty field should not show %q", label)
		}
	}
}

func TestLiveLabel(t *testing.T) {
	tests := []struct {
		text  string
		label string
	}{
		{"buy groceries", "No Due Date"},
		{"buy groceries tue 7pm", "Jun 2 7:00pm"},
		{"party feb 30", "Invalid Date"},
		{"call 3:5pm", "Invalid Time"},
		{"report jan 5 2019", "Invalid Year"},
		{"new year jan 1 2021", "Jan 1, 2021 11:59pm"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m := typeText(newTestModel(t), tt.text)
			if got := m.label(); got != tt.label {
				t.Errorf("label() = %q, want %q", got, tt.label)
			}
			if !strings.Contains(m.View(), "What's due? "+tt.label) {
				t.Errorf("view missing label %q:\n%s", tt.label, m.View())
			}
		})
	}
}

func TestLabelFollowsEdits(t *testing.T) {
	m := typeText(newTestModel(t), "essay tod")
	if got := m.label(); got != "No Due Date" {
		t.Errorf("label() = %q", got)
	}

	m = typeText(m, "ay")
	if got := m.label(); got != "Jun 1 11:59pm" {
		t.Errorf("label() = %q", got)
	}

	m, _ = press(m, tea.KeyBackspace)
	if got := m.label(); got != "No Due Date" {
		t.Errorf("label after backspace = %q", got)
	}
}

func TestEnterSavesAndClears(t *testing.T) {
	m := typeText(newTestModel(t), "buy groceries tue 7pm")

	m, cmd := press(m, tea.KeyEnter)
	if cmd != nil {
		t.Error("saving should not quit")
	}
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.textInput.Value() != "" {
		t.Errorf("field should be cleared, got %q", m.textInput.Value())
	}
	if len(m.added) != 1 || m.added[0].Title != "buy groceries" {
		t.Fatalf("added = %+v", m.added)
	}

	items, err := m.opts.Store.GetItems(backend.ItemFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Input != "buy groceries tue 7pm" {
		t.Errorf("stored items = %+v", items)
	}

	if !strings.Contains(m.View(), "✓ buy groceries  Jun 2 7:00pm") {
		t.Errorf("view should list the added item:\n%s", m.View())
	}
}

func TestEnterRejectsInvalidInput(t *testing.T) {
	for _, text := range []string{"party feb 30", "tomorrow 7pm"} {
		t.Run(text, func(t *testing.T) {
			m := typeText(newTestModel(t), text)
			m, _ = press(m, tea.KeyEnter)

			if m.err == nil {
				t.Fatal("expected error")
			}
			if m.textInput.Value() != text {
				t.Errorf("field should keep the text, got %q", m.textInput.Value())
			}
			if len(m.added) != 0 {
				t.Error("nothing should be added")
			}
			if strings.Contains(m.View(), "Suggestion:") {
				t.Error("view should show only the first error line")
			}

			// typing clears the error
			m = typeText(m, " x")
			if m.err != nil {
				t.Error("typing should clear the error")
			}
		})
	}
}

func TestEnterOnEmptyFieldDoesNothing(t *testing.T) {
	m := typeText(newTestModel(t), "   ")
	m, cmd := press(m, tea.KeyEnter)
	if cmd != nil || m.err != nil || len(m.added) != 0 {
		t.Errorf("empty enter changed state: err=%v added=%v", m.err, m.added)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, cmd := press(newTestModel(t), key)
		if !m.quitting {
			t.Errorf("%v should quit", key)
		}
		if cmd == nil {
			t.Errorf("%v should return quit command", key)
		}
		if m.View() != "" {
			t.Error("quitting view should be empty")
		}
	}
}

func TestWindowSize(t *testing.T) {
	updated, _ := newTestModel(t).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.textInput.Width != 116 {
		t.Errorf("input width = %d", m.textInput.Width)
	}
}

func TestRunNeedsStoreAndParser(t *testing.T) {
	if _, err := Run(Options{}); err == nil {
		t.Error("expected error without store and parser")
	}
}
