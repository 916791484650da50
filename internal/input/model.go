// Package input is the interactive entry prompt: a text field whose due
// date is re-parsed and shown on every keystroke.
package input

import (
	"fmt"
	"strings"

	"duelist/backend"
	"duelist/internal/formatters"
	"duelist/internal/operations"
	"duelist/internal/parser"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	promptText  = "What's due?"
	placeholder = "ex. buy groceries tue 7pm"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	addedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Options configures an entry session.
type Options struct {
	Store  backend.ItemStore
	Parser *parser.Parser
	Color  bool
}

// model is the bubbletea model for the entry prompt
type model struct {
	opts      Options
	textInput textinput.Model
	added     []backend.Item
	err       error
	quitting  bool
	width     int
	height    int
}

func newModel(opts Options) model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Focus()
	ti.Width = 50

	return model{
		opts:      opts,
		textInput: ti,
		width:     80,
		height:    24,
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates model state
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - len(m.textInput.Prompt) - 2; w > 10 {
			m.textInput.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	text := m.textInput.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	item, _, err := operations.AddFromInput(m.opts.Store, m.opts.Parser, text)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.added = append(m.added, item)
	m.err = nil
	m.textInput.Reset()
	return m, nil
}

// label is the live due label for the current text, empty while the field is.
func (m model) label() string {
	text := m.textInput.Value()
	if strings.TrimSpace(text) == "" {
		return ""
	}
	p := m.opts.Parser
	return formatters.RenderDueLabel(p.ParseAt(text, p.Now()), p.Now(), m.opts.Color)
}

// View renders the UI
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.render(promptStyle, promptText))
	if label := m.label(); label != "" {
		s.WriteString(" ")
		s.WriteString(label)
	}
	s.WriteString("\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(m.render(errorStyle, firstLine(m.err.Error())))
		s.WriteString("\n")
	}

	if len(m.added) > 0 {
		now := m.opts.Parser.Now()
		s.WriteString("\n")
		for _, item := range m.added {
			line := "✓ " + item.Title
			if item.Due != nil {
				line += "  " + formatters.FormatDue(*item.Due, now)
			}
			s.WriteString(m.render(addedStyle, line))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(m.render(helpStyle, "enter: save • esc: quit"))

	return s.String()
}

func (m model) render(style lipgloss.Style, text string) string {
	if !m.opts.Color {
		return text
	}
	return style.Render(text)
}

// firstLine drops the suggestion from an ErrorWithSuggestion message.
func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// Run starts the entry prompt and returns the items added before quitting.
func Run(opts Options) ([]backend.Item, error) {
	if opts.Store == nil || opts.Parser == nil {
		return nil, fmt.Errorf("input session needs a store and a parser")
	}

	p := tea.NewProgram(newModel(opts))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running input prompt: %w", err)
	}

	if m, ok := finalModel.(model); ok {
		return m.added, nil
	}
	return nil, fmt.Errorf("unexpected model type %T", finalModel)
}
