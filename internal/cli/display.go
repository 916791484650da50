package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"duelist/backend"
	"duelist/internal/formatters"

	"golang.org/x/term"
)

const (
	minWidth = 40
	maxWidth = 100

	ansiReset = "\033[0m"
	ansiFrame = "\033[1;36m" // bold cyan
	ansiNum   = "\033[36m"   // cyan
	ansiTitle = "\033[1;37m" // bold white
	ansiDim   = "\033[90m"   // gray
	ansiDone  = "\033[9;90m" // strikethrough gray
)

// GetTerminalWidth returns the current terminal width, defaulting to 80 if unable to detect
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return width
}

// DisplayOptions controls list rendering.
type DisplayOptions struct {
	Color bool
	// Width overrides the detected terminal width when positive.
	Width int
	// ShowIDs adds the short item ID to every row.
	ShowIDs bool
}

func (o DisplayOptions) borderWidth() int {
	width := o.Width
	if width <= 0 {
		width = GetTerminalWidth()
	}
	width -= 2
	if width < minWidth {
		width = minWidth
	}
	if width > maxWidth {
		width = maxWidth
	}
	return width
}

func (o DisplayOptions) paint(code, s string) string {
	if !o.Color {
		return s
	}
	return code + s + ansiReset
}

// ShowItems writes a bordered list: a header with the date and every
// list's counter, then one numbered row per item.
func ShowItems(w io.Writer, list backend.List, items []backend.Item, counts backend.ListCounts, now time.Time, opts DisplayOptions) {
	width := opts.borderWidth()

	headerText := "─ " + formatters.HeaderDate(now) + " "
	fmt.Fprintf(w, "\n%s\n", opts.paint(ansiFrame, "┌"+headerText+strings.Repeat("─", padding(width, headerText))+"┐"))
	fmt.Fprintf(w, "  %s\n\n", counterLine(list, counts, opts))

	if len(items) == 0 {
		fmt.Fprintf(w, "  %s\n", opts.paint(ansiDim, emptyMessage(list)))
	}
	for i, item := range items {
		fmt.Fprintln(w, itemRow(i+1, item, now, width, opts))
	}

	fmt.Fprintf(w, "%s\n", opts.paint(ansiFrame, "└"+strings.Repeat("─", width)+"┘"))
}

// ShowToday writes a compact summary of what is due today: a glance at the
// day without the full list.
func ShowToday(w io.Writer, items []backend.Item, now time.Time, opts DisplayOptions) {
	var today []backend.Item
	for _, item := range items {
		if backend.ListToday.Contains(item, now) {
			today = append(today, item)
		}
	}

	fmt.Fprintf(w, "%s\n", opts.paint(ansiTitle, formatters.HeaderDate(now)))
	if len(today) == 0 {
		fmt.Fprintf(w, "  %s\n", opts.paint(ansiDim, "Nothing due today"))
		return
	}

	for _, item := range today {
		due := item.Due.In(now.Location())
		state := formatters.DueState(item.Due, now)
		clock := fmt.Sprintf("%-7s", due.Format("3:04pm"))
		if opts.Color {
			clock = formatters.StateStyle(state).Render(clock)
		}
		fmt.Fprintf(w, "  %s  %s\n", clock, item.Title)
	}

	noun := "items"
	if len(today) == 1 {
		noun = "item"
	}
	fmt.Fprintf(w, "  %s\n", opts.paint(ansiDim, fmt.Sprintf("%d %s due today", len(today), noun)))
}

func counterLine(active backend.List, counts backend.ListCounts, opts DisplayOptions) string {
	parts := make([]string, 0, len(backend.Lists()))
	for _, l := range backend.Lists() {
		text := fmt.Sprintf("%s %d", l.Title(), counts.Get(l))
		if l == active {
			parts = append(parts, opts.paint(ansiTitle, "["+text+"]"))
		} else {
			parts = append(parts, opts.paint(ansiDim, text))
		}
	}
	return strings.Join(parts, "  ")
}

func itemRow(n int, item backend.Item, now time.Time, width int, opts DisplayOptions) string {
	status := "○"
	if item.Completed {
		status = "✓"
	}

	due := ""
	if item.Due != nil {
		due = formatters.FormatDue(*item.Due, now)
		if !item.Completed {
			due += "  " + formatters.Remaining(*item.Due, now)
		}
	}

	id := ""
	if opts.ShowIDs {
		id = item.ShortID() + " "
	}

	// "  NN. ○ " prefix plus a space before the due text
	titleWidth := width - 8 - len(id) - len([]rune(due)) - 1
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := fmt.Sprintf("%-*s", titleWidth, truncate(item.Title, titleWidth))

	switch {
	case item.Completed:
		title = opts.paint(ansiDone, title)
	case opts.Color:
		title = ansiTitle + title + ansiReset
	}
	if opts.Color && due != "" {
		due = formatters.StateStyle(formatters.DueState(item.Due, now)).Render(due)
	}

	num := opts.paint(ansiNum, fmt.Sprintf("%2d.", n))
	return strings.TrimRight(fmt.Sprintf("  %s %s %s%s %s", num, status, opts.paint(ansiDim, id), title, due), " ")
}

func emptyMessage(list backend.List) string {
	switch list {
	case backend.ListToday:
		return "Nothing due today"
	case backend.ListLate:
		return "Nothing is late"
	case backend.ListDone:
		return "Nothing completed yet"
	default:
		return "No items. Add one with: duelist add buy groceries tue 7pm"
	}
}

func padding(width int, text string) int {
	n := width - len([]rune(text))
	if n < 0 {
		return 0
	}
	return n
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
