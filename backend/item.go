package backend

import (
	"fmt"
	"strings"
	"time"
)

// Item is a stored to-do entry. Title and Due come from parsing Input.
type Item struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Input       string     `json:"input" yaml:"input"`
	Due         *time.Time `json:"due,omitempty" yaml:"due,omitempty"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

// IsLate reports whether an incomplete item's due date has passed.
func (i Item) IsLate(now time.Time) bool {
	return !i.Completed && i.Due != nil && i.Due.Before(now)
}

// IsDueToday reports whether an incomplete item is due on now's calendar day.
func (i Item) IsDueToday(now time.Time) bool {
	if i.Completed || i.Due == nil {
		return false
	}
	start, end := dayBounds(now)
	return !i.Due.Before(start) && i.Due.Before(end)
}

// ShortID returns the first 8 characters of the ID.
func (i Item) ShortID() string {
	if len(i.ID) > 8 {
		return i.ID[:8]
	}
	return i.ID
}

func (i Item) String() string {
	var b strings.Builder
	b.WriteString(i.Title)
	if i.Due != nil {
		fmt.Fprintf(&b, " (due %s)", i.Due.Format("2006-01-02 15:04"))
	}
	if i.Completed {
		b.WriteString(" [done]")
	}
	return b.String()
}

// List is one of the filtered views of the items.
type List string

const (
	ListAll   List = "all"
	ListToday List = "today"
	ListLate  List = "late"
	ListDone  List = "done"
)

// Lists returns every list in display order.
func Lists() []List {
	return []List{ListAll, ListToday, ListLate, ListDone}
}

// ListNames returns the list names as strings.
func ListNames() []string {
	lists := Lists()
	names := make([]string, len(lists))
	for i, l := range lists {
		names[i] = string(l)
	}
	return names
}

// ParseList matches a list name, ignoring case.
func ParseList(name string) (List, bool) {
	for _, l := range Lists() {
		if strings.EqualFold(name, string(l)) {
			return l, true
		}
	}
	return "", false
}

// Title returns the display name, e.g. "Today".
func (l List) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Contains reports whether item belongs to the list at now.
func (l List) Contains(item Item, now time.Time) bool {
	switch l {
	case ListAll:
		return !item.Completed
	case ListToday:
		return item.IsDueToday(now)
	case ListLate:
		return item.IsLate(now)
	case ListDone:
		return item.Completed
	default:
		return false
	}
}

// ListCounts holds the number of items in each list.
type ListCounts struct {
	All   int `json:"all" yaml:"all"`
	Today int `json:"today" yaml:"today"`
	Late  int `json:"late" yaml:"late"`
	Done  int `json:"done" yaml:"done"`
}

// Get returns the count for l.
func (c ListCounts) Get(l List) int {
	switch l {
	case ListAll:
		return c.All
	case ListToday:
		return c.Today
	case ListLate:
		return c.Late
	case ListDone:
		return c.Done
	default:
		return 0
	}
}

// dayBounds returns midnight at the start of now's day and of the next day,
// in now's location.
func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
