package operations

import (
	"strings"
	"time"

	"duelist/backend"
	"duelist/internal/parser"
	"duelist/internal/utils"
)

// InputParser turns typed text into a parse result.
type InputParser interface {
	Parse(text string) parser.Result
}

// CheckInput parses text and applies the save rules: the input must be
// non-empty, have no invalid date and leave a title.
func CheckInput(p InputParser, text string) (parser.Result, error) {
	if strings.TrimSpace(text) == "" {
		return parser.Result{Raw: text}, utils.ErrEmptyInput()
	}

	res := p.Parse(text)
	if !res.Valid() {
		return res, utils.ErrInvalidInput(text, res.Invalid.String())
	}
	if res.Title == "" {
		return res, utils.ErrEmptyTitle(strings.TrimSpace(text))
	}
	return res, nil
}

// AddFromInput parses text and stores it as a new item.
func AddFromInput(store backend.ItemStore, p InputParser, text string) (backend.Item, parser.Result, error) {
	res, err := CheckInput(p, text)
	if err != nil {
		return backend.Item{}, res, err
	}

	item, err := store.AddItem(backend.Item{
		Title: res.Title,
		Input: res.Raw,
		Due:   res.Due,
	})
	if err != nil {
		return backend.Item{}, res, err
	}

	utils.Debugf("Added item %s %q due %v", item.ShortID(), item.Title, formatDueForLog(item.Due))
	return item, res, nil
}

// EditFromInput re-parses text onto an existing item, replacing its title,
// input and due date.
func EditFromInput(store backend.ItemStore, p InputParser, item backend.Item, text string) (backend.Item, parser.Result, error) {
	res, err := CheckInput(p, text)
	if err != nil {
		return item, res, err
	}

	item.Title = res.Title
	item.Input = res.Raw
	item.Due = res.Due
	if err := store.UpdateItem(item); err != nil {
		return item, res, err
	}

	utils.Debugf("Edited item %s %q due %v", item.ShortID(), item.Title, formatDueForLog(item.Due))
	return item, res, nil
}

func formatDueForLog(due *time.Time) string {
	if due == nil {
		return "none"
	}
	return due.Format(time.RFC3339)
}
