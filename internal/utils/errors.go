package utils

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with a helpful suggestion for the user
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\nSuggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap allows errors.Is and errors.As to work
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// Common error constructors with suggestions

// ErrItemNotFound creates an error when no item matches a reference
func ErrItemNotFound(ref string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("no items found matching '%s'", ref),
		Suggestion: "Run 'duelist list' and use the number shown next to the item",
	}
}

// ErrAmbiguousReference creates an error when a reference matches several items
func ErrAmbiguousReference(ref string, candidates []string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("'%s' matches %d items: %s", ref, len(candidates), strings.Join(candidates, ", ")),
		Suggestion: "Use the item number from 'duelist list' or a longer title",
	}
}

// ErrInvalidReference creates an error for a reference that cannot name an item
func ErrInvalidReference(ref, reason string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid item reference '%s': %s", ref, reason),
		Suggestion: "Use the item number from 'duelist list', an ID prefix or part of the title",
	}
}

// ErrEmptyInput creates an error when nothing was typed
func ErrEmptyInput() error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("nothing to add"),
		Suggestion: "Type a task, e.g. 'duelist add buy groceries tue 7pm'",
	}
}

// ErrEmptyTitle creates an error when the input holds only a date
func ErrEmptyTitle(input string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("'%s' has a due date but no title", input),
		Suggestion: "Add some words describing the task, e.g. 'pay rent " + input + "'",
	}
}

// ErrInvalidInput creates an error for an input whose date could not be used
func ErrInvalidInput(input, kind string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid %s in '%s'", strings.ToLower(kind), input),
		Suggestion: suggestionForInvalid(kind),
	}
}

func suggestionForInvalid(kind string) string {
	switch kind {
	case "Time":
		return "Times look like 7pm, 9a, 11:59 or 11:59pm (two digits after the colon)"
	case "Date":
		return "Check the day exists in that month, e.g. 'feb 28' or '2/28'"
	case "Year":
		return "An explicit year must not be in the past; leave it out to get the next occurrence"
	default:
		return "Run 'duelist parse <text>' to see how the input is read"
	}
}

// ErrInvalidNow creates an error for an unusable --now override
func ErrInvalidNow(value string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid --now value: %s", value),
		Suggestion: "Use RFC 3339 (2026-01-15T09:30:00-05:00) or '2006-01-02 15:04' local time",
	}
}

// ErrUnknownList creates an error for an unknown list filter
func ErrUnknownList(name string, valid []string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("unknown list: %s", name),
		Suggestion: fmt.Sprintf("Valid lists: %s", strings.Join(valid, ", ")),
	}
}

// ErrConfigFileNotFound creates an error when config file is not found
func ErrConfigFileNotFound(path string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("config file not found at %s", path),
		Suggestion: "Run duelist to create a default configuration file",
	}
}

// ErrInvalidConfig creates an error for invalid configuration
func ErrInvalidConfig(field string, reason string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid configuration for '%s': %s", field, reason),
		Suggestion: fmt.Sprintf("Check ~/.config/duelist/config.yaml and fix the '%s' field", field),
	}
}

// WrapWithSuggestion wraps an existing error with a suggestion
func WrapWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}
