package operations

import (
	"fmt"
	"strconv"
	"strings"

	"duelist/backend"
	"duelist/internal/utils"
)

// minIDPrefix is the shortest ID prefix accepted as a reference; list output
// shows 8 characters.
const minIDPrefix = 8

// ValidateReference rejects references that cannot match any item: blank
// text and item numbers below 1.
func ValidateReference(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return utils.ErrInvalidReference(ref, "empty")
	}
	if n, err := strconv.Atoi(ref); err == nil && n < 1 {
		return utils.ErrInvalidReference(ref, "item numbers start at 1")
	}
	return nil
}

// SelectItem resolves ref against the displayed items. ref may be the
// 1-based number shown next to an item, an ID prefix, or a title. An exact
// (case-insensitive) title match wins over partial matches; several matches
// at the same level are an error listing the candidates.
func SelectItem(items []backend.Item, ref string) (*backend.Item, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, utils.ErrItemNotFound(ref)
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(items) {
			return &items[n-1], nil
		}
	}

	if len(ref) >= minIDPrefix {
		if matches := filterItems(items, func(item backend.Item) bool {
			return strings.HasPrefix(strings.ToLower(item.ID), strings.ToLower(ref))
		}); len(matches) > 0 {
			return pickOne(matches, ref)
		}
	}

	refLower := strings.ToLower(ref)
	if exact := filterItems(items, func(item backend.Item) bool {
		return strings.ToLower(item.Title) == refLower
	}); len(exact) > 0 {
		return pickOne(exact, ref)
	}

	partial := filterItems(items, func(item backend.Item) bool {
		return strings.Contains(strings.ToLower(item.Title), refLower)
	})
	if len(partial) == 0 {
		return nil, utils.ErrItemNotFound(ref)
	}
	return pickOne(partial, ref)
}

func filterItems(items []backend.Item, keep func(backend.Item) bool) []*backend.Item {
	var out []*backend.Item
	for i := range items {
		if keep(items[i]) {
			out = append(out, &items[i])
		}
	}
	return out
}

func pickOne(matches []*backend.Item, ref string) (*backend.Item, error) {
	if len(matches) == 1 {
		return matches[0], nil
	}
	candidates := make([]string, len(matches))
	for i, item := range matches {
		candidates[i] = fmt.Sprintf("%s (%s)", item.Title, item.ShortID())
	}
	return nil, utils.ErrAmbiguousReference(ref, candidates)
}
