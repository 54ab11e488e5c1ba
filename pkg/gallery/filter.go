package gallery

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned for a filter name that is not offered.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter is a category chip above the carousel. Selecting one only changes
// which chip is highlighted; the items shown are not filtered.
type Filter string

const (
	FilterAll      Filter = "All"
	FilterEvents   Filter = "Events"
	FilterContests Filter = "Contests"
)

// Filters returns the chips in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterEvents, FilterContests}
}

// ParseFilter resolves a filter name case-insensitively.
// An empty name selects FilterAll.
func ParseFilter(name string) (Filter, error) {
	if strings.TrimSpace(name) == "" {
		return FilterAll, nil
	}
	for _, f := range Filters() {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// SortOptions are the entries of the sort dropdown. The first one is the
// placeholder. None of them reorder items.
func SortOptions() []string {
	return []string{"Sort by", "Date Ascending", "Date Descending", "Most Popular"}
}
