// Package filter defines the list filter selection and its projection.
package filter

import (
	"fmt"
	"strings"

	"todoview/internal/service"
)

// Filter selects which tasks the list view shows.
type Filter string

const (
	All       Filter = "all"
	Active    Filter = "active"
	Completed Filter = "completed"
)

// Default is the selection at startup.
const Default = All

// Values returns every filter in display order.
func Values() []Filter {
	return []Filter{All, Active, Completed}
}

// Parse converts user input to a Filter (case-insensitive, trimmed).
func Parse(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown filter: %s (want all, active or completed)", s)
	}
	return f, nil
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case All, Active, Completed:
		return true
	}
	return false
}

// Label returns the button caption for f.
func (f Filter) Label() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether t belongs in the view selected by f.
func (f Filter) Match(t service.Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the tasks matching f in their original order.
// It never modifies tasks; the result is a fresh slice.
func Apply(tasks []service.Task, f Filter) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
