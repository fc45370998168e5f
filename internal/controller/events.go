package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"todoview/internal/filter"
	"todoview/internal/service"
)

// Element names a control on the page.
type Element string

const (
	TaskInput    Element = "taskInput"
	AddButton    Element = "addBtn"
	FilterButton Element = "filter-btn"
	Checkbox     Element = "todo-checkbox"
	EditButton   Element = "edit-btn"
	DeleteButton Element = "delete-btn"
)

// EventKind is the kind of user interaction.
type EventKind string

const (
	Click    EventKind = "click"
	Change   EventKind = "change"
	KeyPress EventKind = "keypress"
)

// KeyEnter is the Key value of an Enter key press.
const KeyEnter = "Enter"

// Event is a user interaction with a page element. Row controls carry the
// row's TaskID; filter buttons carry the Filter they select.
type Event struct {
	Element Element
	Kind    EventKind
	TaskID  service.ID
	Filter  filter.Filter
	Key     string
}

func (e Event) String() string {
	return fmt.Sprintf("%s:%s", e.Element, e.Kind)
}

// Handler reacts to an event.
type Handler func(ctx context.Context, ev Event) error

// Binding is a key in the subscription table.
type Binding struct {
	Element Element
	Kind    EventKind
}

// ErrNoHandler is returned by Dispatch when nothing is subscribed to an event.
var ErrNoHandler = errors.New("no handler")

// Table maps (element, event kind) pairs to handlers.
type Table struct {
	handlers map[Binding]Handler
}

// NewTable creates an empty subscription table.
func NewTable() *Table {
	return &Table{handlers: make(map[Binding]Handler)}
}

// Subscribe attaches h to (el, kind).
// Returns an error if the pair already has a handler.
func (t *Table) Subscribe(el Element, kind EventKind, h Handler) error {
	b := Binding{Element: el, Kind: kind}
	if _, exists := t.handlers[b]; exists {
		return fmt.Errorf("handler already subscribed: %s:%s", el, kind)
	}
	t.handlers[b] = h
	return nil
}

// Unsubscribe detaches the handler for (el, kind), if any.
func (t *Table) Unsubscribe(el Element, kind EventKind) {
	delete(t.handlers, Binding{Element: el, Kind: kind})
}

// Clear detaches every handler.
func (t *Table) Clear() {
	clear(t.handlers)
}

// Len returns the number of subscriptions.
func (t *Table) Len() int {
	return len(t.handlers)
}

// Bindings returns all subscribed pairs sorted by element then kind.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.handlers))
	for b := range t.handlers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Element != out[j].Element {
			return out[i].Element < out[j].Element
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Dispatch runs the handler subscribed to ev.
func (t *Table) Dispatch(ctx context.Context, ev Event) error {
	h, ok := t.handlers[Binding{Element: ev.Element, Kind: ev.Kind}]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, ev)
	}
	return h(ctx, ev)
}
