// Package controller owns the client-side task cache, the filter selection
// and the render cycle that projects them onto a page.
//
// A Controller runs on a single goroutine. Every mutating operation makes
// exactly one round-trip to the service and touches the cache only after
// that call succeeds. Failures are logged and otherwise leave the page as
// it was; the cache is never re-fetched to reconcile with the server.
package controller

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"todoview/internal/filter"
	"todoview/internal/service"
	"todoview/internal/view"
)

// User-facing dialog texts.
const (
	MsgEmptyTask     = "Please enter a task"
	MsgConfirmDelete = "Are you sure you want to delete this task?"
	MsgEditTask      = "Edit task:"
)

var (
	// ErrEmptyTask is returned by Add when the input is blank.
	ErrEmptyTask = errors.New("task cannot be empty")

	// ErrNoSuchTask is returned when an id is not in the cache.
	ErrNoSuchTask = errors.New("no such task")

	// ErrNotAttached is returned by Dispatch before Attach or after Detach.
	ErrNotAttached = errors.New("controller not attached")
)

// Controller is the todo client controller.
type Controller struct {
	svc     service.Service
	page    view.Page
	dialogs Dialogs
	logger  *log.Logger

	tasks  []service.Task
	filter filter.Filter
	events *Table
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the developer console logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a controller with an empty cache and the default filter.
func New(svc service.Service, page view.Page, dialogs Dialogs, opts ...Option) *Controller {
	c := &Controller{
		svc:     svc,
		page:    page,
		dialogs: dialogs,
		logger:  log.New(io.Discard),
		tasks:   []service.Task{},
		filter:  filter.Default,
		events:  NewTable(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach subscribes the controller's handlers to the page elements.
func (c *Controller) Attach() error {
	if c.events.Len() > 0 {
		return errors.New("controller already attached")
	}
	subs := []struct {
		el   Element
		kind EventKind
		h    Handler
	}{
		{AddButton, Click, func(ctx context.Context, _ Event) error { return c.Add(ctx) }},
		{TaskInput, KeyPress, c.onInputKey},
		{FilterButton, Click, func(_ context.Context, ev Event) error { return c.SetFilter(ev.Filter) }},
		{Checkbox, Change, func(ctx context.Context, ev Event) error { return c.Toggle(ctx, ev.TaskID) }},
		{EditButton, Click, func(ctx context.Context, ev Event) error { return c.Edit(ctx, ev.TaskID) }},
		{DeleteButton, Click, func(ctx context.Context, ev Event) error { return c.Delete(ctx, ev.TaskID) }},
	}
	for _, s := range subs {
		if err := c.events.Subscribe(s.el, s.kind, s.h); err != nil {
			c.events.Clear()
			return err
		}
	}
	return nil
}

// Detach removes every subscription. The cache is kept.
func (c *Controller) Detach() {
	c.events.Clear()
}

// Bindings lists the active subscriptions.
func (c *Controller) Bindings() []Binding {
	return c.events.Bindings()
}

// Dispatch delivers a page event to its subscribed handler.
func (c *Controller) Dispatch(ctx context.Context, ev Event) error {
	if c.events.Len() == 0 {
		return ErrNotAttached
	}
	return c.events.Dispatch(ctx, ev)
}

func (c *Controller) onInputKey(ctx context.Context, ev Event) error {
	if ev.Key != KeyEnter {
		return nil
	}
	return c.Add(ctx)
}

// Tasks returns a copy of the cache.
func (c *Controller) Tasks() []service.Task {
	return slices.Clone(c.tasks)
}

// Filter returns the current filter selection.
func (c *Controller) Filter() filter.Filter {
	return c.filter
}

// Load fetches all tasks and replaces the cache. On failure the cache is
// left as it was and nothing is drawn.
func (c *Controller) Load(ctx context.Context) error {
	tasks, err := c.svc.ListTasks(ctx)
	if err != nil {
		c.logger.Error("error loading todos", "err", err)
		return err
	}
	c.tasks = slices.Clone(tasks)
	c.logger.Debug("loaded todos", "count", len(c.tasks))
	return c.Render()
}

// Add creates a task from the page input. Blank input raises an alert and
// makes no call. On success the new task is prepended and the input cleared;
// on failure the input keeps its text.
func (c *Controller) Add(ctx context.Context) error {
	text := strings.TrimSpace(c.page.Input())
	if text == "" {
		c.dialogs.Alert(MsgEmptyTask)
		return ErrEmptyTask
	}

	task, err := c.svc.CreateTask(ctx, text)
	if err != nil {
		c.logger.Error("error adding todo", "err", err)
		return err
	}
	c.tasks = slices.Insert(c.tasks, 0, task)
	c.page.SetInput("")
	return c.Render()
}

// Toggle flips the completion flag of id once the server accepts it.
func (c *Controller) Toggle(ctx context.Context, id service.ID) error {
	i := c.index(id)
	if i < 0 {
		return ErrNoSuchTask
	}

	want := !c.tasks[i].Completed
	if err := c.svc.UpdateTask(ctx, id, service.SetCompleted(want)); err != nil {
		c.logger.Error("error toggling todo", "id", id, "err", err)
		return err
	}
	// The cache may have changed while the request was in flight.
	if i = c.index(id); i >= 0 {
		c.tasks[i].Completed = want
	}
	return c.Render()
}

// Edit prompts for replacement text and saves it. Cancelling or entering
// blank text aborts without a call.
func (c *Controller) Edit(ctx context.Context, id service.ID) error {
	i := c.index(id)
	if i < 0 {
		return ErrNoSuchTask
	}

	text, ok := c.dialogs.Prompt(MsgEditTask, c.tasks[i].Text)
	text = strings.TrimSpace(text)
	if !ok || text == "" {
		return nil
	}

	if err := c.svc.UpdateTask(ctx, id, service.SetText(text)); err != nil {
		c.logger.Error("error editing todo", "id", id, "err", err)
		return err
	}
	if i = c.index(id); i >= 0 {
		c.tasks[i].Text = text
	}
	return c.Render()
}

// Delete removes id after the user confirms.
func (c *Controller) Delete(ctx context.Context, id service.ID) error {
	if !c.dialogs.Confirm(MsgConfirmDelete) {
		return nil
	}

	if err := c.svc.DeleteTask(ctx, id); err != nil {
		c.logger.Error("error deleting todo", "id", id, "err", err)
		return err
	}
	c.tasks = slices.DeleteFunc(c.tasks, func(t service.Task) bool { return t.ID == id })
	return c.Render()
}

// SetFilter changes the filter selection and redraws. No call is made.
func (c *Controller) SetFilter(f filter.Filter) error {
	if !f.Valid() {
		return errors.New("unknown filter: " + string(f))
	}
	c.filter = f
	return c.Render()
}

// Render draws the cache under the current filter.
func (c *Controller) Render() error {
	if err := c.page.Draw(view.Build(c.tasks, c.filter)); err != nil {
		c.logger.Error("error rendering todos", "err", err)
		return err
	}
	return nil
}

func (c *Controller) index(id service.ID) int {
	return slices.IndexFunc(c.tasks, func(t service.Task) bool { return t.ID == id })
}
