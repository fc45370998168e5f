// Package view projects the task cache and filter selection into a list
// view model and renders it as HTML.
package view

import (
	"todoview/internal/filter"
	"todoview/internal/service"
)

// Row is one rendered task with its toggle, edit and delete affordances.
type Row struct {
	ID        service.ID
	Text      string
	Completed bool
}

// Button is one filter selector.
type Button struct {
	Filter filter.Filter
	Label  string
	Active bool
}

// Model is the complete state of the list view.
type Model struct {
	Filter  filter.Filter
	Filters []Button
	Rows    []Row
	// Empty means the empty-state indicator is shown and the list is cleared.
	Empty bool
}

// Build derives the view model for tasks under f. Exactly one filter
// button is active. tasks is not modified.
func Build(tasks []service.Task, f filter.Filter) Model {
	if !f.Valid() {
		f = filter.Default
	}
	m := Model{Filter: f}
	for _, v := range filter.Values() {
		m.Filters = append(m.Filters, Button{Filter: v, Label: v.Label(), Active: v == f})
	}
	for _, t := range filter.Apply(tasks, f) {
		m.Rows = append(m.Rows, Row{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	m.Empty = len(m.Rows) == 0
	return m
}

// Page is the surface the controller draws on: the new-task input field
// plus the list, empty-state and filter elements painted from a Model.
type Page interface {
	// Input returns the current text of the new-task field.
	Input() string

	// SetInput replaces the text of the new-task field.
	SetInput(s string)

	// Draw paints m.
	Draw(m Model) error
}

// Canvas is an in-memory Page. It keeps the last drawn model.
type Canvas struct {
	input string
	model Model
	draws int
}

// NewCanvas returns a Canvas showing an empty list under the default filter.
func NewCanvas() *Canvas {
	return &Canvas{model: Build(nil, filter.Default)}
}

func (c *Canvas) Input() string     { return c.input }
func (c *Canvas) SetInput(s string) { c.input = s }

// Draw implements Page.
func (c *Canvas) Draw(m Model) error {
	c.model = m
	c.draws++
	return nil
}

// Model returns the last drawn model.
func (c *Canvas) Model() Model { return c.model }

// Draws returns how many times the canvas was painted.
func (c *Canvas) Draws() int { return c.draws }
