// Package service defines the backend-agnostic interface for todo operations.
package service

import (
	"context"
	"errors"
)

// Service defines the interface for todo backend operations.
// All REST calls go through this interface; the controller never
// talks HTTP directly.
type Service interface {
	// ListTasks returns all tasks in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the record with its server-assigned id.
	CreateTask(ctx context.Context, text string) (Task, error)

	// UpdateTask applies a partial update. The response body is unused.
	UpdateTask(ctx context.Context, id ID, u Update) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id ID) error
}

var (
	// ErrNotFound is returned when the server answers 404.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the server answers 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRejected is returned for any other non-success status.
	ErrRejected = errors.New("request rejected")
)
