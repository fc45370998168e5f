// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"todoview/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
// Tasks are kept newest first, like the real server's list order.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int
	calls  []string

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task at the end of the list and returns its id.
func (f *FakeService) AddTask(text string, completed bool) service.ID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := service.ID(strconv.Itoa(f.nextID))
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Text: text, Completed: completed})
	return id
}

// Snapshot returns a copy of the server-side tasks.
func (f *FakeService) Snapshot() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.tasks)
}

// Calls returns the names of the service methods invoked so far.
func (f *FakeService) Calls() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.calls)
}

// ResetCalls forgets recorded calls.
func (f *FakeService) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *FakeService) record(name string) {
	f.calls = append(f.calls, name)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return slices.Clone(f.tasks), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, text string) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	task := service.Task{ID: service.ID(strconv.Itoa(f.nextID)), Text: text}
	f.nextID++
	f.tasks = slices.Insert(f.tasks, 0, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id service.ID, u service.Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTask")
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	i := slices.IndexFunc(f.tasks, func(t service.Task) bool { return t.ID == id })
	if i < 0 {
		return service.ErrNotFound
	}
	if u.Completed != nil {
		f.tasks[i].Completed = *u.Completed
	}
	if u.Text != nil {
		f.tasks[i].Text = *u.Text
	}
	return nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id service.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.tasks = slices.DeleteFunc(f.tasks, func(t service.Task) bool { return t.ID == id })
	return nil
}
