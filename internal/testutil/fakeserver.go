package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// ServerTask is a row held by FakeServer, encoded the way the reference
// server encodes SQLite rows (integer id, 0/1 completed).
type ServerTask struct {
	ID        int    `json:"id"`
	Task      string `json:"task"`
	Completed int    `json:"completed"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FakeServer serves the /api/todos endpoint from memory.
type FakeServer struct {
	*httptest.Server

	mu     sync.Mutex
	tasks  []ServerTask
	nextID int

	// FailStatus, when non-zero, is returned for every request.
	FailStatus int

	// Requests records "METHOD PATH" for every request.
	Requests []string

	// Bodies records the decoded JSON body of every request that had one.
	Bodies []map[string]any

	// Auth records the Authorization header of the last request.
	Auth string
}

// NewFakeServer starts a server that is closed when t finishes.
func NewFakeServer(t testing.TB) *FakeServer {
	t.Helper()
	fs := &FakeServer{nextID: 1}
	fs.Server = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.Close)
	return fs
}

// Seed appends a row and returns its id.
func (fs *FakeServer) Seed(task string, completed bool) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	row := ServerTask{ID: fs.nextID, Task: task}
	if completed {
		row.Completed = 1
	}
	fs.nextID++
	fs.tasks = append(fs.tasks, row)
	return row.ID
}

// Rows returns a copy of the stored rows.
func (fs *FakeServer) Rows() []ServerTask {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]ServerTask(nil), fs.tasks...)
}

func (fs *FakeServer) handle(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.Requests = append(fs.Requests, r.Method+" "+r.URL.Path)
	fs.Auth = r.Header.Get("Authorization")

	var body map[string]any
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			fs.Bodies = append(fs.Bodies, body)
		}
	}

	if fs.FailStatus != 0 {
		writeJSON(w, fs.FailStatus, map[string]string{"error": http.StatusText(fs.FailStatus)})
		return
	}

	const base = "/api/todos"
	switch {
	case r.URL.Path == base && r.Method == http.MethodGet:
		rows := append([]ServerTask{}, fs.tasks...)
		writeJSON(w, http.StatusOK, rows)

	case r.URL.Path == base && r.Method == http.MethodPost:
		text, _ := body["task"].(string)
		text = strings.TrimSpace(text)
		if text == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Task cannot be empty"})
			return
		}
		row := ServerTask{ID: fs.nextID, Task: text}
		fs.nextID++
		fs.tasks = append([]ServerTask{row}, fs.tasks...)
		writeJSON(w, http.StatusCreated, row)

	case strings.HasPrefix(r.URL.Path, base+"/"):
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, base+"/"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		fs.handleItem(w, r, id, body)

	default:
		http.NotFound(w, r)
	}
}

func (fs *FakeServer) handleItem(w http.ResponseWriter, r *http.Request, id int, body map[string]any) {
	idx := -1
	for i, row := range fs.tasks {
		if row.ID == id {
			idx = i
			break
		}
	}

	switch r.Method {
	case http.MethodPut:
		if idx < 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Todo not found"})
			return
		}
		if v, ok := body["completed"].(bool); ok {
			fs.tasks[idx].Completed = 0
			if v {
				fs.tasks[idx].Completed = 1
			}
		}
		if v, ok := body["task"].(string); ok {
			fs.tasks[idx].Task = strings.TrimSpace(v)
		}
		writeJSON(w, http.StatusOK, fs.tasks[idx])

	case http.MethodDelete:
		if idx >= 0 {
			fs.tasks = append(fs.tasks[:idx], fs.tasks[idx+1:]...)
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
