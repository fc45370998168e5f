package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque, server-assigned task identifier.
// On the wire it may be a JSON number or a JSON string.
type ID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("task id is null")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid task id: %s", data)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes integer-looking ids as numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Task represents a single todo record.
type Task struct {
	ID        ID     `json:"id"`
	Text      string `json:"task"`
	Completed bool   `json:"completed"`
}

// UnmarshalJSON decodes a task record. completed may be a boolean or the
// integers 0 and 1; unknown fields such as created_at are ignored.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        ID              `json:"id"`
		Text      string          `json:"task"`
		Completed json.RawMessage `json:"completed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	completed, err := parseFlag(raw.Completed)
	if err != nil {
		return err
	}
	*t = Task{ID: raw.ID, Text: raw.Text, Completed: completed}
	return nil
}

func parseFlag(data json.RawMessage) (bool, error) {
	switch s := string(bytes.TrimSpace(data)); s {
	case "", "null", "false", "0":
		return false, nil
	case "true", "1":
		return true, nil
	default:
		return false, fmt.Errorf("invalid completed value: %s", s)
	}
}

// Update is a partial update for a task. Nil fields are omitted from the request.
type Update struct {
	Completed *bool   `json:"completed,omitempty"`
	Text      *string `json:"task,omitempty"`
}

// SetCompleted returns an Update that only changes the completion flag.
func SetCompleted(v bool) Update {
	return Update{Completed: &v}
}

// SetText returns an Update that only changes the task text.
func SetText(s string) Update {
	return Update{Text: &s}
}
