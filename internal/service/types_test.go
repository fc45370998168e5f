package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoview/internal/service"
)

func TestTask_DecodesServerRows(t *testing.T) {
	data := `[
		{"id": 7, "task": "buy milk", "completed": 0, "created_at": "2024-01-01 10:00:00"},
		{"id": "abc", "task": "call mom", "completed": 1},
		{"id": 9, "task": "walk", "completed": true},
		{"id": 10, "task": "read"}
	]`

	var tasks []service.Task
	require.NoError(t, json.Unmarshal([]byte(data), &tasks))

	assert.Equal(t, []service.Task{
		{ID: "7", Text: "buy milk", Completed: false},
		{ID: "abc", Text: "call mom", Completed: true},
		{ID: "9", Text: "walk", Completed: true},
		{ID: "10", Text: "read", Completed: false},
	}, tasks)
}

func TestTask_RejectsBadCompleted(t *testing.T) {
	var task service.Task
	err := json.Unmarshal([]byte(`{"id": 1, "task": "x", "completed": "yes"}`), &task)
	assert.Error(t, err)
}

func TestID_RejectsNull(t *testing.T) {
	var task service.Task
	err := json.Unmarshal([]byte(`{"id": null, "task": "x"}`), &task)
	assert.Error(t, err)
}

func TestID_MarshalKeepsNumbers(t *testing.T) {
	got, err := json.Marshal([]service.ID{"12", "a-b"})
	require.NoError(t, err)
	assert.Equal(t, `[12,"a-b"]`, string(got))
}

func TestUpdate_OmitsUnsetFields(t *testing.T) {
	got, err := json.Marshal(service.SetCompleted(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed": false}`, string(got))

	got, err = json.Marshal(service.SetText("new"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"task": "new"}`, string(got))
}
