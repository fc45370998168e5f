package controller_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoview/internal/controller"
	"todoview/internal/filter"
	"todoview/internal/service"
	"todoview/internal/testutil"
	"todoview/internal/view"
)

type fixture struct {
	svc     *testutil.FakeService
	canvas  *view.Canvas
	dialogs *testutil.FakeDialogs
	ctrl    *controller.Controller
}

func newFixture(t *testing.T, seed ...service.Task) *fixture {
	t.Helper()
	f := &fixture{
		svc:     testutil.NewFakeService(),
		canvas:  view.NewCanvas(),
		dialogs: &testutil.FakeDialogs{},
	}
	for _, task := range seed {
		f.svc.AddTask(task.Text, task.Completed)
	}
	f.ctrl = controller.New(f.svc, f.canvas, f.dialogs)
	require.NoError(t, f.ctrl.Attach())
	t.Cleanup(f.ctrl.Detach)
	require.NoError(t, f.ctrl.Load(context.Background()))
	f.svc.ResetCalls()
	return f
}

func texts(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

func rowTexts(m view.Model) []string {
	out := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		out[i] = r.Text
	}
	return out
}

func TestLoad_ReplacesCacheAndRenders(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"}, service.Task{Text: "b", Completed: true})

	assert.Equal(t, []string{"a", "b"}, texts(f.ctrl.Tasks()))
	assert.Equal(t, 1, f.canvas.Draws())
	assert.Equal(t, []string{"a", "b"}, rowTexts(f.canvas.Model()))
}

func TestLoad_FailureLeavesCacheEmpty(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", false)
	svc.ListTasksErr = errors.New("connection refused")
	canvas := view.NewCanvas()
	var logs bytes.Buffer
	ctrl := controller.New(svc, canvas, &testutil.FakeDialogs{}, controller.WithLogger(testLogger(&logs)))

	err := ctrl.Load(context.Background())

	require.Error(t, err)
	assert.Empty(t, ctrl.Tasks())
	assert.Equal(t, 0, canvas.Draws())
	assert.Contains(t, logs.String(), "error loading todos")
	assert.Equal(t, []string{"ListTasks"}, svc.Calls(), "no retry")
}

func TestAdd_BlankInputAlertsWithoutCall(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		f := newFixture(t, service.Task{Text: "a"})
		f.canvas.SetInput(input)

		err := f.ctrl.Add(context.Background())

		assert.ErrorIs(t, err, controller.ErrEmptyTask)
		assert.Equal(t, []string{controller.MsgEmptyTask}, f.dialogs.Alerts)
		assert.Empty(t, f.svc.Calls())
		assert.Equal(t, []string{"a"}, texts(f.ctrl.Tasks()))
	}
}

func TestAdd_PrependsCreatedRecord(t *testing.T) {
	f := newFixture(t, service.Task{Text: "B"}, service.Task{Text: "C"})
	f.canvas.SetInput("  A  ")

	require.NoError(t, f.ctrl.Add(context.Background()))

	tasks := f.ctrl.Tasks()
	assert.Equal(t, []string{"A", "B", "C"}, texts(tasks))
	assert.Equal(t, service.ID("3"), tasks[0].ID, "server-assigned id is kept")
	assert.Equal(t, "", f.canvas.Input(), "input is cleared")
	assert.Equal(t, []string{"A", "B", "C"}, rowTexts(f.canvas.Model()))
	assert.Equal(t, []string{"CreateTask"}, f.svc.Calls())
}

func TestAdd_FailureKeepsInputAndCache(t *testing.T) {
	f := newFixture(t, service.Task{Text: "B"})
	f.svc.CreateTaskErr = service.ErrRejected
	f.canvas.SetInput("A")
	draws := f.canvas.Draws()

	err := f.ctrl.Add(context.Background())

	assert.ErrorIs(t, err, service.ErrRejected)
	assert.Equal(t, "A", f.canvas.Input())
	assert.Equal(t, []string{"B"}, texts(f.ctrl.Tasks()))
	assert.Equal(t, draws, f.canvas.Draws())
	assert.Empty(t, f.dialogs.Alerts, "failures are not shown to the user")
}

func TestToggle_FlipsAfterSuccess(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"})

	require.NoError(t, f.ctrl.Toggle(context.Background(), "1"))
	assert.True(t, f.ctrl.Tasks()[0].Completed)
	assert.True(t, f.svc.Snapshot()[0].Completed)

	require.NoError(t, f.ctrl.Toggle(context.Background(), "1"))
	assert.False(t, f.ctrl.Tasks()[0].Completed)
	assert.Equal(t, []string{"UpdateTask", "UpdateTask"}, f.svc.Calls())
}

func TestToggle_FailureLeavesFlag(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a", Completed: false})
	f.svc.UpdateTaskErr = service.ErrRejected

	err := f.ctrl.Toggle(context.Background(), "1")

	assert.ErrorIs(t, err, service.ErrRejected)
	assert.False(t, f.ctrl.Tasks()[0].Completed)
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"})

	err := f.ctrl.Toggle(context.Background(), "99")

	assert.ErrorIs(t, err, controller.ErrNoSuchTask)
	assert.Empty(t, f.svc.Calls())
}

func TestEdit_PromptSeededAndTrimmed(t *testing.T) {
	f := newFixture(t, service.Task{Text: "buy milk"})
	f.dialogs.PromptAnswer = "  buy oat milk "
	f.dialogs.PromptOK = true

	require.NoError(t, f.ctrl.Edit(context.Background(), "1"))

	require.Len(t, f.dialogs.Prompts, 1)
	assert.Equal(t, testutil.Prompted{Msg: controller.MsgEditTask, Seed: "buy milk"}, f.dialogs.Prompts[0])
	assert.Equal(t, "buy oat milk", f.ctrl.Tasks()[0].Text)
	assert.Equal(t, "buy oat milk", f.svc.Snapshot()[0].Text)
}

func TestEdit_CancelOrBlankAborts(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		ok     bool
	}{
		{"cancelled", "new", false},
		{"blank", "   ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, service.Task{Text: "buy milk"})
			f.dialogs.PromptAnswer = tc.answer
			f.dialogs.PromptOK = tc.ok

			require.NoError(t, f.ctrl.Edit(context.Background(), "1"))
			assert.Empty(t, f.svc.Calls())
			assert.Equal(t, "buy milk", f.ctrl.Tasks()[0].Text)
		})
	}
}

func TestEdit_FailureLeavesText(t *testing.T) {
	f := newFixture(t, service.Task{Text: "buy milk"})
	f.dialogs.PromptAnswer = "other"
	f.dialogs.PromptOK = true
	f.svc.UpdateTaskErr = errors.New("boom")

	assert.Error(t, f.ctrl.Edit(context.Background(), "1"))
	assert.Equal(t, "buy milk", f.ctrl.Tasks()[0].Text)
}

func TestEdit_UnknownIDSkipsPrompt(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"})

	assert.ErrorIs(t, f.ctrl.Edit(context.Background(), "7"), controller.ErrNoSuchTask)
	assert.Empty(t, f.dialogs.Prompts)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"}, service.Task{Text: "b"})
	f.dialogs.ConfirmAnswer = false

	require.NoError(t, f.ctrl.Delete(context.Background(), "1"))

	assert.Equal(t, []string{controller.MsgConfirmDelete}, f.dialogs.Confirms)
	assert.Empty(t, f.svc.Calls())
	assert.Equal(t, []string{"a", "b"}, texts(f.ctrl.Tasks()))
}

func TestDelete_RemovesAfterSuccess(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"}, service.Task{Text: "b"})
	f.dialogs.ConfirmAnswer = true

	require.NoError(t, f.ctrl.Delete(context.Background(), "1"))

	assert.Equal(t, []string{"b"}, texts(f.ctrl.Tasks()))
	assert.Equal(t, []string{"DeleteTask"}, f.svc.Calls())
}

func TestDelete_FailureKeepsRecord(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"})
	f.dialogs.ConfirmAnswer = true
	f.svc.DeleteTaskErr = service.ErrNotFound

	assert.ErrorIs(t, f.ctrl.Delete(context.Background(), "1"), service.ErrNotFound)
	assert.Equal(t, []string{"a"}, texts(f.ctrl.Tasks()))
}

func TestSetFilter_NoNetworkOneActiveButton(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"}, service.Task{Text: "b", Completed: true})

	for _, flt := range filter.Values() {
		require.NoError(t, f.ctrl.SetFilter(flt))
		assert.Equal(t, flt, f.ctrl.Filter())

		active := 0
		for _, b := range f.canvas.Model().Filters {
			if b.Active {
				active++
				assert.Equal(t, flt, b.Filter)
			}
		}
		assert.Equal(t, 1, active)
	}
	assert.Empty(t, f.svc.Calls())
	assert.Len(t, f.ctrl.Tasks(), 2, "filtering never mutates the cache")

	assert.Error(t, f.ctrl.SetFilter("done"))
}

func TestRender_IsPure(t *testing.T) {
	f := newFixture(t, service.Task{Text: "a"}, service.Task{Text: "<b>", Completed: true})

	var first, second bytes.Buffer
	require.NoError(t, f.ctrl.Render())
	require.NoError(t, view.RenderHTML(&first, f.canvas.Model()))
	require.NoError(t, f.ctrl.Render())
	require.NoError(t, view.RenderHTML(&second, f.canvas.Model()))

	assert.Equal(t, first.String(), second.String())
}

// Initial load returns one active task; the completed view is empty until
// the task is toggled.
func TestScenario_FilterThenToggle(t *testing.T) {
	f := newFixture(t, service.Task{Text: "buy milk"})
	ctx := context.Background()

	require.NoError(t, f.ctrl.Dispatch(ctx, controller.Event{Element: controller.FilterButton, Kind: controller.Click, Filter: filter.Completed}))
	assert.True(t, f.canvas.Model().Empty)
	assert.Empty(t, f.canvas.Model().Rows)

	require.NoError(t, f.ctrl.Dispatch(ctx, controller.Event{Element: controller.Checkbox, Kind: controller.Change, TaskID: "1"}))
	m := f.canvas.Model()
	assert.False(t, m.Empty)
	require.Len(t, m.Rows, 1)
	assert.Equal(t, "buy milk", m.Rows[0].Text)
	assert.True(t, m.Rows[0].Completed)
}
