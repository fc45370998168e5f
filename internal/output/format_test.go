package output

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoview/internal/filter"
	"todoview/internal/service"
	"todoview/internal/view"
)

func plainRenderer(w *bytes.Buffer) *Renderer {
	r := NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestRender_Rows(t *testing.T) {
	var buf bytes.Buffer
	tasks := []service.Task{
		{ID: "1", Text: "buy milk"},
		{ID: "12", Text: "call mom", Completed: true},
	}

	plainRenderer(&buf).Render(&buf, view.Build(tasks, filter.All))

	out := buf.String()
	assert.Contains(t, out, "[All]")
	assert.Contains(t, out, "[ ]    1  buy milk\n")
	assert.Contains(t, out, "[x]   12  call mom\n")
	assert.NotContains(t, out, EmptyText)
}

func TestRender_EmptyState(t *testing.T) {
	var buf bytes.Buffer

	plainRenderer(&buf).Render(&buf, view.Build(nil, filter.Completed))

	assert.Contains(t, buf.String(), "[Completed]")
	assert.Contains(t, buf.String(), EmptyText+"\n")
}

func TestRender_StripsEscapesFromID(t *testing.T) {
	var buf bytes.Buffer
	tasks := []service.Task{{ID: "\x1b[2J7", Text: "x"}}

	plainRenderer(&buf).Render(&buf, view.Build(tasks, filter.All))

	assert.NotContains(t, buf.String(), "\x1b")
	assert.Contains(t, buf.String(), "[ ]    7  x\n")
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"two\nlines", "two lines"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"bell\a", "bell"},
		{"   ", "(untitled)"},
		{"", "(untitled)"},
	}
	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextPage_DrawsEveryTime(t *testing.T) {
	var buf bytes.Buffer
	page := NewTextPage(&buf, plainRenderer(&buf))
	m := view.Build([]service.Task{{ID: "1", Text: "a"}}, filter.All)

	require.NoError(t, page.Draw(m))
	first := buf.String()
	require.NoError(t, page.Draw(m))

	assert.Equal(t, first+first, buf.String())

	page.SetInput("draft")
	assert.Equal(t, "draft", page.Input())
}
