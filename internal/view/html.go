package view

import (
	"html/template"
	"io"
)

// Element ids and classes shared with the page markup.
const (
	ListID       = "todoList"
	EmptyStateID = "emptyState"
	EmptyText    = "No tasks here"
)

var pageTmpl = template.Must(template.New("list").Parse(`<div class="filters">
{{- range .Filters}}
  <button class="filter-btn{{if .Active}} active{{end}}" data-filter="{{.Filter}}">{{.Label}}</button>
{{- end}}
</div>
<ul id="` + ListID + `">
{{- range .Rows}}
  <li class="todo-item{{if .Completed}} completed{{end}}" data-id="{{.ID}}">
    <input type="checkbox" class="todo-checkbox" data-action="toggle" data-id="{{.ID}}"{{if .Completed}} checked{{end}}/>
    <span class="todo-text">{{.Text}}</span>
    <button class="edit-btn" data-action="edit" data-id="{{.ID}}">Edit</button>
    <button class="delete-btn" data-action="delete" data-id="{{.ID}}">Delete</button>
  </li>
{{- end}}
</ul>
<div id="` + EmptyStateID + `" class="empty-state{{if .Empty}} show{{end}}">` + EmptyText + `</div>
`))

// RenderHTML writes the list view fragment for m. Task text is escaped by
// html/template, so markup in a task renders as literal text.
func RenderHTML(w io.Writer, m Model) error {
	return pageTmpl.Execute(w, m)
}
