// Package output renders the list view for terminals.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"todoview/internal/view"
)

const (
	// CheckedBox and UncheckedBox render the completion checkbox.
	CheckedBox   = "[x]"
	UncheckedBox = "[ ]"

	// EmptyText is shown instead of the list when nothing matches.
	EmptyText = "no tasks here"
)

// Renderer formats view models as styled text.
type Renderer struct {
	r         *lipgloss.Renderer
	active    lipgloss.Style
	inactive  lipgloss.Style
	completed lipgloss.Style
	id        lipgloss.Style
}

// NewRenderer creates a renderer whose color profile is detected from w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		r:         r,
		active:    r.NewStyle().Bold(true).Underline(true),
		inactive:  r.NewStyle().Faint(true),
		completed: r.NewStyle().Strikethrough(true).Faint(true),
		id:        r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// SetColorProfile forces a color profile (termenv.Ascii disables styling).
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.r.SetColorProfile(p)
}

// Render writes the filter bar followed by the rows or the empty state.
// Format per row: "{BOX} {ID:>4}  {TEXT}\n".
func (r *Renderer) Render(w io.Writer, m view.Model) {
	labels := make([]string, 0, len(m.Filters))
	for _, b := range m.Filters {
		if b.Active {
			labels = append(labels, r.active.Render("["+b.Label+"]"))
		} else {
			labels = append(labels, r.inactive.Render(" "+b.Label+" "))
		}
	}
	fmt.Fprintln(w, strings.Join(labels, " "))

	if m.Empty {
		fmt.Fprintln(w, EmptyText)
		return
	}
	for _, row := range m.Rows {
		box := UncheckedBox
		text := normalizeText(row.Text)
		if row.Completed {
			box = CheckedBox
			text = r.completed.Render(text)
		}
		fmt.Fprintf(w, "%s %s  %s\n", box, r.id.Render(fmt.Sprintf("%4s", sanitize(row.ID.String()))), text)
	}
}

// normalizeText makes task text safe for a terminal.
// - ANSI escape sequences are stripped
// - Newlines are replaced with spaces
// - Empty or whitespace-only text becomes "(untitled)"
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = sanitize(text)
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}

// sanitize strips escape sequences and drops control characters.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// TextPage is a view.Page that repaints the terminal list on every draw.
type TextPage struct {
	w     io.Writer
	r     *Renderer
	input string
}

// NewTextPage creates a page drawing to w.
func NewTextPage(w io.Writer, r *Renderer) *TextPage {
	return &TextPage{w: w, r: r}
}

func (p *TextPage) Input() string     { return p.input }
func (p *TextPage) SetInput(s string) { p.input = s }

// Draw implements view.Page.
func (p *TextPage) Draw(m view.Model) error {
	p.r.Render(p.w, m)
	return nil
}
