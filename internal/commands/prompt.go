package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"todoview/internal/controller"
)

// promptDialogs answers dialogs from a line-oriented reader. Questions go to out.
type promptDialogs struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptDialogs returns Dialogs that read answers from in, one per line.
func NewPromptDialogs(in io.Reader, out io.Writer) controller.Dialogs {
	return &promptDialogs{in: bufio.NewReader(in), out: out}
}

func (d *promptDialogs) Alert(msg string) {
	fmt.Fprintln(d.out, msg)
}

func (d *promptDialogs) Confirm(msg string) bool {
	fmt.Fprintf(d.out, "%s [y/N] ", msg)
	line, ok := d.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (d *promptDialogs) Prompt(msg, seed string) (string, bool) {
	fmt.Fprintf(d.out, "%s (%s) ", msg, seed)
	return d.readLine()
}

// readLine returns false on EOF with nothing read.
func (d *promptDialogs) readLine() (string, bool) {
	line, err := d.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// presetDialogs answers Prompt and Confirm without asking, deferring
// alerts to the wrapped dialogs.
type presetDialogs struct {
	controller.Dialogs
	text    string
	hasText bool
	confirm bool
}

func (d presetDialogs) Confirm(msg string) bool {
	if d.confirm {
		return true
	}
	return d.Dialogs.Confirm(msg)
}

func (d presetDialogs) Prompt(msg, seed string) (string, bool) {
	if d.hasText {
		return d.text, true
	}
	return d.Dialogs.Prompt(msg, seed)
}
