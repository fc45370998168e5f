package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/ergochat/readline"
)

// lineDialogs implements controller.Dialogs on top of the shell's readline
// instance. Each dialog temporarily swaps the prompt.
type lineDialogs struct {
	rl     *readline.Instance
	out    io.Writer
	prompt string
}

// Alert implements controller.Dialogs.
func (d *lineDialogs) Alert(msg string) {
	fmt.Fprintf(d.out, "! %s\n", msg)
}

// Confirm implements controller.Dialogs. Only y and yes are accepted.
func (d *lineDialogs) Confirm(msg string) bool {
	answer, ok := d.ask(msg+" [y/N] ", "")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Prompt implements controller.Dialogs. The line starts out holding seed
// for editing; an interrupt cancels.
func (d *lineDialogs) Prompt(msg, seed string) (string, bool) {
	return d.ask(msg+" ", seed)
}

func (d *lineDialogs) ask(prompt, seed string) (string, bool) {
	d.rl.SetPrompt(prompt)
	defer d.rl.SetPrompt(d.prompt)

	line, err := d.rl.ReadLineWithDefault(seed)
	if err != nil {
		return "", false
	}
	return line, true
}
