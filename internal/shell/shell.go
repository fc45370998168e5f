// Package shell runs an interactive page session in the terminal: the list
// is loaded once, then every line typed becomes a page event.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ergochat/readline"

	"todoview/internal/controller"
	"todoview/internal/view"
)

// Prompt is the shell's input prompt.
const Prompt = "todo> "

// Banner is printed when a session starts.
const Banner = "todoview shell; type \"help\" for commands\n"

var completer = readline.NewPrefixCompleter(
	readline.PcItem("add"),
	readline.PcItem("toggle"),
	readline.PcItem("edit"),
	readline.PcItem("rm"),
	readline.PcItem("filter",
		readline.PcItem("all"),
		readline.PcItem("active"),
		readline.PcItem("completed"),
	),
	readline.PcItem("ls"),
	readline.PcItem("reload"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Shell is a readline-driven page session.
type Shell struct {
	rl      *readline.Instance
	out     io.Writer
	dialogs *lineDialogs
}

// Open creates the readline instance. historyFile may be empty.
func Open(historyFile string, out io.Writer) (*Shell, error) {
	s, err := open(newConfig(historyFile), out)
	if err != nil {
		return nil, err
	}
	s.rl.CaptureExitSignal()
	return s, nil
}

// newConfig leaves history saving to Run so dialog answers stay out of it.
func newConfig(historyFile string) *readline.Config {
	return &readline.Config{
		Prompt:          Prompt,
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		DisableAutoSaveHistory: true,
		HistorySearchFold:      true,
		FuncFilterInputRune:    filterInput,
	}
}

func open(cfg *readline.Config, out io.Writer) (*Shell, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &Shell{
		rl:      rl,
		out:     out,
		dialogs: &lineDialogs{rl: rl, out: out, prompt: cfg.Prompt},
	}, nil
}

// Close releases the terminal.
func (s *Shell) Close() error {
	if s.rl != nil {
		_ = s.rl.Close()
		s.rl = nil
	}
	return nil
}

// Dialogs returns the readline-backed dialogs for the controller.
func (s *Shell) Dialogs() controller.Dialogs {
	return s.dialogs
}

// Run reads lines until exit, EOF or ctx is done. The controller must be
// attached and loaded.
func (s *Shell) Run(ctx context.Context, ctrl *controller.Controller, page view.Page) error {
	for ctx.Err() == nil {
		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			_ = s.rl.SaveToHistory(line)
		}

		act, err := ParseLine(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if quit := Exec(ctx, ctrl, page, act, s.out); quit {
			return nil
		}
	}
	return nil
}

// Exec performs act and reports whether the session should end.
// Operation failures were already logged by the controller and leave the
// page unchanged, so they are not reported again here.
func Exec(ctx context.Context, ctrl *controller.Controller, page view.Page, act Action, out io.Writer) bool {
	switch act.Kind {
	case Dispatch:
		if act.HasInput {
			page.SetInput(act.Input)
		}
		err := ctrl.Dispatch(ctx, act.Event)
		if errors.Is(err, controller.ErrNoSuchTask) {
			fmt.Fprintf(out, "no task with id %s\n", act.Event.TaskID)
		}
	case Redraw:
		_ = ctrl.Render()
	case Reload:
		_ = ctrl.Load(ctx)
	case Help:
		fmt.Fprint(out, helpText)
	case Quit:
		return true
	}
	return false
}
