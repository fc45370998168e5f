package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"todoview/internal/controller"
	"todoview/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
// With text after the id the prompt is answered with it; otherwise the
// user is asked for the replacement.
type EditCmd struct {
	page pageFlags
}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return nil }
func (c *EditCmd) Synopsis() string   { return "Replace a task's text" }
func (c *EditCmd) Usage() string      { return "todoview edit [flags] <id> [text...]" }
func (c *EditCmd) NeedsService() bool { return true }

func (c *EditCmd) RegisterFlags(fs *pflag.FlagSet) {
	c.page.register(fs)
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, err := taskID(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	dialogs := env.Dialogs
	if len(args) > 1 {
		dialogs = presetDialogs{Dialogs: env.Dialogs, text: strings.Join(args[1:], " "), hasText: true}
	}

	s, code := openSession(ctx, env, dialogs, withDefaults(c.page))
	if s == nil {
		return code
	}
	defer s.close()

	ev := controller.Event{Element: controller.EditButton, Kind: controller.Click, TaskID: id}
	if code := s.dispatch(ctx, ev); code != exitcode.Success {
		return code
	}
	return s.print()
}
