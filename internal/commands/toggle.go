package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"todoview/internal/controller"
	"todoview/internal/exitcode"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct {
	page pageFlags
}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Flip a task between active and completed" }
func (c *ToggleCmd) Usage() string      { return "todoview toggle [--filter f] [--format text|html] <id>" }
func (c *ToggleCmd) NeedsService() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *pflag.FlagSet) {
	c.page.register(fs)
}

func (c *ToggleCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, err := taskID(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	s, code := openSession(ctx, env, env.Dialogs, withDefaults(c.page))
	if s == nil {
		return code
	}
	defer s.close()

	ev := controller.Event{Element: controller.Checkbox, Kind: controller.Change, TaskID: id}
	if code := s.dispatch(ctx, ev); code != exitcode.Success {
		return code
	}
	return s.print()
}
