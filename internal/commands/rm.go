package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"todoview/internal/controller"
	"todoview/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	page pageFlags
	yes  bool
}

// SetYes skips the confirmation (for testing).
func (c *RmCmd) SetYes(yes bool) { c.yes = yes }

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "todoview rm [--yes] [--filter f] [--format text|html] <id>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *pflag.FlagSet) {
	c.page.register(fs)
	fs.BoolVarP(&c.yes, "yes", "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, err := taskID(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	dialogs := env.Dialogs
	if c.yes {
		dialogs = presetDialogs{Dialogs: env.Dialogs, confirm: true}
	}

	s, code := openSession(ctx, env, dialogs, withDefaults(c.page))
	if s == nil {
		return code
	}
	defer s.close()

	ev := controller.Event{Element: controller.DeleteButton, Kind: controller.Click, TaskID: id}
	if code := s.dispatch(ctx, ev); code != exitcode.Success {
		return code
	}
	return s.print()
}
