package commands

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"todoview/internal/controller"
	"todoview/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	page pageFlags
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "todoview add [--filter f] [--format text|html] <text...>" }
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {
	c.page.register(fs)
}

// Run types the joined args into the input field and presses Enter. Blank
// text raises the empty-task alert without contacting the server.
func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	s, code := openSession(ctx, env, env.Dialogs, withDefaults(c.page))
	if s == nil {
		return code
	}
	defer s.close()

	s.canvas.SetInput(strings.Join(args, " "))
	ev := controller.Event{Element: controller.TaskInput, Kind: controller.KeyPress, Key: controller.KeyEnter}
	if code := s.dispatch(ctx, ev); code != exitcode.Success {
		return code
	}
	return s.print()
}
