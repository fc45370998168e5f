package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"todoview/internal/controller"
	"todoview/internal/exitcode"
	"todoview/internal/output"
	"todoview/internal/shell"
)

// HistoryFile is the shell history filename inside the config directory.
const HistoryFile = "history"

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements the shell command: one long-lived page session.
type ShellCmd struct {
	noHistory bool
}

func (c *ShellCmd) Name() string       { return "shell" }
func (c *ShellCmd) Aliases() []string  { return []string{"sh"} }
func (c *ShellCmd) Synopsis() string   { return "Interactive session" }
func (c *ShellCmd) Usage() string      { return "todoview shell [--no-history]" }
func (c *ShellCmd) NeedsService() bool { return true }

func (c *ShellCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.noHistory, "no-history", false, "")
}

func (c *ShellCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	history := ""
	if !c.noHistory && env.Config.EnsureDir() == nil {
		history = filepath.Join(env.Config.Dir, HistoryFile)
	}

	sh, err := shell.Open(history, env.Out)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}
	defer sh.Close()

	page := output.NewTextPage(env.Out, output.NewRenderer(env.Out))
	ctrl := controller.New(env.Service, page, sh.Dialogs(), controller.WithLogger(env.Logger))
	if err := ctrl.Attach(); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}
	defer ctrl.Detach()

	fmt.Fprint(env.Out, shell.Banner)
	// A failed load leaves the list empty; the session stays usable.
	_ = ctrl.Load(ctx)

	if err := sh.Run(ctx, ctrl, page); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
