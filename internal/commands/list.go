package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"todoview/internal/exitcode"
	"todoview/internal/filter"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todoview` (no args) and `todoview list`.
type ListCmd struct {
	page pageFlags
}

// SetFilter sets the filter flag (for testing).
func (c *ListCmd) SetFilter(f string) { c.page.filter = f }

// SetFormat sets the format flag (for testing).
func (c *ListCmd) SetFormat(f string) { c.page.format = f }

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "Show tasks" }
func (c *ListCmd) Usage() string      { return "todoview list [--filter f] [--format text|html]" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *pflag.FlagSet) {
	c.page.register(fs)
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	s, code := openSession(ctx, env, env.Dialogs, withDefaults(c.page))
	if s == nil {
		return code
	}
	defer s.close()
	return s.print()
}

// withDefaults fills flags left empty by tests that skip RegisterFlags.
func withDefaults(p pageFlags) pageFlags {
	if p.filter == "" {
		p.filter = string(filter.Default)
	}
	if p.format == "" {
		p.format = FormatText
	}
	return p
}
