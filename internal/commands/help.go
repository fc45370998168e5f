package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"todoview/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoview help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	WriteHelp(env.Out, DefaultRegistry)
	return exitcode.Success
}

// WriteHelp prints the usage of every command in r.
func WriteHelp(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %-56s %s\n", "todoview", "Show tasks (same as list)")
	for _, cmd := range r.All() {
		fmt.Fprintf(w, "  %-56s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(w, commonFlags)
}

const commonFlags = `
Common flags:
  --config <dir>   Override config directory
  --url <url>      Todo server base URL (env TODOVIEW_URL)
  -q, --quiet      Suppress informational output
  --debug          Print debug logs to stderr
`
