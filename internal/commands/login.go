package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/oauth2"

	"todoview/internal/exitcode"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd stores a bearer token that the REST client sends with every request.
type LoginCmd struct {
	token string
}

// SetToken sets the token flag (for testing).
func (c *LoginCmd) SetToken(token string) { c.token = token }

func (c *LoginCmd) Name() string       { return "login" }
func (c *LoginCmd) Aliases() []string  { return nil }
func (c *LoginCmd) Synopsis() string   { return "Store an access token for the todo server" }
func (c *LoginCmd) Usage() string      { return "todoview login [--token <token>]" }
func (c *LoginCmd) NeedsService() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.token, "token", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string) int {
	token := strings.TrimSpace(c.token)
	if token == "" {
		answer, ok := env.Dialogs.Prompt("Access token:", "")
		if !ok {
			fmt.Fprintln(env.ErrOut, "error: login cancelled")
			return exitcode.UserError
		}
		token = strings.TrimSpace(answer)
	}
	if token == "" {
		fmt.Fprintln(env.ErrOut, "error: token required")
		return exitcode.UserError
	}

	if err := env.Config.SaveToken(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}); err != nil {
		fmt.Fprintf(env.ErrOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "ok")
	}
	return exitcode.Success
}
