// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"todoview/internal/config"
	"todoview/internal/controller"
	"todoview/internal/service"
)

// Env is everything a command runs with.
type Env struct {
	// Config is always provided (config dir, base URL, quiet/debug).
	Config *config.Config

	// Service is nil if NeedsService() returns false.
	Service service.Service

	// Logger is the developer console.
	Logger *log.Logger

	// Dialogs answers confirmation and input prompts.
	Dialogs controller.Dialogs

	Out    io.Writer
	ErrOut io.Writer
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsService returns true if the command talks to the todo server.
	// Commands like help, version, login, logout return false.
	NeedsService() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *pflag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing. Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}
