package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"todoview/internal/commands"
	"todoview/internal/config"
	"todoview/internal/controller"
	"todoview/internal/exitcode"
	"todoview/internal/logging"
	"todoview/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	stdin    io.Reader
	dialogs  controller.Dialogs
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithStdin sets where prompt answers are read from. Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(d *Dispatcher) {
		d.stdin = r
	}
}

// WithDialogs replaces the stdin-backed dialogs entirely.
func WithDialogs(dialogs controller.Dialogs) Option {
	return func(d *Dispatcher) {
		d.dialogs = dialogs
	}
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		factory:  factory,
		stdin:    os.Stdin,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list under the default filter
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var (
		configDir string
		baseURL   string
		quiet     bool
		debug     bool
	)
	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&baseURL, "url", "", "")
	fs.BoolVarP(&quiet, "quiet", "q", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		// pflag already words these as "unknown flag: --x",
		// "flag needs an argument: --x" or "invalid argument ..."
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.AuthError
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := logging.New(errOut, logging.Options{
		Level:  cfg.LogLevel,
		Debug:  cfg.Debug,
		Prefix: config.AppName,
	})

	dialogs := d.dialogs
	if dialogs == nil {
		dialogs = commands.NewPromptDialogs(d.stdin, errOut)
	}

	env := &commands.Env{
		Config:  cfg,
		Logger:  logger,
		Dialogs: dialogs,
		Out:     out,
		ErrOut:  errOut,
	}

	if cmd.NeedsService() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no backend configured")
			return exitcode.BackendError
		}
		svc, err := d.factory(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.AuthError
		}
		env.Service = svc
	}

	return cmd.Run(ctx, env, fs.Args())
}
