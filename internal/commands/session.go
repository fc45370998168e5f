package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"todoview/internal/controller"
	"todoview/internal/exitcode"
	"todoview/internal/filter"
	"todoview/internal/output"
	"todoview/internal/service"
	"todoview/internal/view"
)

// Output formats for the rendered page.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// pageFlags are the flags shared by every command that prints the list.
type pageFlags struct {
	filter string
	format string
}

func (p *pageFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&p.filter, "filter", "f", string(filter.Default), "")
	fs.StringVar(&p.format, "format", FormatText, "")
}

func (p *pageFlags) validate() error {
	if _, err := filter.Parse(p.filter); err != nil {
		return err
	}
	switch p.format {
	case FormatText, FormatHTML:
		return nil
	}
	return fmt.Errorf("unknown format: %s (want text or html)", p.format)
}

// session is one page load: a fresh controller over an in-memory canvas.
type session struct {
	env    *Env
	ctrl   *controller.Controller
	canvas *view.Canvas
	flags  pageFlags
}

// openSession validates the page flags, attaches a controller and loads the
// list. On failure it returns a non-zero exit code.
func openSession(ctx context.Context, env *Env, dialogs controller.Dialogs, flags pageFlags) (*session, int) {
	if err := flags.validate(); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return nil, exitcode.UserError
	}

	canvas := view.NewCanvas()
	ctrl := controller.New(env.Service, canvas, dialogs, controller.WithLogger(env.Logger))
	if err := ctrl.Attach(); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return nil, exitcode.UserError
	}
	if err := ctrl.Load(ctx); err != nil {
		ctrl.Detach()
		return nil, exitcode.For(err)
	}

	s := &session{env: env, ctrl: ctrl, canvas: canvas, flags: flags}
	if f, _ := filter.Parse(flags.filter); f != ctrl.Filter() {
		if code := s.dispatch(ctx, controller.Event{Element: controller.FilterButton, Kind: controller.Click, Filter: f}); code != exitcode.Success {
			return nil, code
		}
	}
	return s, exitcode.Success
}

func (s *session) close() {
	s.ctrl.Detach()
}

func (s *session) dispatch(ctx context.Context, ev controller.Event) int {
	err := s.ctrl.Dispatch(ctx, ev)
	if errors.Is(err, controller.ErrNoSuchTask) {
		fmt.Fprintf(s.env.ErrOut, "error: no task with id %s\n", ev.TaskID)
	}
	return exitcode.For(err)
}

// print writes the last drawn page to stdout unless quiet.
func (s *session) print() int {
	if s.env.Config.Quiet {
		return exitcode.Success
	}
	m := s.canvas.Model()
	switch s.flags.format {
	case FormatHTML:
		if err := view.RenderHTML(s.env.Out, m); err != nil {
			fmt.Fprintf(s.env.ErrOut, "error: %v\n", err)
			return exitcode.BackendError
		}
	default:
		output.NewRenderer(s.env.Out).Render(s.env.Out, m)
	}
	return exitcode.Success
}

// taskID validates a single positional id argument.
func taskID(args []string) (service.ID, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", errors.New("task id required")
	}
	return service.ID(strings.TrimSpace(args[0])), nil
}
