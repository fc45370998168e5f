package shell

import (
	"errors"
	"fmt"
	"strings"

	"todoview/internal/controller"
	"todoview/internal/filter"
	"todoview/internal/service"
)

// Kind classifies a parsed shell line.
type Kind int

const (
	// Nothing is a blank line.
	Nothing Kind = iota
	// Dispatch delivers Action.Event to the controller.
	Dispatch
	// Redraw repaints the list.
	Redraw
	// Reload re-fetches the list from the server.
	Reload
	// Help prints the command summary.
	Help
	// Quit ends the session.
	Quit
)

// Action is what a shell line asks for. For Dispatch actions with
// HasInput set, Input is typed into the new-task field first.
type Action struct {
	Kind     Kind
	Event    controller.Event
	Input    string
	HasInput bool
}

// ErrUnknownCommand is returned for an unrecognized first word.
var ErrUnknownCommand = errors.New("unknown command")

// ParseLine turns one line of input into an Action.
func ParseLine(line string) (Action, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Action{Kind: Nothing}, nil
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "add", "new":
		return Action{
			Kind:     Dispatch,
			Event:    controller.Event{Element: controller.TaskInput, Kind: controller.KeyPress, Key: controller.KeyEnter},
			Input:    rest,
			HasInput: true,
		}, nil

	case "toggle", "done", "x":
		id, err := parseID(cmd, rest)
		if err != nil {
			return Action{}, err
		}
		return dispatch(controller.Checkbox, controller.Change, id), nil

	case "edit", "e":
		id, err := parseID(cmd, rest)
		if err != nil {
			return Action{}, err
		}
		return dispatch(controller.EditButton, controller.Click, id), nil

	case "rm", "delete", "del":
		id, err := parseID(cmd, rest)
		if err != nil {
			return Action{}, err
		}
		return dispatch(controller.DeleteButton, controller.Click, id), nil

	case "filter", "f":
		f, err := filter.Parse(rest)
		if err != nil {
			return Action{}, err
		}
		return filterAction(f), nil

	case "all", "active", "completed":
		return filterAction(filter.Filter(strings.ToLower(cmd))), nil

	case "ls", "list":
		return Action{Kind: Redraw}, nil
	case "reload":
		return Action{Kind: Reload}, nil
	case "help", "?":
		return Action{Kind: Help}, nil
	case "exit", "quit", "q":
		return Action{Kind: Quit}, nil
	}
	return Action{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

func parseID(cmd, rest string) (service.ID, error) {
	if rest == "" || strings.ContainsAny(rest, " \t") {
		return "", fmt.Errorf("usage: %s <id>", cmd)
	}
	return service.ID(rest), nil
}

func dispatch(el controller.Element, kind controller.EventKind, id service.ID) Action {
	return Action{Kind: Dispatch, Event: controller.Event{Element: el, Kind: kind, TaskID: id}}
}

func filterAction(f filter.Filter) Action {
	return Action{
		Kind:  Dispatch,
		Event: controller.Event{Element: controller.FilterButton, Kind: controller.Click, Filter: f},
	}
}

const helpText = `Commands:
  add <text>          Add a task (Enter on the input field)
  toggle <id>         Flip a task between active and completed
  edit <id>           Replace a task's text
  rm <id>             Delete a task (asks for confirmation)
  filter <f>          Show all, active or completed tasks
  all|active|completed  Shorthand for filter
  ls                  Redraw the list
  reload              Fetch the list from the server again
  help                Show this help
  exit                Leave the shell
`
