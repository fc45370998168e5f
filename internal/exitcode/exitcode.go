// Package exitcode defines the process exit codes and how operation errors
// map onto them.
package exitcode

import (
	"errors"

	"todoview/internal/controller"
	"todoview/internal/service"
)

const (
	Success = 0

	// UserError: bad arguments, an unknown task id or blank task text.
	UserError = 1

	// AuthError: unreadable config or token, or the server refused the token.
	AuthError = 2

	// BackendError: the server or the network failed.
	BackendError = 3
)

// For maps an operation error to an exit code. A nil error is Success.
func For(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, controller.ErrEmptyTask), errors.Is(err, controller.ErrNoSuchTask):
		return UserError
	case errors.Is(err, service.ErrUnauthorized):
		return AuthError
	default:
		return BackendError
	}
}
