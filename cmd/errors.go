package cmd

import (
	"errors"
	"fmt"

	"github.com/vipcxj/natsort/internal/entries"
	"github.com/vipcxj/natsort/internal/numrange"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the exit code a failed run should end with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// errInterrupted marks a run cancelled after its input was read.
var errInterrupted = errors.New("interrupted")

func interrupted(cause error) error {
	return fmt.Errorf("%w: %w", errInterrupted, cause)
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Err: err}
}

// exitCodeFor maps err to an exit code and the line printed on stderr. An
// empty message means nothing is printed.
func exitCodeFor(err error) (int, string) {
	var (
		exit     *ExitError
		badRange *numrange.InvalidRangeError
	)
	switch {
	case err == nil:
		return ExitSuccess, ""
	case errors.Is(err, entries.ErrInputInterrupted), errors.Is(err, errInterrupted):
		return ExitFailure, ""
	case errors.As(err, &exit):
		return exit.Code, exit.Error()
	case errors.As(err, &badRange):
		return ExitFailure, badRange.Error()
	default:
		return ExitFailure, err.Error()
	}
}
