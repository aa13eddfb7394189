package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"vieta/internal/loader"
	"vieta/internal/quadratic"
)

const (
	ExitSuccess           = 0
	ExitIOError           = 1
	ExitParseError        = 2
	ExitShapeError        = 3
	ExitInvalidInvocation = 4
	ExitInternalError     = 5
)

// Invocation is the canonical description of a run.
type Invocation struct {
	// InputPath is the cleaned path of the document to read.
	InputPath string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation canonicalizes positional arguments. With no arguments the
// input is loader.DefaultPath in the current directory.
func ParseInvocation(args []string) (Invocation, error) {
	switch len(args) {
	case 0:
		return Invocation{InputPath: loader.DefaultPath}, nil
	case 1:
		p := strings.TrimSpace(args[0])
		if p == "" {
			return Invocation{}, invalidInvocationf("input path must not be empty")
		}
		clean := filepath.Clean(p)
		if clean == "." {
			return Invocation{}, invalidInvocationf("input path must name a file")
		}
		return Invocation{InputPath: clean}, nil
	default:
		return Invocation{}, invalidInvocationf("expected at most one input path, got %d arguments: %q", len(args), strings.Join(args, " "))
	}
}

// ExitCode maps a run error to its semantic exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	switch {
	case errors.Is(err, loader.ErrIO):
		return ExitIOError
	case errors.Is(err, loader.ErrParse):
		return ExitParseError
	case errors.Is(err, quadratic.ErrShape):
		return ExitShapeError
	default:
		return ExitInternalError
	}
}
