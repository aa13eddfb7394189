package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vieta/internal/loader"
	"vieta/internal/logging"
)

// NewCommand builds the root command. s.Logger must be set. The outcome of the last execution is
// stored in *result so callers can recover the semantic exit code.
func NewCommand(s Streams, result *CLIResult) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vieta [input]",
		Short: "Derive monic quadratics from pairs of roots",
		Long: `vieta reads a list of entries, each with an optional "name" and a
"roots" array of exactly two numbers, and prints the monic quadratic
x^2 + bx + c = 0 whose roots they are (b = -(r1+r2), c = r1*r2).

The input defaults to ` + loader.DefaultPath + ` in the current directory.
Files ending in .yaml or .yml are read as YAML, anything else as JSON.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := ParseInvocation(args)
			if err != nil {
				s.Logger.Error("invalid invocation", zap.Error(err))
				*result = CLIResult{ExitCode: ExitCode(err)}
				return err
			}
			res, err := Execute(cmd.Context(), inv, s)
			*result = res
			return err
		},
	}
	cmd.SetOut(s.Stdout)
	cmd.SetErr(s.Stderr)
	return cmd
}

// Run is a high-level CLI entrypoint suitable for black-box tests.
// It accepts the argument slice (excluding argv[0]) and returns the semantic
// exit code plus any error.
func Run(ctx context.Context, args []string, s Streams) (CLIResult, error) {
	if s.Stdout == nil {
		s.Stdout = io.Discard
	}
	if s.Stderr == nil {
		s.Stderr = io.Discard
	}
	if s.Logger == nil {
		s.Logger = logging.New(s.Stderr)
	}

	// Cobra rejections (bad arguments, unknown flags) never reach RunE.
	result := CLIResult{ExitCode: -1}
	cmd := NewCommand(s, &result)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if result.ExitCode == -1 {
		if err == nil {
			// --help and friends.
			return CLIResult{ExitCode: ExitSuccess}, nil
		}
		err = invalidInvocationf("%v", err)
		s.Logger.Error("invalid invocation", zap.Error(err))
		return CLIResult{ExitCode: ExitInvalidInvocation}, err
	}
	return result, err
}
