package main

import (
	"context"
	"os"

	"vieta/internal/cli"
	"vieta/internal/logging"
)

// main reads the input, prints the report to stdout and diagnostics to
// stderr, and exits with the run's semantic exit code.
func main() {
	logger := logging.New(os.Stderr)
	res, _ := cli.Run(context.Background(), os.Args[1:], cli.Streams{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	})
	_ = logger.Sync()
	os.Exit(res.ExitCode)
}
