package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"vieta/internal/loader"
	"vieta/internal/quadratic"
	"vieta/internal/report"
)

// Streams carries the process outputs. The report goes to Stdout; every
// diagnostic goes through Logger, which normally writes to Stderr.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

type CLIResult struct {
	ExitCode  int
	Processed int
	Failed    int
}

// Execute loads the input, processes every entry and writes the report.
//
// Fatal failures (unreadable input, malformed document, non-array root) are
// logged once and returned before any entry block is written. Entry failures
// are logged and skipped; they never change the exit code.
func Execute(ctx context.Context, inv Invocation, s Streams) (CLIResult, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := loader.Load(inv.InputPath)
	if err != nil {
		return fatal(logger, "could not load input", inv.InputPath, err)
	}

	results, err := quadratic.Process(doc)
	if err != nil {
		return fatal(logger, "invalid document", inv.InputPath, err)
	}

	res := CLIResult{ExitCode: ExitSuccess}
	w := report.NewWriter(s.Stdout)
	for _, r := range results {
		if err := ctx.Err(); err != nil {
			return fatal(logger, "run interrupted", inv.InputPath, err)
		}
		w.WriteResult(r)
		res.Processed++
		if !r.OK() {
			res.Failed++
			logEntryError(logger, r)
		}
	}
	if err := w.Err(); err != nil {
		return fatal(logger, "could not write report", inv.InputPath, fmt.Errorf("write report: %w", err))
	}
	return res, nil
}

func fatal(logger *zap.Logger, msg, path string, err error) (CLIResult, error) {
	code := ExitCode(err)
	logger.Error(msg, zap.String("path", path), zap.Int("exit_code", code), zap.Error(err))
	return CLIResult{ExitCode: code}, err
}

func logEntryError(logger *zap.Logger, r quadratic.Result) {
	fields := []zap.Field{
		zap.Int("entry", r.Index),
		zap.String("name", r.Name),
		zap.Error(r.Err),
	}
	if errors.Is(r.Err, quadratic.ErrWrongRootCount) {
		fields = append(fields, zap.Int("count", r.Err.Count))
	}
	logger.Warn("skipping entry", fields...)
}
