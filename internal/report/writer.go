package report

import (
	"fmt"
	"io"

	"vieta/internal/quadratic"
)

// Writer emits one block per entry. Errors from the underlying writer are
// sticky: after the first failure every call is a no-op and Err reports it.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteResult writes the block for r. Failed entries get only the header and
// name; their diagnostics belong on the error stream.
func (rw *Writer) WriteResult(r quadratic.Result) {
	rw.printf("--- Processing Entry %d ---\n", r.Index)
	if !r.OK() {
		rw.printf("  Name: %s\n", r.Name)
		return
	}
	rw.printf("%s", FormatEntry(r.Entry.Name, r.Entry.Roots, r.Polynomial))
}

// Err returns the first write error, if any.
func (rw *Writer) Err() error { return rw.err }

func (rw *Writer) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}
