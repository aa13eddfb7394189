package quadratic

import (
	"errors"
	"fmt"
)

var (
	ErrShape                 = errors.New("document root must be an array of objects")
	ErrMissingOrInvalidRoots = errors.New("could not extract roots")
	ErrWrongRootCount        = errors.New("wrong number of roots")
)

// ShapeError is fatal: the document itself is malformed at the root.
type ShapeError struct {
	// Got names the decoded type of the root, e.g. "object".
	Got string
}

func (e *ShapeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Got == "" {
		return ErrShape.Error()
	}
	return fmt.Sprintf("%s, got %s", ErrShape.Error(), e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// EntryError is recoverable and scoped to a single entry.
type EntryError struct {
	Kind  error
	Index int
	// Count is the number of roots found; only meaningful for ErrWrongRootCount.
	Count int
	Msg   string
}

func (e *EntryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("entry %d: %s", e.Index, e.Kind.Error())
	}
	return fmt.Sprintf("entry %d: %s: %s", e.Index, e.Kind.Error(), e.Msg)
}

func (e *EntryError) Unwrap() error { return e.Kind }

func invalidRootsf(index int, format string, args ...any) *EntryError {
	return &EntryError{Kind: ErrMissingOrInvalidRoots, Index: index, Msg: fmt.Sprintf(format, args...)}
}

func wrongCount(index, count int) *EntryError {
	return &EntryError{
		Kind:  ErrWrongRootCount,
		Index: index,
		Count: count,
		Msg:   fmt.Sprintf("expected 2 roots for a quadratic equation, but found %d", count),
	}
}
