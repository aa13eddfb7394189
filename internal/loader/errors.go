package loader

import (
	"errors"
	"fmt"
)

var (
	ErrIO    = errors.New("cannot read input")
	ErrParse = errors.New("malformed input")
)

// LoadError reports a failure to obtain a document tree from a source.
type LoadError struct {
	Kind error
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(path string, err error) error {
	return &LoadError{Kind: ErrIO, Path: path, Err: err}
}

func parseError(path string, err error) error {
	return &LoadError{Kind: ErrParse, Path: path, Err: err}
}
