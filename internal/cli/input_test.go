package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"vieta/internal/loader"
	"vieta/internal/quadratic"
)

func TestParseInvocation_DefaultsToRootsJSON(t *testing.T) {
	inv, err := ParseInvocation(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.InputPath != "roots.json" {
		t.Fatalf("expected default input path, got %q", inv.InputPath)
	}
}

func TestParseInvocation_DeterministicStruct(t *testing.T) {
	args := []string{"data/../data//roots.yaml"}

	inv1, err := ParseInvocation(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv2, err := ParseInvocation(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(inv1, inv2) {
		t.Fatalf("expected identical invocations, got\n%#v\n%#v", inv1, inv2)
	}
	if inv1.InputPath != filepath.Join("data", "roots.yaml") {
		t.Fatalf("input path not canonicalized: %q", inv1.InputPath)
	}
}

func TestParseInvocation_Rejects(t *testing.T) {
	cases := map[string][]string{
		"empty path": {"  "},
		"dot":        {"./"},
		"two paths":  {"a.json", "b.json"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInvocation(args)
			if err == nil {
				t.Fatalf("expected error for %q", args)
			}
			if got := ExitCode(err); got != ExitInvalidInvocation {
				t.Fatalf("expected exit %d, got %d", ExitInvalidInvocation, got)
			}
		})
	}
}

func TestExitCode_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"io", &loader.LoadError{Kind: loader.ErrIO, Path: "x"}, ExitIOError},
		{"parse", &loader.LoadError{Kind: loader.ErrParse, Path: "x"}, ExitParseError},
		{"shape", &quadratic.ShapeError{Got: "object"}, ExitShapeError},
		{"wrapped shape", fmt.Errorf("run: %w", &quadratic.ShapeError{}), ExitShapeError},
		{"invocation", &InvocationError{ExitCode: ExitInvalidInvocation, Message: "bad"}, ExitInvalidInvocation},
		{"invocation without code", &InvocationError{Message: "bad"}, ExitInvalidInvocation},
		{"unknown", errors.New("boom"), ExitInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
