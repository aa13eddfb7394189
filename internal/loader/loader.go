// Package loader reads root-pair documents into a generic tree.
//
// The loader does not interpret the tree: shape validation belongs to the
// quadratic package. JSON is the default format; files ending in .yaml or
// .yml are decoded as YAML.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the input file read when no path is given.
const DefaultPath = "roots.json"

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is a parsed input. Root holds the decoded tree: JSON objects are
// map[string]any, arrays are []any and JSON numbers are json.Number.
type Document struct {
	Path   string
	Format Format
	Root   any
}

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the document at path. The file is closed before
// Load returns, whether or not decoding succeeds.
func Load(path string) (Document, error) {
	b, err := readAll(path)
	if err != nil {
		return Document{}, ioError(path, err)
	}
	format := FormatForPath(path)
	root, err := Decode(bytes.NewReader(b), format)
	if err != nil {
		return Document{}, parseError(path, err)
	}
	return Document{Path: path, Format: format, Root: root}, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Decode parses a single document from r.
func Decode(r io.Reader, format Format) (any, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r)
	case FormatJSON, "":
		return decodeJSON(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	// Ensure there is no trailing garbage (including a second JSON value).
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return nil, errors.New("trailing data")
		}
		return nil, err
	}
	return root, nil
}

func decodeYAML(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)
	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("multiple documents")
		}
		return nil, err
	}
	return root, nil
}
