package quadratic

import (
	"encoding/json"
	"fmt"

	"vieta/internal/loader"
)

// DefaultName replaces a missing or non-text entry name.
const DefaultName = "Unnamed"

// Entry is a validated input record.
type Entry struct {
	Name  string
	Roots RootPair
}

// Result is the outcome for one entry. Exactly one of (Entry, Polynomial)
// and Err is meaningful: Err == nil marks success.
type Result struct {
	// Index is 1-based, matching the entry's position in the document.
	Index      int
	Name       string
	Entry      Entry
	Polynomial Polynomial
	Err        *EntryError
}

func (r Result) OK() bool { return r.Err == nil }

// Process validates the document root and derives a polynomial for every
// entry, in input order. The only error it returns is a *ShapeError; entry
// failures are reported through Result.Err.
func Process(doc loader.Document) ([]Result, error) {
	entries, ok := doc.Root.([]any)
	if !ok {
		return nil, &ShapeError{Got: describe(doc.Root)}
	}
	results := make([]Result, 0, len(entries))
	for i, raw := range entries {
		results = append(results, ProcessEntry(i+1, raw))
	}
	return results, nil
}

// ProcessEntry validates a single raw entry and derives its polynomial.
func ProcessEntry(index int, raw any) Result {
	entry, err := ValidateEntry(index, raw)
	res := Result{Index: index, Name: entry.Name}
	if err != nil {
		res.Err = err
		return res
	}
	res.Entry = entry
	res.Polynomial = Derive(entry.Roots)
	return res
}

// ValidateEntry converts a decoded record into a typed Entry. The returned
// Entry always carries a name, even when validation fails.
func ValidateEntry(index int, raw any) (Entry, *EntryError) {
	obj, isObject := raw.(map[string]any)
	entry := Entry{Name: nameOf(obj)}
	if !isObject {
		return entry, invalidRootsf(index, "entry is %s, not an object", describe(raw))
	}

	rawRoots, present := obj["roots"]
	if !present {
		return entry, invalidRootsf(index, "missing \"roots\" field")
	}
	list, ok := rawRoots.([]any)
	if !ok {
		return entry, invalidRootsf(index, "\"roots\" is %s, not an array", describe(rawRoots))
	}
	values := make([]float64, 0, len(list))
	for i, v := range list {
		f, err := toFloat(v)
		if err != nil {
			return entry, invalidRootsf(index, "roots[%d]: %v", i, err)
		}
		values = append(values, f)
	}
	if len(values) != 2 {
		return entry, wrongCount(index, len(values))
	}
	entry.Roots = RootPair{R1: values[0], R2: values[1]}
	return entry, nil
}

func nameOf(obj map[string]any) string {
	if name, ok := obj["name"].(string); ok {
		return name
	}
	return DefaultName
}

// toFloat accepts the numeric types produced by the JSON and YAML decoders.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("number %s out of range", n.String())
		}
		return f, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%s is not a number", describe(v))
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Summary counts successful and failed results.
func Summary(results []Result) (ok, failed int) {
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
