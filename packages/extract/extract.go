package extract

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/reqvar/reqvar/packages/scope"
)

// PathError reports a structural mismatch between a path expression and the
// value it was applied to. It is the only failure mode of a well-formed
// extraction; nothing is written to the store when it occurs.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q not found: %s", e.Path, e.Reason)
}

// Extract navigates the JSON body by the given path expression and returns
// the addressed value as a string. Strings are returned verbatim, numbers
// keep their source text, booleans are "true"/"false", and objects or arrays
// yield their raw JSON. A JSON null fails so callers can tell "not found"
// from "found but empty".
func Extract(body []byte, path string) (string, error) {
	p, err := ParsePath(path)
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(body) {
		return "", &PathError{Path: path, Reason: "body is not valid JSON"}
	}

	node := gjson.ParseBytes(body)
	for i, step := range p.steps {
		prefix := stepPrefix(p.steps, i)
		switch step.kind {
		case fieldStep:
			if !node.IsObject() {
				return "", &PathError{Path: path, Reason: fmt.Sprintf("%s is not an object", prefix)}
			}
			child, ok := node.Map()[step.field]
			if !ok {
				return "", &PathError{Path: path, Reason: fmt.Sprintf("no field %q at %s", step.field, prefix)}
			}
			node = child
		case indexStep:
			if !node.IsArray() {
				return "", &PathError{Path: path, Reason: fmt.Sprintf("%s is not an array", prefix)}
			}
			elems := node.Array()
			if step.index >= len(elems) {
				return "", &PathError{Path: path, Reason: fmt.Sprintf("index %d out of range at %s (length %d)", step.index, prefix, len(elems))}
			}
			node = elems[step.index]
		}
	}

	return stringify(node, path)
}

// ExtractAndStore extracts the value at path and writes it into the store's
// Extracted scope under variableName. On any failure no mutation happens.
func ExtractAndStore(body []byte, path, variableName string, store *scope.Store) error {
	value, err := Extract(body, path)
	if err != nil {
		return err
	}
	if err := store.SetExtracted(variableName, value); err != nil {
		return fmt.Errorf("storing extracted value: %w", err)
	}
	return nil
}

func stringify(node gjson.Result, path string) (string, error) {
	switch node.Type {
	case gjson.Null:
		return "", &PathError{Path: path, Reason: "value is null"}
	case gjson.String:
		return node.Str, nil
	case gjson.True:
		return "true", nil
	case gjson.False:
		return "false", nil
	case gjson.Number:
		// Raw keeps the number exactly as it appeared in the body.
		return node.Raw, nil
	default:
		return node.Raw, nil
	}
}

// stepPrefix renders the path up to but excluding step i, for error messages.
func stepPrefix(steps []Step, i int) string {
	if i == 0 {
		return "the root"
	}
	out := ""
	for _, s := range steps[:i] {
		if s.kind == fieldStep && out != "" {
			out += "."
		}
		out += s.String()
	}
	return out
}
