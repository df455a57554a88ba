package extract

import (
	"fmt"
	"strconv"
	"strings"
)

type stepKind int

const (
	fieldStep stepKind = iota
	indexStep
)

// Step is one element of a path expression: an object member access by name
// or an array element access by index.
type Step struct {
	kind  stepKind
	field string
	index int
}

func (s Step) String() string {
	if s.kind == indexStep {
		return fmt.Sprintf("[%d]", s.index)
	}
	return s.field
}

// Path is a parsed path expression. It carries no knowledge of any concrete
// value; steps are validated against the actual structure at extraction time.
type Path struct {
	raw   string
	steps []Step
}

func (p Path) String() string {
	return p.raw
}

func (p Path) Steps() []Step {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// ParsePath parses a dotted/bracketed path expression like data.items[0].id.
// Field names are any non-empty run of characters other than '.' and '[';
// indexes are non-negative integers. A path may begin with an index step for
// top-level arrays, e.g. [0].id.
func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return Path{}, fmt.Errorf("empty path expression")
	}

	p := Path{raw: expr}
	rest := expr
	expectField := !strings.HasPrefix(rest, "[")

	for len(rest) > 0 {
		switch {
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return Path{}, fmt.Errorf("invalid path %q: unterminated index", expr)
			}
			idx, err := parseIndex(rest[1:end])
			if err != nil {
				return Path{}, fmt.Errorf("invalid path %q: %w", expr, err)
			}
			p.steps = append(p.steps, Step{kind: indexStep, index: idx})
			rest = rest[end+1:]
			// After ] the path either ends, descends with '.', or indexes again.
			if strings.HasPrefix(rest, ".") {
				rest = rest[1:]
				expectField = true
				if rest == "" {
					return Path{}, fmt.Errorf("invalid path %q: trailing dot", expr)
				}
			} else {
				expectField = false
			}
		case expectField:
			end := strings.IndexAny(rest, ".[")
			if end == 0 {
				return Path{}, fmt.Errorf("invalid path %q: empty field name", expr)
			}
			if end < 0 {
				end = len(rest)
			}
			p.steps = append(p.steps, Step{kind: fieldStep, field: rest[:end]})
			rest = rest[end:]
			if strings.HasPrefix(rest, ".") {
				rest = rest[1:]
				if rest == "" {
					return Path{}, fmt.Errorf("invalid path %q: trailing dot", expr)
				}
			} else {
				expectField = false
			}
		default:
			return Path{}, fmt.Errorf("invalid path %q: unexpected %q", expr, rest)
		}
	}

	return p, nil
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty index")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("index %q is not a non-negative integer", s)
		}
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %q is not a non-negative integer", s)
	}
	return idx, nil
}
