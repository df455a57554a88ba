package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reqvar/reqvar/packages/dynamic"
	"github.com/reqvar/reqvar/packages/scope"
)

// MaxDepth caps nested expansion. Depth 1 is the top-level text; expanding a
// looked-up value increments depth by one.
const MaxDepth = 10

type DiagnosticKind int

const (
	// CircularReference marks a variable whose expansion chain revisited
	// itself. Expansion stops at the repeated reference.
	CircularReference DiagnosticKind = iota

	// MaxDepthExceeded marks a variable whose expansion would pass the depth
	// cap. The remaining placeholders in that branch stay literal.
	MaxDepthExceeded
)

func (k DiagnosticKind) String() string {
	switch k {
	case CircularReference:
		return "circular_reference"
	case MaxDepthExceeded:
		return "max_depth_exceeded"
	default:
		return "unknown"
	}
}

// Diagnostic reports a guard trip during substitution. Diagnostics are data
// for the caller, not errors; substitution always runs to completion.
type Diagnostic struct {
	Kind DiagnosticKind
	Name string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Name)
}

// Result is the outcome of substituting one text field.
type Result struct {
	// Text is the input with every resolvable placeholder replaced.
	Text string

	// Unresolved lists names with no scope or registry entry, deduplicated
	// in first-seen order. Dynamic names keep their $ prefix.
	Unresolved []string

	// Diagnostics records cycle and depth guard trips.
	Diagnostics []Diagnostic
}

// Clean reports whether everything resolved without guard trips.
func (r Result) Clean() bool {
	return len(r.Unresolved) == 0 && len(r.Diagnostics) == 0
}

// Substitute resolves every placeholder in text against the given store and
// registry. It never fails: malformed placeholder syntax is inert text, and
// unresolvable references are left literal and reported on the Result.
func Substitute(text string, store *scope.Store, registry *dynamic.Registry) Result {
	s := &session{
		store:    store,
		registry: registry,
		seen:     make(map[string]bool),
	}
	out := s.expand(text, 1, nil)
	return Result{Text: out, Unresolved: s.unresolved, Diagnostics: s.diagnostics}
}

// session accumulates unresolved names and diagnostics across one
// Substitute call, including all recursive expansions.
type session struct {
	store       *scope.Store
	registry    *dynamic.Registry
	unresolved  []string
	seen        map[string]bool
	diagnostics []Diagnostic
}

// expand substitutes all placeholders in text at the given depth.
// inProgress holds the variable names currently being expanded on this
// branch of the recursion; siblings never see each other's entries.
func (s *session) expand(text string, depth int, inProgress []string) string {
	refs := scan(text)
	if len(refs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, ref := range refs {
		b.WriteString(text[last:ref.start])
		b.WriteString(s.resolve(ref, text[ref.start:ref.end], depth, inProgress))
		last = ref.end
	}
	b.WriteString(text[last:])
	return b.String()
}

// resolve produces the replacement for a single reference, or the literal
// placeholder text when it cannot be resolved.
func (s *session) resolve(ref reference, literal string, depth int, inProgress []string) string {
	if ref.kind == dynamicRef {
		if g, ok := s.registry.Lookup(ref.name); ok {
			// Generator output is terminal by construction, never re-scanned.
			return g.Value()
		}
		s.markUnresolved("$" + ref.name)
		return literal
	}

	value, ok := s.store.Lookup(ref.name)
	if !ok {
		s.markUnresolved(ref.name)
		return literal
	}

	for _, active := range inProgress {
		if active == ref.name {
			s.diagnostics = append(s.diagnostics, Diagnostic{Kind: CircularReference, Name: ref.name})
			return literal
		}
	}

	if depth >= MaxDepth {
		s.diagnostics = append(s.diagnostics, Diagnostic{Kind: MaxDepthExceeded, Name: ref.name})
		return literal
	}

	return s.expand(value, depth+1, append(inProgress, ref.name))
}

func (s *session) markUnresolved(name string) {
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.unresolved = append(s.unresolved, name)
}

// Aggregate is the combined outcome of resolving a set of named fields, e.g.
// all headers of one request.
type Aggregate struct {
	Fields      map[string]string
	Unresolved  []string
	Diagnostics []Diagnostic
}

// SubstituteAll resolves every value in fields and merges unresolved names
// and diagnostics across them. Fields are processed in sorted key order so
// the merged reporting is deterministic.
func SubstituteAll(fields map[string]string, store *scope.Store, registry *dynamic.Registry) Aggregate {
	agg := Aggregate{
		Fields: make(map[string]string, len(fields)),
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]bool)
	for _, k := range keys {
		result := Substitute(fields[k], store, registry)
		agg.Fields[k] = result.Text
		for _, name := range result.Unresolved {
			if !seen[name] {
				seen[name] = true
				agg.Unresolved = append(agg.Unresolved, name)
			}
		}
		agg.Diagnostics = append(agg.Diagnostics, result.Diagnostics...)
	}
	return agg
}
