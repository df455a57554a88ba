package resolver

import "regexp"

// Placeholder names follow [A-Za-z_][A-Za-z0-9_]*, optionally preceded by $
// for dynamic references. Anything else between braces is not a placeholder.
var placeholderPattern = regexp.MustCompile(`\{\{(\$?[A-Za-z_][A-Za-z0-9_]*)\}\}`)

type refKind int

const (
	scopedRef refKind = iota
	dynamicRef
)

// reference is one placeholder occurrence in a scanned text: its byte range
// plus the referenced name, classified once at scan time. References are
// ephemeral and never outlive the substitution call that produced them.
type reference struct {
	start, end int
	kind       refKind
	name       string // without the $ prefix for dynamic references
}

func scan(text string) []reference {
	matches := placeholderPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}
	refs := make([]reference, 0, len(matches))
	for _, m := range matches {
		name := text[m[2]:m[3]]
		ref := reference{start: m[0], end: m[1], kind: scopedRef, name: name}
		if name[0] == '$' {
			ref.kind = dynamicRef
			ref.name = name[1:]
		}
		refs = append(refs, ref)
	}
	return refs
}
