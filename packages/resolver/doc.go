// Package resolver substitutes {{name}} placeholders in request text.
//
// Scoped references ({{baseUrl}}) are looked up through a scope.Store in
// precedence order; dynamic references ({{$guid}}) invoke a generator from a
// dynamic.Registry. Looked-up values may themselves contain placeholders and
// are expanded recursively, guarded by a depth cap and cycle detection so
// resolution always terminates. Generator output is terminal and never
// re-scanned.
//
// Unresolved names and guard trips are reported as data on the Result, never
// as errors: the caller decides whether to warn, block, or send the request
// with literal placeholders intact. Text that merely resembles a placeholder
// (unbalanced braces, illegal characters) is left untouched.
package resolver
