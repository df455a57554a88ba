// Package scope holds named variable values across the three resolution scopes.
//
// A Scope is a plain name-to-value mapping. A Store ties together the three
// scopes visible to one open request tab:
//   - Extracted: values captured from previous responses (owned by the Store)
//   - Environment: per-deployment overrides (shared, supplied externally)
//   - Collection: collection-wide defaults (shared, supplied externally)
//
// Lookup precedence is fixed: Extracted > Environment > Collection. Values
// chained from a live response are the most specific and shadow static
// configuration.
package scope
