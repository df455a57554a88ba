// Package extract captures values out of response bodies for use in later
// requests. A path expression such as data.items[0].id addresses one value
// inside the parsed JSON; on success the value is written into the Extracted
// scope, where it shadows environment and collection variables during
// resolution.
//
// Extraction is all-or-nothing: a missing field, an out-of-range index, a
// JSON null, or a step applied to the wrong kind of node fails without
// mutating the store.
package extract
