// Package cmd implements the reqvar CLI commands using Cobra.
//
// Available commands:
//   - resolve: Substitute placeholders in a template file
//   - generators: List the dynamic variables by category
//   - extract: Pull a value out of a JSON body by path expression
//   - version: Show reqvar version information
//
// The resolve command supports a watch mode that re-resolves whenever the
// template or variable files change, for iterating on request templates.
package cmd
