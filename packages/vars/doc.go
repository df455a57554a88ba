// Package vars loads variable definitions from YAML variable files and .env
// overlays into resolution scopes. The durable representation used by the
// host application is out of scope here; this loader exists for the CLI and
// for tests that need realistic scopes.
package vars
