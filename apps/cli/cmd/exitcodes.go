package cmd

// Exit codes for the reqvar CLI
const (
	// ExitSuccess indicates everything resolved cleanly
	ExitSuccess = 0

	// ExitUnresolved indicates unresolved names or resolution diagnostics
	ExitUnresolved = 1

	// ExitInputError indicates an unreadable or unparsable input file
	ExitInputError = 2

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
