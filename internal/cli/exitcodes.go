package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, missing board context,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Card not found, board not found, column not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Reading a description from stdin failed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles or reasons, names that are too long,
	// or an invalid board column layout.
	ExitValidation = 5

	// ExitState indicates the card's state does not allow the transition.
	// Use for: Moving a blocked card, blocking twice, unblocking a card
	// that is not blocked, or acting on a card in a FINAL or CANCEL column.
	ExitState = 6
)
