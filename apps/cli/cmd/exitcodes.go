package cmd

// Exit codes for the reqwrap CLI
const (
	// ExitSuccess indicates the request completed with a success status
	ExitSuccess = 0

	// ExitTransportFault indicates a network/connection error
	ExitTransportFault = 1

	// ExitHTTPError indicates the server answered with a non-success status
	ExitHTTPError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
