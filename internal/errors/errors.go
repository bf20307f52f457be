// Package errors formats command failures consistently and handles fatal
// exits for the CLI entrypoints.
package errors

import (
	"fmt"
	"os"

	"dayflow/internal/logger"
)

// Format renders an error with the standard "Error: " prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error and exits with status 1. A nil error is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	os.Exit(1)
}
