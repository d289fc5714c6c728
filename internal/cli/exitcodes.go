package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes for livemd.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a runtime failure: unreadable input, invalid
	// configuration, or an internal error.
	ExitError = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 2
)

// errUsage marks errors caused by bad flags or arguments.
var errUsage = errors.New("invalid usage")

// usageError wraps err so it maps to ExitUsage.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errUsage, err)
}

// ExitCodeFromError determines the process exit code for an Execute error.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// exactFileArg validates that exactly one FILE argument was given,
// reporting anything else as a usage error.
func exactFileArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}
