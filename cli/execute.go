package cli

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/Dynom/listkit/runtimer"
	"github.com/spf13/cobra"
)

// Execute runs cmd with a context that's canceled on SIGINT or SIGTERM, and exits the process accordingly.
func Execute(cmd *cobra.Command) {
	ctx, stop := runtimer.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.ExecuteContext(ctx)
	stop()

	// Usage errors (unknown flags, bad values) haven't been reported yet
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		cmd.PrintErrln("Error:", err)
	}

	os.Exit(ExitCode(err))
}
