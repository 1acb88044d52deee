package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/yamlbridge/cmd"
	errUtils "github.com/cloudposse/yamlbridge/errors"
	log "github.com/cloudposse/yamlbridge/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Stop running scripts, then clean up resources before exit.
		cancel()
		cmd.Cleanup()
		// Exit with correct POSIX exit code (128 + signal number).
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	// Disable timestamp in logs so output is stable.
	log.Default().SetReportTimestamp(false)

	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run(ctx))
}

// run executes the main application logic and returns an exit code.
// This separation allows proper cleanup via defer before os.Exit in main().
func run(ctx context.Context) int {
	// Ensure cleanup happens on normal exit.
	defer cmd.Cleanup()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		// Format and print error using centralized formatter.
		errUtils.PrintError(os.Stderr, err, errUtils.DefaultFormatterConfig())

		// Extract and use the correct exit code.
		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return errUtils.ExitCodeSuccess
}
