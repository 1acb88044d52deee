package errors

import (
	"io"
	"os"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// PrintError formats err with the given config and writes it to w.
// Nothing is written for a nil error.
func PrintError(w io.Writer, err error, config FormatterConfig) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, config)+newline)
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
