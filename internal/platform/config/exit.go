package config

import (
	"fmt"
	"io"
	"os"
)

// Overridden by tests.
var (
	exitStderr io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitStderr, format+"\n", args...)
	exitFunc(1)
}
