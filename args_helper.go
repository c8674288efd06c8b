package args

import (
	"io"
	"os"
)

// ExitFunc is called by ProcessOrExit in place of os.Exit.
type ExitFunc func(int)

var osExit ExitFunc = os.Exit
var stdoutWriter io.Writer = os.Stdout
var stderrWriter io.Writer = os.Stderr

// SetStdoutWriter overrides the writer used for dump output, for testing or
// custom capture.
func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

// SetStderrWriter overrides the writer used for diagnostic and usage output.
func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}

// SetExitFunc overrides the exit function used by ProcessOrExit, for testing.
func SetExitFunc(fn ExitFunc) {
	osExit = fn
}
