package args

import (
	"fmt"
	"strings"
)

// InvocationError aggregates the diagnostics of a classification pass that
// found at least one anomaly.
type InvocationError struct {
	diagnostics []Diagnostic
}

func (e *InvocationError) Error() string {
	descs := make([]string, len(e.diagnostics))
	for i, d := range e.diagnostics {
		descs[i] = d.Description()
	}
	return strings.Join(descs, "\n")
}

func (e *InvocationError) Diagnostics() []Diagnostic {
	return e.diagnostics
}

// ProcessOrError classifies argv and returns an *InvocationError if the pass
// produced diagnostics, nil otherwise.
func (s *ArgSet) ProcessOrError(argv []string) error {
	s.ProcessArgs(argv)
	if len(s.diagnostics) > 0 {
		return &InvocationError{diagnostics: s.diagnostics}
	}
	return nil
}

// ProcessOrExit classifies argv. If the pass produced diagnostics it prints
// each description and the usage text to stderr, then exits with code 1.
// Exit-code policy lives here; the engine itself never aborts.
func (s *ArgSet) ProcessOrExit(argv []string) {
	s.ProcessArgs(argv)
	if len(s.diagnostics) == 0 {
		return
	}

	for _, d := range s.diagnostics {
		fmt.Fprintln(stderrWriter, RedS("%s", d.Description()))
	}
	fmt.Fprintln(stderrWriter)
	fmt.Fprint(stderrWriter, s.GenerateUsage())
	osExit(1)
}
