package args

import (
	"fmt"
	"strings"
)

// GenerateDump renders the full state of the set for debugging: its
// configuration, every declared argument, the argv it would process, the
// resolved state, and the accumulated diagnostics of the most recent pass.
func (s *ArgSet) GenerateDump(argv []string) string {
	var sb strings.Builder

	sb.WriteString("Arg Set Dump\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString("Configuration:\n")
	sb.WriteString(fmt.Sprintf("  Separators: %q\n", s.seps))
	sb.WriteString(fmt.Sprintf("  Redefinition Is Error: %t\n", s.redefinitionIsError))
	sb.WriteString(fmt.Sprintf("  Exec Name: %q\n", s.execName))
	sb.WriteString("\n")

	sb.WriteString("Declared Keyword Arguments:\n")
	if len(s.keywords) == 0 {
		sb.WriteString("  none\n")
	}
	for i := range s.keywords {
		sb.WriteString(fmt.Sprintf("  [%d] %s", i, s.keywords[i].name))
		if s.keywords[i].abbr != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", s.keywords[i].abbr))
		}
		if s.keywords[i].usage != "" {
			sb.WriteString(fmt.Sprintf(" usage:%q", s.keywords[i].usage))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Declared Unary Arguments:\n")
	if len(s.unaries) == 0 {
		sb.WriteString("  none\n")
	}
	for i := range s.unaries {
		sb.WriteString(fmt.Sprintf("  [%d] %s", i, s.unaries[i].name))
		if s.unaries[i].abbr != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", s.unaries[i].abbr))
		}
		if s.unaries[i].usage != "" {
			sb.WriteString(fmt.Sprintf(" usage:%q", s.unaries[i].usage))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Arguments to Process:\n")
	if len(argv) == 0 {
		sb.WriteString("  none\n")
	}
	for i, a := range argv {
		sb.WriteString(fmt.Sprintf("  [%d]: %q\n", i, a))
	}
	sb.WriteString("\n")

	sb.WriteString("Resolved State:\n")
	for i := range s.keywords {
		if s.keywords[i].defined {
			sb.WriteString(fmt.Sprintf("  %s: defined value:%q\n", s.keywords[i].name, s.keywords[i].value))
		} else {
			sb.WriteString(fmt.Sprintf("  %s: not defined\n", s.keywords[i].name))
		}
	}
	for i := range s.unaries {
		if s.unaries[i].defined {
			sb.WriteString(fmt.Sprintf("  %s: defined\n", s.unaries[i].name))
		} else {
			sb.WriteString(fmt.Sprintf("  %s: not defined\n", s.unaries[i].name))
		}
	}
	if len(s.keywords) == 0 && len(s.unaries) == 0 {
		sb.WriteString("  none\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Diagnostics:\n")
	if len(s.diagnostics) == 0 {
		sb.WriteString("  none\n")
	}
	for i, d := range s.diagnostics {
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, d.Description()))
	}

	return sb.String()
}

// PrintDump writes GenerateDump output to the stdout writer.
func (s *ArgSet) PrintDump(argv []string) {
	fmt.Fprint(stdoutWriter, s.GenerateDump(argv))
}
