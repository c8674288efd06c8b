package args

import (
	"fmt"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	red        = color.New(color.FgRed)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
	RedS       = red.SprintfFunc()
)

// GenerateUsage renders a usage listing of the declared argument set: an
// optional description, a synopsis line, and one section each for keyword
// and unary arguments.
func (s *ArgSet) GenerateUsage() string {
	var sb strings.Builder

	if s.description != "" {
		sb.WriteString(s.description + "\n\n")
	}

	sb.WriteString(GreenBoldS("Usage:") + "\n")
	sb.WriteString("  " + BoldS("%s", s.usageName()))
	if len(s.keywords) > 0 {
		sb.WriteString(CyanS(" [keyword%svalue ...]", s.primarySeparator()))
	}
	if len(s.unaries) > 0 {
		sb.WriteString(CyanS(" [unary ...]"))
	}
	sb.WriteString("\n")

	var keywordRows, unaryRows [][2]string
	for i := range s.keywords {
		keywordRows = append(keywordRows, [2]string{argLabel(s.keywords[i].name, s.keywords[i].abbr) + " <value>", s.keywords[i].usage})
	}
	for i := range s.unaries {
		unaryRows = append(unaryRows, [2]string{argLabel(s.unaries[i].name, s.unaries[i].abbr), s.unaries[i].usage})
	}

	writeUsageSection(&sb, "Keyword arguments:", keywordRows)
	writeUsageSection(&sb, "Unary arguments:", unaryRows)

	return sb.String()
}

func argLabel(name, abbr string) string {
	if abbr == "" {
		return name
	}
	return name + ", " + abbr
}

// writeUsageSection renders one aligned two-column section. Padding is
// computed on the plain text before color codes are applied.
func writeUsageSection(sb *strings.Builder, header string, rows [][2]string) {
	if len(rows) == 0 {
		return
	}

	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	sb.WriteString("\n" + GreenBoldS(header) + "\n")
	for _, row := range rows {
		sb.WriteString("  " + BoldS("%-*s", width, row[0]))
		if row[1] != "" {
			sb.WriteString("   " + row[1])
		}
		sb.WriteString("\n")
	}
}

func (s *ArgSet) usageName() string {
	if s.execName != "" {
		return s.execName
	}
	return "<program>"
}

func (s *ArgSet) primarySeparator() string {
	if s.seps == "" {
		return " "
	}
	return string([]rune(s.seps)[:1])
}

// PrintUsage writes GenerateUsage output to the stderr writer.
func (s *ArgSet) PrintUsage() {
	fmt.Fprint(stderrWriter, s.GenerateUsage())
}
