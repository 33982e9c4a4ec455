package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, docsDir string) error
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct {
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
	bold   *color.Color
}

// NewTextFormatter creates a text formatter. useColor forces ANSI colors on or off.
func NewTextFormatter(useColor bool) *TextFormatter {
	f := &TextFormatter{
		red:    color.New(color.FgRed, color.Bold),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{f.red, f.yellow, f.cyan, f.bold} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result, docsDir string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Linting documentation in: %s\n", docsDir)
	b.WriteString(strings.Repeat("━", 60) + "\n\n")

	for _, issue := range result.Issues {
		f.formatIssue(&b, issue)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("━", 60) + "\n")
	b.WriteString("Results:\n")
	fmt.Fprintf(&b, "  %d files scanned\n", result.FilesTotal)
	if n := result.ErrorCount(); n > 0 {
		fmt.Fprintf(&b, "  %s (blocks build)\n", f.red.Sprintf("%d error%s", n, pluralize(n)))
	}
	if n := result.WarningCount(); n > 0 {
		fmt.Fprintf(&b, "  %s (should fix)\n", f.yellow.Sprintf("%d warning%s", n, pluralize(n)))
	}
	if n := result.InfoCount(); n > 0 {
		fmt.Fprintf(&b, "  %s\n", f.cyan.Sprintf("%d info", n))
	}
	b.WriteString("\n")

	switch {
	case result.HasErrors():
		b.WriteString(f.red.Sprint("Navigation has errors that will abort the site build.") + "\n")
	case result.HasWarnings():
		b.WriteString(f.yellow.Sprint("Documentation has warnings. Consider fixing before commit.") + "\n")
	case len(result.Issues) > 0:
		b.WriteString("All issues are informational.\n")
	default:
		b.WriteString("All documentation passes linting!\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TextFormatter) formatIssue(b *strings.Builder, issue Issue) {
	var label string
	switch issue.Severity {
	case SeverityError:
		label = f.red.Sprint("✗ " + issue.Severity.String())
	case SeverityWarning:
		label = f.yellow.Sprint("⚠ " + issue.Severity.String())
	default:
		label = f.cyan.Sprint("ℹ " + issue.Severity.String())
	}

	location := issue.File
	if issue.Line > 0 {
		location = fmt.Sprintf("%s:%d", issue.File, issue.Line)
	}
	fmt.Fprintf(b, "%s %s\n", label, f.bold.Sprint(location))
	fmt.Fprintf(b, "  [%s] %s\n", issue.Rule, issue.Message)

	if issue.Explanation != "" {
		for line := range strings.SplitSeq(strings.TrimSpace(issue.Explanation), "\n") {
			fmt.Fprintf(b, "  %s\n", line)
		}
	}
	if issue.Fix != "" {
		fmt.Fprintf(b, "  Fix: %s\n", issue.Fix)
	}
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Path         string      `json:"path"`
	FilesTotal   int         `json:"files_total"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line,omitempty"`
	Severity    string `json:"severity"`
	Rule        string `json:"rule"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result, docsDir string) error {
	output := JSONOutput{
		Path:         docsDir,
		FilesTotal:   result.FilesTotal,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		InfoCount:    result.InfoCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			File:        issue.File,
			Line:        issue.Line,
			Severity:    issue.Severity.String(),
			Rule:        issue.Rule,
			Message:     issue.Message,
			Explanation: issue.Explanation,
			Fix:         issue.Fix,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string, useColor bool) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter(useColor)
	}
}

// pluralize returns "s" if count != 1, otherwise empty string.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
