package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
)

// Exit codes by category. Plain errors exit with 1.
var exitCodes = map[ErrorCategory]int{
	CategoryConfig:     7,
	CategoryDocs:       9,
	CategoryFileSystem: 9,
	CategoryInternal:   10,
	CategoryBuild:      11,
}

// CLIErrorAdapter prints errors for the command line and picks the exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter returns an adapter writing to stderr. A nil logger
// means slog.Default().
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, out: os.Stderr}
}

func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if !IsClassified(err) {
		return 1
	}
	if code, ok := exitCodes[CategoryOf(err)]; ok {
		return code
	}
	return 1
}

// FormatError renders err for the operator. Configuration and docs errors
// list their context so the offending entry can be found; verbose mode
// prints the full chain instead.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	classified, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return "Error: " + err.Error()
	}
	switch classified.Category() {
	case CategoryConfig, CategoryDocs:
		var b strings.Builder
		b.WriteString("Configuration error: ")
		b.WriteString(classified.Message())
		ctx := classified.Context()
		for _, k := range slices.Sorted(maps.Keys(ctx)) {
			fmt.Fprintf(&b, "\n  %s: %v", k, ctx[k])
		}
		return b.String()
	default:
		return fmt.Sprintf("Error: %s (use -v for details)", classified.Message())
	}
}

// HandleError logs err, prints it and returns the exit code for os.Exit.
func (a *CLIErrorAdapter) HandleError(err error) int {
	if err == nil {
		return 0
	}
	a.logError(err)
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	return a.ExitCodeFor(err)
}

func (a *CLIErrorAdapter) logError(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}
	attrs := []slog.Attr{slog.String("category", string(classified.Category()))}
	for _, k := range slices.Sorted(maps.Keys(classified.Context())) {
		attrs = append(attrs, slog.Any(k, classified.Context()[k]))
	}
	if cause := classified.Cause(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	level := slog.LevelError
	if classified.Severity() == SeverityWarning {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, classified.Message(), attrs...)
}
