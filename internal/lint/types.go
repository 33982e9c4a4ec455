// Package lint checks a documentation tree against the site configuration:
// navigation targets, custom container types, component tags and pages no
// menu links to.
package lint

import (
	"cmp"
	"slices"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/docs"
	"git.home.luguber.info/inful/sitenav/internal/plugin"
)

// Severity indicates the importance level of a linting issue.
type Severity int

const (
	// SeverityInfo marks observations that need no action.
	SeverityInfo Severity = iota
	// SeverityWarning marks issues that render incorrectly but do not block builds.
	SeverityWarning
	// SeverityError marks issues that make the site build fail.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single linting problem.
type Issue struct {
	File        string   // Path of the offending file
	Line        int      // 1-based line number (0 if file-level issue)
	Severity    Severity // Issue severity level
	Rule        string   // Rule identifier (e.g., "sidebar-link")
	Message     string   // Brief description of the issue
	Explanation string   // Detailed explanation with context
	Fix         string   // Suggested fix
}

// Result contains all issues found during linting.
type Result struct {
	Issues     []Issue
	FilesTotal int // Documents scanned
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool { return r.ErrorCount() > 0 }

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool { return r.WarningCount() > 0 }

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

// InfoCount returns the number of informational issues.
func (r *Result) InfoCount() int { return r.count(SeverityInfo) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// ExitCode is 2 when errors were found, 1 for warnings only, 0 otherwise.
func (r *Result) ExitCode() int {
	switch {
	case r.HasErrors():
		return 2
	case r.HasWarnings():
		return 1
	default:
		return 0
	}
}

// sortIssues orders issues by file, then line, then rule.
func sortIssues(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Rule, b.Rule),
		)
	})
}

// Target is the site a linter run inspects.
type Target struct {
	Config  *config.Config
	Docs    *docs.Set
	Plugins *plugin.Set

	pages []Page
}

// Rule defines a linting check over the whole site.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check inspects the target and returns any issues found.
	Check(t *Target) ([]Issue, error)
}

// Config contains configuration for the linter.
type Config struct {
	// Quiet suppresses warnings and info, only showing errors.
	Quiet bool

	// Format specifies output format (text, json).
	Format string
}
