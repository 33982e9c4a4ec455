package lint

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// Linter performs linting operations on a site.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// NewLinter creates a linter running every built-in rule.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}
	return &Linter{
		cfg: cfg,
		rules: []Rule{
			SidebarLinkRule{},
			ContainerTypeRule{},
			ComponentRule{},
			ComponentTemplateRule{},
			OrphanPageRule{},
			BrokenLinkRule{},
		},
	}
}

// Rules returns the names of the rules the linter applies.
func (l *Linter) Rules() []string {
	names := make([]string, 0, len(l.rules))
	for _, r := range l.rules {
		names = append(names, r.Name())
	}
	return names
}

// Lint applies all rules to the target.
func (l *Linter) Lint(t *Target) (*Result, error) {
	start := time.Now()
	result := &Result{Issues: []Issue{}, FilesTotal: t.Docs.Len()}

	for _, rule := range l.rules {
		issues, err := rule.Check(t)
		if err != nil {
			return nil, err
		}
		for _, issue := range issues {
			if l.cfg.Quiet && issue.Severity != SeverityError {
				continue
			}
			result.Issues = append(result.Issues, issue)
		}
	}
	sortIssues(result.Issues)

	slog.Debug("Lint finished",
		logfields.Count(len(result.Issues)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return result, nil
}
