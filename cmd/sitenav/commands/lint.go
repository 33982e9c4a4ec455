package commands

import (
	"github.com/fatih/color"

	"git.home.luguber.info/inful/sitenav/internal/docs"
	"git.home.luguber.info/inful/sitenav/internal/lint"
	"git.home.luguber.info/inful/sitenav/internal/plugin"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Format  string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet   bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
	NoColor bool   `name:"no-color" help:"Disable colored output"`
}

func (l *LintCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	set, err := docs.Discover(cfg.DocsDir())
	if err != nil {
		return err
	}
	plugins, err := plugin.Load(cfg.Plugins, cfg.BaseDir())
	if err != nil {
		return err
	}

	linter := lint.NewLinter(&lint.Config{Quiet: l.Quiet, Format: l.Format})
	result, err := linter.Lint(&lint.Target{Config: cfg, Docs: set, Plugins: plugins})
	if err != nil {
		return err
	}

	useColor := !l.NoColor && !color.NoColor
	if err := lint.NewFormatter(l.Format, useColor).Format(g.Out, result, cfg.DocsDir()); err != nil {
		return err
	}
	if code := result.ExitCode(); code != 0 {
		return ExitCode(code)
	}
	return nil
}
