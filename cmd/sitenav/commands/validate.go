package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitenav/internal/docs"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/nav"
	"git.home.luguber.info/inful/sitenav/internal/plugin"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	set, err := docs.Discover(cfg.DocsDir())
	if err != nil {
		return err
	}
	if _, err := plugin.Load(cfg.Plugins, cfg.BaseDir()); err != nil {
		return err
	}

	problems := nav.Audit(cfg.Theme.Navbar, cfg.Theme.Sidebar, set)
	if len(problems) == 0 {
		_, err := fmt.Fprintf(g.Out, "%s is valid (%d documents)\n", root.Config, set.Len())
		return err
	}

	adapter := ferrors.NewCLIErrorAdapter(false, g.Logger)
	for _, p := range problems {
		if _, err := fmt.Fprintln(g.Out, adapter.FormatError(p)); err != nil {
			return err
		}
	}
	return ferrors.ConfigError(fmt.Sprintf("navigation has %d problem(s)", len(problems))).
		WithContext("path", root.Config).
		WithCause(problems[0]).
		Build()
}
