package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/docs"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force    bool   `help:"Overwrite existing configuration file"`
	FromDocs string `name:"from-docs" help:"Generate the sidebar from the chapters in this docs directory" type:"path"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	cfg := config.Example()
	if i.FromDocs != "" {
		set, err := docs.Discover(i.FromDocs)
		if err != nil {
			return err
		}
		sidebar := nav.FromDocuments(set.Documents())
		if len(sidebar) == 0 {
			return ferrors.ConfigError("no chapter directories with documents found").
				WithContext("path", i.FromDocs).
				Build()
		}
		for _, section := range sidebar {
			slog.Debug("Generated section", logfields.Section(section.Text), logfields.Count(len(section.Children)))
		}
		cfg.Theme.Sidebar = sidebar
		cfg.Docs.Dir = docsDirFor(root.Config, i.FromDocs)
	}
	if err := config.Write(root.Config, i.Force, cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.Out, "Wrote configuration to %s\n", root.Config)
	return err
}

// docsDirFor expresses docsDir relative to the directory holding the
// configuration file, which is how docs.dir is resolved on load.
func docsDirFor(configPath, docsDir string) string {
	base, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return docsDir
	}
	abs, err := filepath.Abs(docsDir)
	if err != nil {
		return docsDir
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}
