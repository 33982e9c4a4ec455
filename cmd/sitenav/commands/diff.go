package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/configdiff"
)

// DiffCmd implements the 'diff' command. The --config file is authoritative.
type DiffCmd struct {
	Other string `arg:"" help:"Configuration copy to compare against" type:"path"`
}

func (d *DiffCmd) Run(g *Global, root *CLI) error {
	authoritative, err := loadConfig(root)
	if err != nil {
		return err
	}
	other, err := config.Load(d.Other)
	if err != nil {
		return err
	}

	report, err := configdiff.Compare(authoritative, other, root.Config, d.Other)
	if err != nil {
		return err
	}
	if report.Equal() {
		_, err := fmt.Fprintf(g.Out, "%s and %s agree\n", root.Config, d.Other)
		return err
	}
	for _, diff := range report.Differences {
		if _, err := fmt.Fprintln(g.Out, diff.String()); err != nil {
			return err
		}
	}
	if report.SidebarDiff != "" {
		if _, err := fmt.Fprintf(g.Out, "\n%s", report.SidebarDiff); err != nil {
			return err
		}
	}
	return ExitCode(1)
}
