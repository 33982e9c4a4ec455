package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitenav/internal/generator"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Override output.directory"`
	Run    bool   `help:"Run build.command after writing the menu (same as build.run: true)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Run {
		cfg.Build.Run = true
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := generator.New(cfg, generator.WithRecorder(g.Recorder)).Generate(ctx)
	if err != nil {
		return err
	}
	slog.Debug("Build report", slog.Any("stages", report.StageDurations))
	_, err = fmt.Fprintf(g.Out, "Wrote %d menu entries for %d documents to %s (run %s)\n",
		report.MenuEntries, report.Documents, cfg.OutputDir(), report.RunID)
	return err
}
