package commands

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/generator"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `default:"500ms" help:"Quiet period before rebuilding"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	rebuild := func(ctx context.Context) error {
		current, err := config.Load(root.Config)
		if err != nil {
			return err
		}
		report, err := generator.New(current, generator.WithRecorder(g.Recorder)).Generate(ctx)
		if err != nil {
			return err
		}
		slog.Info("Menu rebuilt", logfields.RunID(report.RunID), logfields.Count(report.MenuEntries))
		return nil
	}

	// A broken initial state is reported but does not stop watching.
	if err := rebuild(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	watcher, err := watch.New(root.Config, cfg.DocsDir(), w.Debounce, rebuild)
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}
