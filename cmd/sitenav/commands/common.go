package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/foundation/normalization"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/metrics"
)

// EnvLogLevel selects the log level when --verbose is not given.
const EnvLogLevel = "SITENAV_LOG_LEVEL"

// Global carries state shared by all subcommands.
type Global struct {
	Logger   *slog.Logger
	Out      io.Writer
	Registry *prom.Registry
	Recorder metrics.Recorder
}

// NewGlobal prepares shared state. A Prometheus registry is only created
// when a metrics file was requested.
func NewGlobal(cli *CLI, out io.Writer) *Global {
	g := &Global{Logger: slog.Default(), Out: out, Recorder: metrics.NoopRecorder{}}
	if cli.MetricsFile != "" {
		g.Registry = prom.NewRegistry()
		g.Recorder = metrics.NewPrometheusRecorder(g.Registry)
	}
	return g
}

// Flush writes the metrics file if one was requested.
func (g *Global) Flush(cli *CLI) error {
	if g.Registry == nil || cli.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(cli.MetricsFile, g.Registry); err != nil {
		return err
	}
	slog.Debug("Metrics written", logfields.Path(cli.MetricsFile))
	return nil
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path (.yaml or .toml)" default:"sitenav.yaml" env:"SITENAV_CONFIG"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics to this file on exit"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve the navigation and print the menu"`
	Validate ValidateCmd `cmd:"" help:"Check the configuration and report every navigation problem"`
	Build    BuildCmd    `cmd:"" help:"Write the resolved menu and optionally run the site build"`
	Init     InitCmd     `cmd:"" help:"Write a starter configuration file"`
	Lint     LintCmd     `cmd:"" help:"Lint the documentation against the configuration"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild the menu whenever the configuration or docs change"`
	Diff     DiffCmd     `cmd:"" help:"Show how another configuration copy diverges from this one"`
}

var logLevels = normalization.NewNormalizer(map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}, slog.LevelInfo)

// parseLogLevel honours --verbose first, then SITENAV_LOG_LEVEL.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return logLevels.Normalize(os.Getenv(EnvLogLevel))
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// ExitCode is returned by commands that finished but must signal a
// non-zero status, such as lint warnings. It carries no message.
type ExitCode int

func (e ExitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	slog.Debug("Configuration loaded", logfields.Path(root.Config), logfields.Count(len(cfg.Theme.Sidebar)))
	return cfg, nil
}
