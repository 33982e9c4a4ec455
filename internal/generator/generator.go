// Package generator turns a site configuration into the render-ready menu files
// the site generator consumes, and optionally runs the generator's build.
package generator

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/docs"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/metrics"
	"git.home.luguber.info/inful/sitenav/internal/nav"
	"git.home.luguber.info/inful/sitenav/internal/plugin"
)

// EnvRunBundler forces the build command to run when set to "1".
const EnvRunBundler = "SITENAV_RUN_BUNDLER"

// Output file names written into the output directory.
const (
	NavbarFile  = "navbar.json"
	SidebarFile = "sidebar.json"
	SiteFile    = "site.json"
)

// Stage names used for timing.
const (
	StageDiscover = "discover"
	StagePlugins  = "plugins"
	StageResolve  = "resolve"
	StageWrite    = "write"
	StageRender   = "render"
)

// Site is a configuration resolved against its documents.
type Site struct {
	Config  *config.Config
	Docs    *docs.Set
	Plugins *plugin.Set
	Menu    *nav.Menu
}

// Report summarizes one generation run.
type Report struct {
	RunID          string
	Start          time.Time
	Duration       time.Duration
	Documents      int
	MenuEntries    int
	Files          []string
	Rendered       bool
	StageDurations map[string]time.Duration
}

// Generator runs the resolve and write pipeline for one configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	renderer Renderer
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithRenderer replaces the build command runner.
func WithRenderer(r Renderer) Option {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// New creates a generator. By default the configured build command renders the site.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		renderer: CommandRenderer{Command: cfg.BuildCommand()},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resolve discovers documents, loads plugins and resolves the menu.
func (g *Generator) Resolve(_ context.Context) (*Site, error) {
	return g.resolve(nil)
}

func (g *Generator) resolve(stages map[string]time.Duration) (*Site, error) {
	site := &Site{Config: g.cfg}

	err := g.stage(stages, StageDiscover, func() error {
		set, err := docs.Discover(g.cfg.DocsDir())
		site.Docs = set
		return err
	})
	if err != nil {
		return nil, err
	}
	g.recorder.SetDocuments(site.Docs.Len())

	err = g.stage(stages, StagePlugins, func() error {
		set, err := plugin.Load(g.cfg.Plugins, g.cfg.BaseDir())
		site.Plugins = set
		return err
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = g.stage(stages, StageResolve, func() error {
		theme := g.cfg.Theme
		menu, err := nav.ResolveSite(theme.Navbar, theme.Sidebar, theme.Depth(), site.Docs)
		site.Menu = menu
		return err
	})
	g.recorder.ObserveResolveDuration(time.Since(start))
	g.recorder.IncResolveOutcome(metrics.OutcomeFor(err))
	if err != nil {
		return nil, err
	}
	g.recorder.SetMenuEntries(CountEntries(site.Menu))
	return site, nil
}

// Generate resolves the menu, writes the output files and, when enabled, runs
// the build command. Any failing step aborts the run.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:          uuid.NewString(),
		Start:          time.Now(),
		StageDurations: make(map[string]time.Duration),
	}
	log := slog.With(logfields.RunID(report.RunID))
	log.Info("Generation started", logfields.Path(g.cfg.Path()))

	site, err := g.resolve(report.StageDurations)
	if err != nil {
		log.Error("Generation failed", logfields.Error(err))
		return nil, err
	}
	report.Documents = site.Docs.Len()
	report.MenuEntries = CountEntries(site.Menu)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = g.stage(report.StageDurations, StageWrite, func() error {
		files, werr := Write(g.cfg.OutputDir(), site)
		report.Files = files
		return werr
	})
	if err != nil {
		log.Error("Generation failed", logfields.Error(err))
		return nil, err
	}

	if g.shouldRender() {
		err = g.stage(report.StageDurations, StageRender, func() error {
			return g.renderer.Execute(ctx, g.cfg.BaseDir())
		})
		if err != nil {
			return nil, ferrors.BuildError("site build failed").
				WithContext("command", g.cfg.BuildCommand()).
				WithContext("run_id", report.RunID).
				WithCause(err).
				Build()
		}
		report.Rendered = true
	}

	report.Duration = time.Since(report.Start)
	log.Info("Generation finished",
		logfields.Count(report.MenuEntries),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

func (g *Generator) shouldRender() bool {
	return g.cfg.Build.Run || os.Getenv(EnvRunBundler) == "1"
}

func (g *Generator) stage(durations map[string]time.Duration, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	d := time.Since(start)
	g.recorder.ObserveStageDuration(name, d)
	if durations != nil {
		durations[name] = d
	}
	slog.Debug("Stage finished", slog.String("stage", name), logfields.DurationMS(float64(d.Microseconds())/1000))
	return err
}

// CountEntries counts every entry of the menu, nested ones included.
func CountEntries(m *nav.Menu) int {
	if m == nil {
		return 0
	}
	var count func([]nav.Entry) int
	count = func(entries []nav.Entry) int {
		n := len(entries)
		for _, e := range entries {
			n += count(e.Children)
		}
		return n
	}
	return count(m.Navbar) + count(m.Sidebar)
}

// siteData is the theme and plugin metadata written to site.json.
type siteData struct {
	Lang            string          `json:"lang"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Bundler         string          `json:"bundler"`
	ServiceWorker   bool            `json:"serviceWorker"`
	ColorMode       string          `json:"colorMode"`
	ColorModeSwitch bool            `json:"colorModeSwitch"`
	SidebarDepth    int             `json:"sidebarDepth"`
	SmoothScroll    bool            `json:"smoothScroll"`
	Plugins         []pluginData    `json:"plugins"`
	Containers      []string        `json:"containers"`
	Components      []componentData `json:"components"`
	DocsHash        string          `json:"docsHash"`
}

type pluginData struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options,omitempty"`
}

type componentData struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// Write renders the site's menu and metadata into dir and returns the written paths.
func Write(dir string, site *Site) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, ferrors.FileSystemError("failed to create output directory").
			WithContext("path", dir).
			WithCause(err).
			Build()
	}

	cfg := site.Config
	data := siteData{
		Lang:            cfg.Lang,
		Title:           cfg.Title,
		Description:     cfg.Description,
		Bundler:         string(cfg.Bundler),
		ServiceWorker:   cfg.ServiceWorker,
		ColorMode:       string(cfg.Theme.ColorMode),
		ColorModeSwitch: cfg.Theme.SwitchEnabled(),
		SidebarDepth:    site.Menu.SidebarDepth,
		SmoothScroll:    cfg.Theme.SmoothScroll,
		Plugins:         []pluginData{},
		Containers:      site.Plugins.ContainerTypes(),
		Components:      []componentData{},
		DocsHash:        site.Docs.Hash(),
	}
	for _, p := range cfg.Plugins {
		data.Plugins = append(data.Plugins, pluginData{Name: p.Name, Options: p.Options})
	}
	for _, c := range site.Plugins.Components() {
		cd := componentData{Name: c.Name}
		if c.Path != "" {
			if rel, err := filepath.Rel(cfg.BaseDir(), c.Path); err == nil {
				cd.Path = filepath.ToSlash(rel)
			}
		}
		data.Components = append(data.Components, cd)
	}

	outputs := []struct {
		name  string
		value any
	}{
		{NavbarFile, site.Menu.Navbar},
		{SidebarFile, site.Menu.Sidebar},
		{SiteFile, data},
	}
	var written []string
	for _, o := range outputs {
		path := filepath.Join(dir, o.name)
		if err := writeJSON(path, o.value); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return ferrors.InternalError("failed to encode output").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ferrors.FileSystemError("failed to write output file").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	return nil
}
