// Package config loads and validates the site configuration: metadata, theme
// navigation, plugin registrations and the bundler that builds the site.
package config

import (
	"path/filepath"

	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Default values applied by Load.
const (
	DefaultLang         = "en-US"
	DefaultDocsDir      = "docs"
	DefaultOutputDir    = "./site"
	DefaultSidebarDepth = 2
	DefaultBuildCommand = "npx vuepress build"
	DefaultConfigName   = "sitenav.yaml"
)

// Config represents the site configuration.
type Config struct {
	Lang          string         `yaml:"lang"`
	Title         string         `yaml:"title"`
	Description   string         `yaml:"description,omitempty"`
	Theme         ThemeConfig    `yaml:"theme"`
	Plugins       []PluginConfig `yaml:"plugins,omitempty"`
	Bundler       Bundler        `yaml:"bundler"`
	ServiceWorker bool           `yaml:"service_worker,omitempty"`
	Docs          DocsConfig     `yaml:"docs"`
	Output        OutputConfig   `yaml:"output"`
	Build         BuildConfig    `yaml:"build,omitempty"`

	path string
}

// ThemeConfig holds the default theme options, including the navigation.
type ThemeConfig struct {
	ColorMode       ColorMode  `yaml:"color_mode,omitempty"`
	ColorModeSwitch *bool      `yaml:"color_mode_switch,omitempty"`
	Navbar          []nav.Item `yaml:"navbar,omitempty"`
	Sidebar         nav.Tree   `yaml:"sidebar"`
	SidebarDepth    *int       `yaml:"sidebar_depth,omitempty"`
	SmoothScroll    bool       `yaml:"smooth_scroll,omitempty"`
}

// Depth returns the sidebar heading depth, DefaultSidebarDepth when unset.
func (t ThemeConfig) Depth() int {
	if t.SidebarDepth == nil {
		return DefaultSidebarDepth
	}
	return *t.SidebarDepth
}

// SwitchEnabled reports whether readers may toggle the color mode. Defaults to true.
func (t ThemeConfig) SwitchEnabled() bool {
	return t.ColorModeSwitch == nil || *t.ColorModeSwitch
}

// PluginConfig is one plugin registration. Options are plugin specific.
type PluginConfig struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
}

// DocsConfig locates the markdown sources.
type DocsConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// BuildConfig controls the external site generator invocation.
type BuildConfig struct {
	Command string `yaml:"command,omitempty"` // Defaults to "npx vuepress build <docs.dir>"
	Run     bool   `yaml:"run,omitempty"`
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string { return c.path }

// BaseDir is the directory relative paths in the configuration are resolved against.
func (c *Config) BaseDir() string {
	if c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}

// ResolvePath makes p absolute relative to BaseDir. Absolute paths are returned cleaned.
func (c *Config) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.BaseDir(), p)
}

// DocsDir returns the docs root on disk.
func (c *Config) DocsDir() string { return c.ResolvePath(c.Docs.Dir) }

// OutputDir returns the output directory on disk.
func (c *Config) OutputDir() string { return c.ResolvePath(c.Output.Directory) }

// BuildCommand returns the generator command line, applying the default.
func (c *Config) BuildCommand() string {
	if c.Build.Command != "" {
		return c.Build.Command
	}
	return DefaultBuildCommand + " " + c.Docs.Dir
}

// Plugin returns the first registration with the given name.
func (c *Config) Plugin(name string) (PluginConfig, bool) {
	for _, p := range c.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return PluginConfig{}, false
}
