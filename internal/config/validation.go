package config

import (
	"fmt"
	"regexp"
	"strings"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

var pluginNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate returns the first structural problem, or nil.
// Navigation targets are checked later against the discovered documents.
func (c *Config) Validate() error {
	if problems := c.Problems(); len(problems) > 0 {
		return problems[0]
	}
	return nil
}

// Problems lists every structural problem in declaration order.
func (c *Config) Problems() []error {
	var problems []error
	add := func(field, msg string, value any, cause error) {
		b := ferrors.ConfigError(msg).WithContext("field", field)
		if value != nil {
			b = b.WithContext("value", value)
		}
		if cause != nil {
			b = b.WithCause(cause)
		}
		problems = append(problems, b.Build())
	}

	if strings.TrimSpace(c.Title) == "" {
		add("title", "site title is required", nil, nil)
	}
	if _, err := ParseBundler(string(c.Bundler)); err != nil {
		add("bundler", "unknown bundler", string(c.Bundler), err)
	}
	if _, err := ParseColorMode(string(c.Theme.ColorMode)); err != nil {
		add("theme.color_mode", "unknown color mode", string(c.Theme.ColorMode), err)
	}
	if c.Theme.SidebarDepth != nil && *c.Theme.SidebarDepth < 0 {
		add("theme.sidebar_depth", "sidebar depth must not be negative", *c.Theme.SidebarDepth, nil)
	}

	seen := make(map[string]bool)
	for i, p := range c.Plugins {
		field := fmt.Sprintf("plugins[%d].name", i)
		switch {
		case strings.TrimSpace(p.Name) == "":
			add(field, "plugin name is required", nil, nil)
		case !pluginNamePattern.MatchString(p.Name):
			add(field, "plugin name must be lowercase words joined by hyphens", p.Name, nil)
		case seen[p.Name] && p.Name != "container":
			// container may be registered once per custom block type
			add(field, "plugin registered twice", p.Name, nil)
		}
		seen[p.Name] = true
	}
	return problems
}
