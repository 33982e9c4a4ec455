package plugin

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// ComponentsHandler registers every .vue file under a directory as a global component.
type ComponentsHandler struct{}

type componentsOptions struct {
	ComponentsDir string `yaml:"components_dir"`
}

func (ComponentsHandler) Name() string { return "register-components" }

func (ComponentsHandler) Apply(options map[string]any, env Env, set *Set) error {
	var opts componentsOptions
	if err := decodeOptions(options, &opts); err != nil {
		return err
	}
	if opts.ComponentsDir == "" {
		return ferrors.ConfigError("register-components plugin requires components_dir").
			WithContext("field", "components_dir").
			Build()
	}
	dir := opts.ComponentsDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(env.BaseDir, dir)
	}

	components, err := ScanComponents(dir)
	if err != nil {
		return err
	}
	for _, c := range components {
		set.AddComponent(c)
	}
	slog.Debug("Registered components", logfields.Path(dir), logfields.Count(len(components)))
	return nil
}

// ScanComponents walks dir for .vue files. The component name is the path
// relative to dir without extension, separators replaced by "-".
// A missing directory yields no components.
func ScanComponents(dir string) ([]Component, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Components directory does not exist", logfields.Path(dir))
		return nil, nil
	}

	var out []Component
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".vue") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		hasTemplate, err := fileHasTemplate(path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
		name = strings.ReplaceAll(name, "/", "-")
		slog.Debug("Found component", logfields.Component(name), logfields.File(rel))
		out = append(out, Component{Name: name, Path: path, HasTemplate: hasTemplate})
		return nil
	})
	if err != nil {
		return nil, ferrors.FileSystemError("failed to scan components directory").
			WithContext("path", dir).
			WithCause(err).
			Build()
	}
	return out, nil
}

func fileHasTemplate(path string) (bool, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from walking the configured components directory
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()
	return hasTemplate(f)
}

// hasTemplate reports whether a single-file component declares a <template> block.
func hasTemplate(r io.Reader) (bool, error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return false, nil
			}
			return false, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "template" {
				return true, nil
			}
		}
	}
}
