package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/sitenav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/frontmatter"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/markdown"
)

// Discover walks the documentation directory and returns every markdown page
// as a Set. Hidden entries (including the generator's .vuepress directory) and
// node_modules are skipped.
func Discover(root string) (*Set, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.DocsError("documentation directory not found").
				WithContext("path", root).
				WithCause(derrors.ErrDocsPathNotFound).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "stat documentation directory").
			WithContext("path", root).
			Build()
	}
	if !info.IsDir() {
		return nil, ferrors.DocsError("documentation path is not a directory").
			WithContext("path", root).
			WithCause(derrors.ErrDocsPathNotFound).
			Build()
	}

	var documents []Document
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && skipEntry(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsMarkdownFile(d.Name()) {
			return nil
		}
		doc, err := loadDocument(root, path)
		if err != nil {
			return err
		}
		slog.Debug("Discovered document",
			logfields.File(doc.Source),
			logfields.Route(doc.Route),
			slog.String("title", doc.Title))
		documents = append(documents, doc)
		return nil
	})
	if err != nil {
		if ferrors.IsClassified(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrDocsDirWalkFailed, root, err)
	}

	set, err := NewSet(documents...)
	if err != nil {
		return nil, err
	}
	slog.Info("Documentation discovered", logfields.Path(root), logfields.Count(set.Len()))
	return set, nil
}

func loadDocument(root, path string) (Document, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Document{}, err
	}
	rel = filepath.ToSlash(rel)

	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, rel, err)
	}

	return Document{
		Route:  RouteFor(rel),
		Source: rel,
		Title:  documentTitle(rel, content),
		Path:   path,
	}, nil
}

// documentTitle prefers the front matter title and falls back to the first
// level-1 heading. Unreadable front matter is logged and treated as absent.
func documentTitle(rel string, content []byte) string {
	fields, body, err := frontmatter.Read(content)
	if err != nil {
		slog.Warn("Ignoring unreadable front matter", logfields.File(rel), logfields.Error(err))
		_, body, _, _ = frontmatter.Split(content)
		if body == nil {
			body = content
		}
		return markdown.Title(body)
	}
	if t := strings.TrimSpace(frontmatter.Title(fields)); t != "" {
		return t
	}
	return markdown.Title(body)
}

// IsMarkdownFile reports whether name is a markdown page.
func IsMarkdownFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

func skipEntry(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}
