package docs

import (
	"path"
	"strings"
)

// RouteFor maps a source file path (relative to the docs root) to its site route.
//
//	README.md          -> /
//	a/README.md        -> /a/
//	a/index.md         -> /a/
//	a/page.md          -> /a/page.html
func RouteFor(source string) string {
	source = strings.TrimPrefix(path.Clean("/"+filepathToSlash(source)), "/")
	dir, base := path.Split(source)
	if isIndexFile(base) {
		return "/" + dir
	}
	return "/" + dir + strings.TrimSuffix(base, path.Ext(base)) + ".html"
}

// Canonical normalizes a navigation page path to the route key used by Set.
// Fragments and query strings are dropped; relative paths are taken from the
// site root. Every spelling accepted for one document yields the same key:
//
//	/a/  /a/README.md  /a/index.md        -> /a/
//	/a/b /a/b.md       /a/b.html          -> /a/b.html
func Canonical(link string) string {
	if i := strings.IndexAny(link, "#?"); i >= 0 {
		link = link[:i]
	}
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	trailing := strings.HasSuffix(link, "/")
	clean := path.Clean("/" + strings.TrimPrefix(link, "./"))
	if clean == "/" {
		return "/"
	}
	if trailing {
		return clean + "/"
	}
	dir, base := path.Split(clean)
	if isIndexFile(base) {
		return dir
	}
	switch strings.ToLower(path.Ext(base)) {
	case ".md":
		return dir + strings.TrimSuffix(base, path.Ext(base)) + ".html"
	case ".html":
		return clean
	case "":
		return clean + ".html"
	default:
		return clean
	}
}

// Fragment returns the "#..." suffix of link, if any.
func Fragment(link string) string {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		return link[i:]
	}
	return ""
}

func isIndexFile(base string) bool {
	return strings.EqualFold(base, "README.md") || strings.EqualFold(base, "index.md")
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
