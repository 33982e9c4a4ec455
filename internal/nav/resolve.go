package nav

import (
	"net/url"
	"slices"
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/docs"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

// DocumentSet is the set of known documents a navigation tree is checked against.
type DocumentSet interface {
	Lookup(path string) (docs.Document, bool)
}

// Resolve materializes the sidebar tree. It walks depth-first in declaration
// order and stops at the first problem.
func Resolve(tree Tree, set DocumentSet) ([]Entry, error) {
	r := &resolver{docs: set}
	return r.sections(tree, "")
}

// ResolveItems materializes a flat item list such as the navbar.
func ResolveItems(items []Item, set DocumentSet) ([]Entry, error) {
	r := &resolver{docs: set}
	return r.items(items, "")
}

// ResolveSite resolves the navbar and the sidebar into one menu.
func ResolveSite(navbar []Item, sidebar Tree, sidebarDepth int, set DocumentSet) (*Menu, error) {
	r := &resolver{docs: set}
	nb, err := r.items(navbar, "navbar")
	if err != nil {
		return nil, err
	}
	sb, err := r.sections(sidebar, "")
	if err != nil {
		return nil, err
	}
	if nb == nil {
		nb = []Entry{}
	}
	if sb == nil {
		sb = []Entry{}
	}
	return &Menu{Navbar: nb, Sidebar: sb, SidebarDepth: sidebarDepth}, nil
}

// Audit runs the same checks as ResolveSite but reports every problem
// instead of stopping at the first one.
func Audit(navbar []Item, sidebar Tree, set DocumentSet) []error {
	_, problems := AuditSite(navbar, sidebar, 0, set)
	return problems
}

// AuditSite is Audit that also returns the menu built from every entry
// that did resolve.
func AuditSite(navbar []Item, sidebar Tree, sidebarDepth int, set DocumentSet) (*Menu, []error) {
	r := &resolver{docs: set, collect: true}
	nb, _ := r.items(navbar, "navbar")
	sb, _ := r.sections(sidebar, "")
	return &Menu{Navbar: nb, Sidebar: sb, SidebarDepth: sidebarDepth}, r.problems
}

// References returns the sorted, de-duplicated document routes a menu links to.
func References(m *Menu) []string {
	if m == nil {
		return nil
	}
	seen := map[string]struct{}{}
	var walk func([]Entry)
	walk = func(entries []Entry) {
		for _, e := range entries {
			if !e.External && e.Link != "" {
				seen[docs.Canonical(e.Link)] = struct{}{}
			}
			walk(e.Children)
		}
	}
	walk(m.Navbar)
	walk(m.Sidebar)
	out := make([]string, 0, len(seen))
	for route := range seen {
		out = append(out, route)
	}
	slices.Sort(out)
	return out
}

type resolver struct {
	docs     DocumentSet
	collect  bool
	problems []error
}

// report records err in audit mode and returns it otherwise.
func (r *resolver) report(err error) error {
	if r.collect {
		r.problems = append(r.problems, err)
		return nil
	}
	return err
}

func (r *resolver) sections(tree Tree, trail string) ([]Entry, error) {
	seen := labelSet{}
	out := make([]Entry, 0, len(tree))
	for _, s := range tree {
		if err := r.unique(seen, s.Text, trail); err != nil {
			return nil, err
		}
		e, err := r.section(s, trail)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *resolver) section(s Section, parent string) (Entry, error) {
	label := strings.TrimSpace(s.Text)
	trail := joinTrail(parent, label)
	if label == "" {
		err := ferrors.ConfigError("section has no label").
			WithContext("section", joinTrail(parent, "<unnamed>")).
			Build()
		if err := r.report(err); err != nil {
			return Entry{}, err
		}
	}
	if len(s.Children) == 0 {
		err := ferrors.ConfigError("section has no children").
			WithContext("section", trail).
			Build()
		if err := r.report(err); err != nil {
			return Entry{}, err
		}
	}

	e := Entry{Text: label, Collapsible: s.Collapsible}
	if s.Link != "" {
		landing, _, err := r.page(s.Link, trail)
		if err != nil {
			return Entry{}, err
		}
		e.Link = landing.Link
		e.Source = landing.Source
	}

	children, err := r.items(s.Children, trail)
	if err != nil {
		return Entry{}, err
	}
	e.Children = children
	return e, nil
}

func (r *resolver) items(items []Item, trail string) ([]Entry, error) {
	seen := labelSet{}
	out := make([]Entry, 0, len(items))
	for i, it := range items {
		if it.Group != nil {
			if err := r.unique(seen, it.Group.Text, trail); err != nil {
				return nil, err
			}
		}
		e, ok, err := r.item(it, i, trail)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *resolver) item(it Item, index int, trail string) (Entry, bool, error) {
	switch {
	case it.Group != nil:
		e, err := r.section(*it.Group, trail)
		return e, err == nil, err

	case it.Page != nil:
		e, ok, err := r.page(it.Page.Path, trail)
		if err != nil || !ok {
			return Entry{}, false, err
		}
		if t := strings.TrimSpace(it.Page.Text); t != "" {
			e.Text = t
		}
		return e, true, nil

	case it.External != nil:
		return r.external(*it.External, trail)

	default:
		err := ferrors.ConfigError("navigation entry is empty").
			WithContext("section", trail).
			WithContext("index", index).
			Build()
		return Entry{}, false, r.report(err)
	}
}

// page resolves a page path. In audit mode an unresolved page yields
// ok == false and no error.
func (r *resolver) page(path, trail string) (Entry, bool, error) {
	doc, ok := r.lookup(path)
	if !ok {
		err := ferrors.ConfigError("page path does not resolve to a document").
			WithContext("path", path).
			WithContext("section", trail).
			Build()
		return Entry{}, false, r.report(err)
	}
	text := doc.Title
	if text == "" {
		text = path
	}
	return Entry{
		Text:   text,
		Link:   doc.Route + docs.Fragment(path),
		Source: doc.Source,
	}, true, nil
}

func (r *resolver) lookup(path string) (docs.Document, bool) {
	if r.docs == nil || strings.TrimSpace(path) == "" {
		return docs.Document{}, false
	}
	return r.docs.Lookup(path)
}

func (r *resolver) external(link ExternalLink, trail string) (Entry, bool, error) {
	if !isAbsoluteURI(link.URL) {
		err := ferrors.ConfigError("external link is not an absolute URI").
			WithContext("url", link.URL).
			WithContext("section", trail).
			Build()
		return Entry{}, false, r.report(err)
	}
	text := strings.TrimSpace(link.Text)
	if text == "" {
		err := ferrors.ConfigError("external link has no display text").
			WithContext("url", link.URL).
			WithContext("section", trail).
			Build()
		return Entry{}, false, r.report(err)
	}
	return Entry{Text: text, Link: link.URL, External: true}, true, nil
}

// labelSet holds the section labels already reached among one set of siblings.
type labelSet map[string]struct{}

// unique reports a label that repeats an earlier sibling. It runs as each
// section is reached so problems surface in declaration order.
func (r *resolver) unique(seen labelSet, text, trail string) error {
	label := strings.TrimSpace(text)
	if label == "" {
		return nil
	}
	if _, dup := seen[label]; dup {
		err := ferrors.ConfigError("duplicate section label among siblings").
			WithContext("section", joinTrail(trail, label)).
			Build()
		return r.report(err)
	}
	seen[label] = struct{}{}
	return nil
}

func joinTrail(parent, label string) string {
	if parent == "" {
		return label
	}
	return parent + " > " + label
}

// isAbsoluteURI reports whether raw has a scheme; web links also need a host.
func isAbsoluteURI(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, " \t\n") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	default:
		return u.Opaque != "" || u.Host != "" || u.Path != ""
	}
}
