package lint

import (
	"fmt"
	"maps"
	"net/url"
	"path"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/markdown"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Rule identifiers.
const (
	RuleSidebarLink       = "sidebar-link"
	RuleContainerType     = "container-type"
	RuleComponent         = "component"
	RuleComponentTemplate = "component-template"
	RuleOrphanPage        = "orphan-page"
	RuleBrokenLink        = "broken-link"
)

// SidebarLinkRule reports every navigation entry that would abort the build.
type SidebarLinkRule struct{}

func (SidebarLinkRule) Name() string { return RuleSidebarLink }

func (SidebarLinkRule) Check(t *Target) ([]Issue, error) {
	theme := t.Config.Theme
	var issues []Issue
	for _, problem := range nav.Audit(theme.Navbar, theme.Sidebar, t.Docs) {
		issue := Issue{
			File:     t.Config.Path(),
			Severity: SeverityError,
			Rule:     RuleSidebarLink,
			Message:  problem.Error(),
		}
		if ce, ok := ferrors.AsClassified(problem); ok {
			issue.Message = ce.Message()
			issue.Explanation = explain(ce.Context())
		}
		if path, ok := ferrors.ContextString(problem, "path"); ok {
			issue.Fix = fmt.Sprintf("Create the document for %s or correct the entry", path)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// ContainerTypeRule flags "::: type" blocks no plugin registers.
type ContainerTypeRule struct{}

func (ContainerTypeRule) Name() string { return RuleContainerType }

func (ContainerTypeRule) Check(t *Target) ([]Issue, error) {
	pages, err := t.Pages()
	if err != nil {
		return nil, err
	}
	var issues []Issue
	for _, p := range pages {
		for _, c := range markdown.Containers(p.Body) {
			if t.Plugins.HasContainer(c.Type) {
				continue
			}
			issues = append(issues, Issue{
				File:        p.Doc.Path,
				Line:        p.Offset + c.Line,
				Severity:    SeverityWarning,
				Rule:        RuleContainerType,
				Message:     fmt.Sprintf("Unknown container type %q", c.Type),
				Explanation: "Known types: " + strings.Join(t.Plugins.ContainerTypes(), ", "),
				Fix:         fmt.Sprintf("Register it with the container plugin (type: %s)", c.Type),
			})
		}
	}
	return issues, nil
}

// ComponentRule flags component tags that are not globally registered.
type ComponentRule struct{}

func (ComponentRule) Name() string { return RuleComponent }

func (ComponentRule) Check(t *Target) ([]Issue, error) {
	pages, err := t.Pages()
	if err != nil {
		return nil, err
	}
	var issues []Issue
	for _, p := range pages {
		for _, c := range markdown.Components(p.Body) {
			if t.Plugins.HasComponent(c.Name) {
				continue
			}
			issues = append(issues, Issue{
				File:     p.Doc.Path,
				Line:     p.Offset + c.Line,
				Severity: SeverityWarning,
				Rule:     RuleComponent,
				Message:  fmt.Sprintf("Component <%s> is not registered", c.Name),
				Fix:      fmt.Sprintf("Add %s.vue to the register-components directory", c.Name),
			})
		}
	}
	return issues, nil
}

// ComponentTemplateRule flags registered single-file components without a template.
type ComponentTemplateRule struct{}

func (ComponentTemplateRule) Name() string { return RuleComponentTemplate }

func (ComponentTemplateRule) Check(t *Target) ([]Issue, error) {
	var issues []Issue
	for _, c := range t.Plugins.Components() {
		if c.BuiltIn || c.HasTemplate {
			continue
		}
		issues = append(issues, Issue{
			File:     c.Path,
			Severity: SeverityWarning,
			Rule:     RuleComponentTemplate,
			Message:  fmt.Sprintf("Component %s has no <template> block", c.Name),
		})
	}
	return issues, nil
}

// OrphanPageRule reports documents neither the navbar nor the sidebar links to.
type OrphanPageRule struct{}

func (OrphanPageRule) Name() string { return RuleOrphanPage }

func (OrphanPageRule) Check(t *Target) ([]Issue, error) {
	theme := t.Config.Theme
	menu, _ := nav.AuditSite(theme.Navbar, theme.Sidebar, theme.Depth(), t.Docs)
	linked := make(map[string]bool)
	for _, route := range nav.References(menu) {
		linked[route] = true
	}

	var issues []Issue
	for _, d := range t.Docs.Documents() {
		if linked[d.Route] || d.Route == "/" {
			continue
		}
		file := d.Path
		if file == "" {
			file = d.Source
		}
		issues = append(issues, Issue{
			File:     file,
			Severity: SeverityInfo,
			Rule:     RuleOrphanPage,
			Message:  fmt.Sprintf("Page %s is not linked from the navigation", d.Route),
		})
	}
	return issues, nil
}

// BrokenLinkRule flags links between pages whose target document does not exist.
type BrokenLinkRule struct{}

func (BrokenLinkRule) Name() string { return RuleBrokenLink }

func (BrokenLinkRule) Check(t *Target) ([]Issue, error) {
	pages, err := t.Pages()
	if err != nil {
		return nil, err
	}
	var issues []Issue
	for _, p := range pages {
		for _, link := range markdown.ExtractLinks(p.Body) {
			if link.Kind != markdown.LinkKindInline {
				continue
			}
			target, ok := pageTarget(p.Doc.Route, link.Destination)
			if !ok {
				continue
			}
			if _, found := t.Docs.Lookup(target); found {
				continue
			}
			issues = append(issues, Issue{
				File:     p.Doc.Path,
				Severity: SeverityWarning,
				Rule:     RuleBrokenLink,
				Message:  fmt.Sprintf("Link %s does not resolve to a document", link.Destination),
				Fix:      fmt.Sprintf("Point the link at an existing page (resolved as %s)", target),
			})
		}
	}
	return issues, nil
}

// pageTarget resolves a link found on the page at route to a site path.
// External links, fragments and links to static assets are not page targets.
func pageTarget(route, dest string) (string, bool) {
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case "", ".md", ".html":
	default:
		return "", false
	}
	if strings.HasPrefix(u.Path, "/") {
		return u.Path, true
	}
	base := route
	if !strings.HasSuffix(base, "/") {
		base = path.Dir(base) + "/"
	}
	target := path.Join(base, u.Path)
	if strings.HasSuffix(u.Path, "/") && !strings.HasSuffix(target, "/") {
		target += "/"
	}
	return target, true
}

func explain(ctx ferrors.ErrorContext) string {
	var lines []string
	for _, k := range slices.Sorted(maps.Keys(ctx)) {
		lines = append(lines, fmt.Sprintf("%s: %v", k, ctx[k]))
	}
	return strings.Join(lines, "\n")
}
