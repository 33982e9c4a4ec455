package nav

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/sitenav/internal/docs"
)

var (
	chapterPrefix = regexp.MustCompile(`^[a-z]-`)
	orderPrefix   = regexp.MustCompile(`^\d+[-_]`)
)

// FromDocuments builds a sidebar with one section per top-level directory.
// Sections follow directory order; pages within a section follow route order,
// so a directory's own index page comes first. Pages at the docs root
// (including the home page) are not placed in any section.
func FromDocuments(documents []docs.Document) Tree {
	documents = slices.Clone(documents)
	slices.SortFunc(documents, func(a, b docs.Document) int { return strings.Compare(a.Route, b.Route) })

	var tree Tree
	index := map[string]int{}
	labels := map[string]bool{}
	for _, d := range documents {
		top, ok := topLevelDir(d.Route)
		if !ok {
			continue
		}
		i, exists := index[top]
		if !exists {
			i = len(tree)
			index[top] = i
			tree = append(tree, Section{Text: uniqueLabel(labels, top)})
		}
		tree[i].Children = append(tree[i].Children, Page(d.Route))
	}
	return tree
}

// uniqueLabel returns LabelFor(dir), falling back to "Label (dir)" when an
// earlier chapter already took the label, so siblings never collide.
func uniqueLabel(used map[string]bool, dir string) string {
	label := LabelFor(dir)
	if used[label] {
		label = fmt.Sprintf("%s (%s)", label, dir)
	}
	for n := 2; used[label]; n++ {
		label = fmt.Sprintf("%s (%s %d)", LabelFor(dir), dir, n)
	}
	used[label] = true
	return label
}

// LabelFor turns a directory name into a section label:
// "b-fundamentals" becomes "Fundamentals", "02-operators" becomes "Operators".
func LabelFor(dir string) string {
	name := chapterPrefix.ReplaceAllString(dir, "")
	name = orderPrefix.ReplaceAllString(name, "")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = dir
	}
	return cases.Title(language.English).String(name)
}

func topLevelDir(route string) (string, bool) {
	trimmed := strings.TrimPrefix(route, "/")
	i := strings.IndexByte(trimmed, '/')
	if i <= 0 {
		return "", false
	}
	return trimmed[:i], true
}
