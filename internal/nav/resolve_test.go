package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitenav/internal/docs"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

func courseDocs(t *testing.T) *docs.Set {
	t.Helper()
	set, err := docs.NewSet(
		docs.Document{Source: "b-fundamentals/01-variables-and-datatypes/README.md", Title: "Variables and Datatypes"},
		docs.Document{Source: "b-fundamentals/02-operators/README.md", Title: "Operators"},
		docs.Document{Source: "c-object-oriented-thinking/README.md", Title: "Object Oriented Thinking"},
		docs.Document{Source: "c-object-oriented-thinking/01-abstraction/README.md"},
		docs.Document{Source: "y-standard-library/std-vector/README.md", Title: "std::vector"},
	)
	require.NoError(t, err)
	return set
}

func requireConfigError(t *testing.T, err error, key, value string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig), "expected config error, got %v", err)
	got, ok := ferrors.ContextString(err, key)
	require.True(t, ok, "missing context %q in %v", key, err)
	require.Equal(t, value, got)
}

func TestResolve_PreservesChildOrder(t *testing.T) {
	tree := Tree{{
		Text: "Fundamentals",
		Children: []Item{
			Page("/b-fundamentals/01-variables-and-datatypes/"),
			Page("/b-fundamentals/02-operators/"),
		},
	}}

	entries, err := Resolve(tree, courseDocs(t))
	require.NoError(t, err)
	require.Equal(t, []Entry{{
		Text: "Fundamentals",
		Children: []Entry{
			{Text: "Variables and Datatypes", Link: "/b-fundamentals/01-variables-and-datatypes/", Source: "b-fundamentals/01-variables-and-datatypes/README.md"},
			{Text: "Operators", Link: "/b-fundamentals/02-operators/", Source: "b-fundamentals/02-operators/README.md"},
		},
	}}, entries)
}

func TestResolve_MissingPage(t *testing.T) {
	tree := Tree{{
		Text:     "Broken",
		Children: []Item{Page("/b-fundamentals/02-operators/"), Page("/missing/page/"), Page("/also/missing/")},
	}}
	_, err := Resolve(tree, courseDocs(t))
	requireConfigError(t, err, "path", "/missing/page/")
	require.Contains(t, err.Error(), "/missing/page/")

	section, _ := ferrors.ContextString(err, "section")
	require.Equal(t, "Broken", section)
}

func TestResolve_ExternalLinks(t *testing.T) {
	t.Run("absolute URL resolves", func(t *testing.T) {
		tree := Tree{{
			Text:     "References",
			Children: []Item{External("https://www.stroustrup.com/bs_faq2.html", "Bjarne Stroustrups C++ Style and Technique FAQ")},
		}}
		entries, err := Resolve(tree, courseDocs(t))
		require.NoError(t, err)
		require.Equal(t, Entry{
			Text:     "Bjarne Stroustrups C++ Style and Technique FAQ",
			Link:     "https://www.stroustrup.com/bs_faq2.html",
			External: true,
		}, entries[0].Children[0])
	})

	malformed := []string{"www.stroustrup.com/bs_faq2.html", "https://", "http:///path", "not a url", ""}
	for _, raw := range malformed {
		t.Run("rejects "+raw, func(t *testing.T) {
			tree := Tree{{Text: "References", Children: []Item{External(raw, "FAQ")}}}
			_, err := Resolve(tree, courseDocs(t))
			requireConfigError(t, err, "url", raw)
		})
	}

	t.Run("mailto is absolute", func(t *testing.T) {
		tree := Tree{{Text: "Contact", Children: []Item{External("mailto:lecturer@example.org", "Mail")}}}
		_, err := Resolve(tree, courseDocs(t))
		require.NoError(t, err)
	})

	t.Run("missing text", func(t *testing.T) {
		tree := Tree{{Text: "References", Children: []Item{External("https://isocpp.org", " ")}}}
		_, err := Resolve(tree, courseDocs(t))
		requireConfigError(t, err, "url", "https://isocpp.org")
	})
}

func TestResolve_StructuralChecks(t *testing.T) {
	set := courseDocs(t)

	t.Run("duplicate sibling labels", func(t *testing.T) {
		tree := Tree{
			{Text: "Fundamentals", Children: []Item{Page("/b-fundamentals/02-operators/")}},
			{Text: "Fundamentals", Children: []Item{Page("/b-fundamentals/02-operators/")}},
		}
		_, err := Resolve(tree, set)
		requireConfigError(t, err, "section", "Fundamentals")
	})

	t.Run("earlier missing page wins over a later duplicate", func(t *testing.T) {
		tree := Tree{
			{Text: "A", Children: []Item{Page("/missing/page/")}},
			{Text: "B", Children: []Item{Page("/b-fundamentals/02-operators/")}},
			{Text: "B", Children: []Item{Page("/b-fundamentals/02-operators/")}},
		}
		_, err := Resolve(tree, set)
		requireConfigError(t, err, "path", "/missing/page/")
	})

	t.Run("earlier missing page wins over a later duplicate group", func(t *testing.T) {
		extra := Section{Text: "Extra", Children: []Item{Page("/b-fundamentals/02-operators/")}}
		tree := Tree{{Text: "A", Children: []Item{Page("/missing/page/"), Group(extra), Group(extra)}}}
		_, err := Resolve(tree, set)
		requireConfigError(t, err, "path", "/missing/page/")
	})

	t.Run("same label under different parents is fine", func(t *testing.T) {
		tree := Tree{
			{Text: "A", Children: []Item{Group(Section{Text: "Extra", Children: []Item{Page("/b-fundamentals/02-operators/")}})}},
			{Text: "B", Children: []Item{Group(Section{Text: "Extra", Children: []Item{Page("/b-fundamentals/02-operators/")}})}},
		}
		_, err := Resolve(tree, set)
		require.NoError(t, err)
	})

	t.Run("empty children", func(t *testing.T) {
		_, err := Resolve(Tree{{Text: "Empty"}}, set)
		requireConfigError(t, err, "section", "Empty")
	})

	t.Run("missing label", func(t *testing.T) {
		_, err := Resolve(Tree{{Children: []Item{Page("/b-fundamentals/02-operators/")}}}, set)
		requireConfigError(t, err, "section", "<unnamed>")
	})

	t.Run("empty item", func(t *testing.T) {
		_, err := Resolve(Tree{{Text: "X", Children: []Item{{}}}}, set)
		requireConfigError(t, err, "section", "X")
	})

	t.Run("nested trail", func(t *testing.T) {
		tree := Tree{{Text: "OOP", Children: []Item{Group(Section{Text: "Deep", Children: []Item{Page("/nope/")}})}}}
		_, err := Resolve(tree, set)
		requireConfigError(t, err, "section", "OOP > Deep")
	})

	t.Run("nil document set", func(t *testing.T) {
		_, err := Resolve(Tree{{Text: "X", Children: []Item{Page("/b-fundamentals/02-operators/")}}}, nil)
		requireConfigError(t, err, "path", "/b-fundamentals/02-operators/")
	})
}

func TestResolve_PageText(t *testing.T) {
	tree := Tree{{
		Text: "Object Oriented Thinking",
		Link: "/c-object-oriented-thinking/",
		Children: []Item{
			{Page: &PageRef{Path: "/c-object-oriented-thinking/README.md", Text: "Overview"}},
			Page("/c-object-oriented-thinking/01-abstraction/#summary"),
		},
	}}
	entries, err := Resolve(tree, courseDocs(t))
	require.NoError(t, err)
	require.Equal(t, "/c-object-oriented-thinking/", entries[0].Link)
	require.Equal(t, "Overview", entries[0].Children[0].Text)
	require.Equal(t, "/c-object-oriented-thinking/", entries[0].Children[0].Link)
	// Untitled documents fall back to the path as written.
	require.Equal(t, "/c-object-oriented-thinking/01-abstraction/#summary", entries[0].Children[1].Text)
	require.Equal(t, "/c-object-oriented-thinking/01-abstraction/#summary", entries[0].Children[1].Link)
}

func TestResolve_IsDeterministic(t *testing.T) {
	set := courseDocs(t)
	tree := Tree{
		{Text: "Fundamentals", Children: []Item{Page("/b-fundamentals/01-variables-and-datatypes/"), Page("/b-fundamentals/02-operators/")}},
		{Text: "Standard Library", Children: []Item{Page("/y-standard-library/std-vector/")}},
		{Text: "References", Children: []Item{External("https://isocpp.org/faq", "ISO C++ FAQ")}},
	}
	first, err := Resolve(tree, set)
	require.NoError(t, err)
	for range 10 {
		again, err := Resolve(tree, set)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestResolveSite_AndReferences(t *testing.T) {
	set := courseDocs(t)
	navbar := []Item{
		Page("/c-object-oriented-thinking/"),
		External("https://github.com/vives-cpp/course", "GitHub"),
	}
	sidebar := Tree{
		{Text: "Fundamentals", Children: []Item{Page("/b-fundamentals/02-operators/"), Page("/b-fundamentals/02-operators/README.md")}},
	}
	menu, err := ResolveSite(navbar, sidebar, 2, set)
	require.NoError(t, err)
	require.Len(t, menu.Navbar, 2)
	require.True(t, menu.Navbar[1].External)
	require.Equal(t, 2, menu.SidebarDepth)

	require.Equal(t, []string{
		"/b-fundamentals/02-operators/",
		"/c-object-oriented-thinking/",
	}, References(menu))

	empty, err := ResolveSite(nil, nil, 0, set)
	require.NoError(t, err)
	require.NotNil(t, empty.Navbar)
	require.NotNil(t, empty.Sidebar)
}

func TestAudit_CollectsEveryProblem(t *testing.T) {
	set := courseDocs(t)
	navbar := []Item{Page("/nav/missing/")}
	sidebar := Tree{
		{Text: "Fundamentals", Children: []Item{Page("/missing/one/"), Page("/b-fundamentals/02-operators/"), External("ftp:", "x")}},
		{Text: "Fundamentals", Children: []Item{Page("/missing/two/")}},
		{Text: "Empty"},
	}
	problems := Audit(navbar, sidebar, set)
	require.Len(t, problems, 6)

	var paths []string
	for _, p := range problems {
		require.True(t, ferrors.HasCategory(p, ferrors.CategoryConfig))
		if path, ok := ferrors.ContextString(p, "path"); ok {
			paths = append(paths, path)
		}
	}
	require.Equal(t, []string{"/nav/missing/", "/missing/one/", "/missing/two/"}, paths)

	require.Empty(t, Audit(nil, Tree{{Text: "Ok", Children: []Item{Page("/b-fundamentals/02-operators/")}}}, set))
}

func TestAuditSite_KeepsResolvedEntries(t *testing.T) {
	set := courseDocs(t)
	sidebar := Tree{
		{Text: "Fundamentals", Children: []Item{Page("/missing/one/"), Page("/b-fundamentals/02-operators/")}},
	}
	menu, problems := AuditSite(nil, sidebar, 1, set)
	require.Len(t, problems, 1)
	require.Len(t, menu.Sidebar, 1)
	require.Len(t, menu.Sidebar[0].Children, 1)
	require.Equal(t, "Operators", menu.Sidebar[0].Children[0].Text)
	require.Equal(t, []string{"/b-fundamentals/02-operators/"}, References(menu))
}
