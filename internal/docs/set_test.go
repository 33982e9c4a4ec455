package docs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouteFor(t *testing.T) {
	tests := map[string]string{
		"README.md":                "/",
		"index.md":                 "/",
		"a/README.md":              "/a/",
		"a/readme.md":              "/a/",
		"a/index.md":               "/a/",
		"a/b/page.md":              "/a/b/page.html",
		`developer-tools\mingw.md`: "/developer-tools/mingw.html",
	}
	for in, want := range tests {
		require.Equal(t, want, RouteFor(in), in)
	}
}

func TestCanonical(t *testing.T) {
	tests := map[string]string{
		"/b-fundamentals/02-operators/":          "/b-fundamentals/02-operators/",
		"/b-fundamentals/02-operators/README.md": "/b-fundamentals/02-operators/",
		"/b-fundamentals/02-operators/index.md":  "/b-fundamentals/02-operators/",
		"b-fundamentals/02-operators/":           "/b-fundamentals/02-operators/",
		"/a/page":                                "/a/page.html",
		"/a/page.md":                             "/a/page.html",
		"/a/page.html":                           "/a/page.html",
		"/a/page.html#section":                   "/a/page.html",
		"/a/#anchor":                             "/a/",
		"./a/":                                   "/a/",
		"/":                                      "/",
		"":                                       "",
	}
	for in, want := range tests {
		require.Equal(t, want, Canonical(in), in)
	}
}

func TestSet(t *testing.T) {
	set, err := NewSet(
		Document{Source: "b/README.md", Title: "B"},
		Document{Source: "a/page.md", Title: "Page"},
	)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	require.Equal(t, []string{"/a/page.html", "/b/"}, set.Routes())

	doc, ok := set.Lookup("/a/page")
	require.True(t, ok)
	require.Equal(t, "Page", doc.Title)

	_, ok = set.Lookup("/missing/page/")
	require.False(t, ok)

	var nilSet *Set
	_, ok = nilSet.Lookup("/a/")
	require.False(t, ok)
	require.Zero(t, nilSet.Len())
}

func TestSetHash(t *testing.T) {
	a := MustSet(Document{Source: "a/README.md", Title: "A"}, Document{Source: "b.md", Title: "B"})
	b := MustSet(Document{Source: "b.md", Title: "B"}, Document{Source: "a/README.md", Title: "A"})
	require.Equal(t, a.Hash(), b.Hash(), "hash must not depend on input order")

	c := MustSet(Document{Source: "a/README.md", Title: "A renamed"}, Document{Source: "b.md", Title: "B"})
	require.NotEqual(t, a.Hash(), c.Hash())

	require.NotEmpty(t, MustSet().Hash())
}

func TestFragment(t *testing.T) {
	require.Equal(t, "#x", Fragment("/a/#x"))
	require.Empty(t, Fragment("/a/"))
}
