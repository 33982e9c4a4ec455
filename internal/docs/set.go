package docs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"

	derrors "git.home.luguber.info/inful/sitenav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

// Document is a markdown page known to the site.
type Document struct {
	Route  string // Canonical site route, e.g. /b-fundamentals/02-operators/
	Source string // Slash-separated path relative to the docs root
	Title  string // Front matter title, else first H1, else empty
	Path   string // Absolute path on disk; empty for in-memory documents
}

// Set is an immutable collection of documents indexed by route.
type Set struct {
	byRoute map[string]Document
	routes  []string
}

// NewSet indexes docs by route. A Document without a Route gets RouteFor(Source).
// Two documents with the same route are a configuration error.
func NewSet(documents ...Document) (*Set, error) {
	s := &Set{byRoute: make(map[string]Document, len(documents))}
	for _, d := range documents {
		if d.Route == "" {
			d.Route = RouteFor(d.Source)
		}
		if prev, exists := s.byRoute[d.Route]; exists {
			return nil, ferrors.ConfigError("two documents map to the same route").
				WithContext("route", d.Route).
				WithContext("first", prev.Source).
				WithContext("second", d.Source).
				WithCause(derrors.ErrRouteCollision).
				Build()
		}
		s.byRoute[d.Route] = d
		s.routes = append(s.routes, d.Route)
	}
	slices.Sort(s.routes)
	return s, nil
}

// MustSet is NewSet for fixed inputs known to be collision free.
func MustSet(documents ...Document) *Set {
	s, err := NewSet(documents...)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup finds the document a navigation page path refers to.
func (s *Set) Lookup(link string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	d, ok := s.byRoute[Canonical(link)]
	return d, ok
}

// Routes returns all routes in sorted order.
func (s *Set) Routes() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.routes)
}

// Documents returns all documents sorted by route.
func (s *Set) Documents() []Document {
	if s == nil {
		return nil
	}
	out := make([]Document, 0, len(s.routes))
	for _, r := range s.routes {
		out = append(out, s.byRoute[r])
	}
	return out
}

// Len returns the number of documents.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.routes)
}

// Hash fingerprints the parts of the set that affect menu resolution
// (routes, sources and titles). Content edits that keep titles unchanged do
// not change the hash.
func (s *Set) Hash() string {
	h := sha256.New()
	if s.Len() == 0 {
		h.Write([]byte("empty-docs-set"))
	}
	for _, d := range s.Documents() {
		fmt.Fprintf(h, "%s|%s|%s\n", d.Route, d.Source, d.Title)
	}
	return hex.EncodeToString(h.Sum(nil))
}
