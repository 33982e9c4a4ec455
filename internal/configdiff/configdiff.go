// Package configdiff reports how two site configurations diverge, so a
// second copy of the configuration can be reconciled with the authoritative one.
package configdiff

import (
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Kind classifies a difference.
type Kind string

const (
	KindField         Kind = "field"           // Scalar setting differs
	KindSectionAdded  Kind = "section-added"   // Section only in the other copy
	KindSectionMissed Kind = "section-missing" // Section only in the authoritative copy
	KindSectionOrder  Kind = "section-order"   // Same sections, different order
	KindSectionBody   Kind = "section-changed" // Same label, different children
	KindPluginAdded   Kind = "plugin-added"
	KindPluginMissed  Kind = "plugin-missing"
)

// Difference is one divergence between the authoritative copy (A) and the other (B).
type Difference struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Subject string `json:"subject" yaml:"subject"`
	A       string `json:"a,omitempty" yaml:"a,omitempty"`
	B       string `json:"b,omitempty" yaml:"b,omitempty"`
}

func (d Difference) String() string {
	switch d.Kind {
	case KindField:
		return fmt.Sprintf("%s: %q != %q", d.Subject, d.A, d.B)
	case KindSectionAdded, KindPluginAdded:
		return fmt.Sprintf("+ %s", d.Subject)
	case KindSectionMissed, KindPluginMissed:
		return fmt.Sprintf("- %s", d.Subject)
	default:
		return fmt.Sprintf("~ %s (%s)", d.Subject, d.Kind)
	}
}

// Report is the outcome of Compare.
type Report struct {
	Differences []Difference
	SidebarDiff string // Unified diff of the sidebars as YAML; empty when equal
}

// Equal reports whether no divergence was found.
func (r *Report) Equal() bool {
	return len(r.Differences) == 0 && r.SidebarDiff == ""
}

// Compare lists how b diverges from a. aName and bName label the unified diff.
func Compare(a, b *config.Config, aName, bName string) (*Report, error) {
	r := &Report{}
	field := func(name, x, y string) {
		if x != y {
			r.Differences = append(r.Differences, Difference{Kind: KindField, Subject: name, A: x, B: y})
		}
	}
	field("title", a.Title, b.Title)
	field("description", a.Description, b.Description)
	field("lang", a.Lang, b.Lang)
	field("bundler", string(a.Bundler), string(b.Bundler))
	field("theme.color_mode", string(a.Theme.ColorMode), string(b.Theme.ColorMode))
	field("theme.sidebar_depth", fmt.Sprint(a.Theme.Depth()), fmt.Sprint(b.Theme.Depth()))

	r.Differences = append(r.Differences, compareSections(a.Theme.Sidebar, b.Theme.Sidebar)...)
	r.Differences = append(r.Differences, comparePlugins(a.Plugins, b.Plugins)...)

	diff, err := sidebarDiff(a.Theme.Sidebar, b.Theme.Sidebar, aName, bName)
	if err != nil {
		return nil, err
	}
	r.SidebarDiff = diff
	return r, nil
}

func compareSections(a, b nav.Tree) []Difference {
	var out []Difference
	index := func(t nav.Tree) map[string]nav.Section {
		m := make(map[string]nav.Section, len(t))
		for _, s := range t {
			m[s.Text] = s
		}
		return m
	}
	ai, bi := index(a), index(b)

	var commonA, commonB []string
	for _, s := range a {
		other, ok := bi[s.Text]
		if !ok {
			out = append(out, Difference{Kind: KindSectionMissed, Subject: s.Text})
			continue
		}
		commonA = append(commonA, s.Text)
		if !sameChildren(s, other) {
			out = append(out, Difference{Kind: KindSectionBody, Subject: s.Text})
		}
	}
	for _, s := range b {
		if _, ok := ai[s.Text]; !ok {
			out = append(out, Difference{Kind: KindSectionAdded, Subject: s.Text})
			continue
		}
		commonB = append(commonB, s.Text)
	}
	if !slices.Equal(commonA, commonB) {
		out = append(out, Difference{Kind: KindSectionOrder, Subject: "sidebar"})
	}
	return out
}

func sameChildren(a, b nav.Section) bool {
	x, errA := yaml.Marshal(a)
	y, errB := yaml.Marshal(b)
	return errA == nil && errB == nil && string(x) == string(y)
}

func comparePlugins(a, b []config.PluginConfig) []Difference {
	names := func(ps []config.PluginConfig) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}
	an, bn := names(a), names(b)
	var out []Difference
	for _, n := range an {
		if !slices.Contains(bn, n) {
			out = append(out, Difference{Kind: KindPluginMissed, Subject: n})
		}
	}
	for _, n := range bn {
		if !slices.Contains(an, n) {
			out = append(out, Difference{Kind: KindPluginAdded, Subject: n})
		}
	}
	return out
}

func sidebarDiff(a, b nav.Tree, aName, bName string) (string, error) {
	x, err := yaml.Marshal(a)
	if err != nil {
		return "", err
	}
	y, err := yaml.Marshal(b)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(x)),
		B:        difflib.SplitLines(string(y)),
		FromFile: aName,
		ToFile:   bName,
		Context:  2,
	})
}
