package nav

// Tree is the sidebar: an ordered sequence of top-level sections.
type Tree []Section

// Section is a labelled group of navigation items.
type Section struct {
	Text        string `yaml:"text"`
	Link        string `yaml:"link,omitempty"` // Optional landing page for the group
	Collapsible bool   `yaml:"collapsible,omitempty"`
	Children    []Item `yaml:"children"`
}

// PageRef points at a document by its site-relative path.
type PageRef struct {
	Path string
	Text string // Optional display text; the document title is used otherwise
}

// ExternalLink points outside the site.
type ExternalLink struct {
	URL  string
	Text string
}

// Item is one entry in a section or in the navbar. Exactly one field is set.
type Item struct {
	Page     *PageRef
	External *ExternalLink
	Group    *Section
}

// Page returns an item referring to a document.
func Page(path string) Item {
	return Item{Page: &PageRef{Path: path}}
}

// External returns an item linking outside the site.
func External(url, text string) Item {
	return Item{External: &ExternalLink{URL: url, Text: text}}
}

// Group returns an item holding a nested section.
func Group(s Section) Item {
	return Item{Group: &s}
}

// Menu is the render-ready navigation handed to the site generator.
type Menu struct {
	Navbar       []Entry `json:"navbar" yaml:"navbar"`
	Sidebar      []Entry `json:"sidebar" yaml:"sidebar"`
	SidebarDepth int     `json:"sidebarDepth" yaml:"sidebar_depth"`
}

// Entry is a resolved navigation entry. Page entries carry the document
// source they resolved to; group entries carry children.
type Entry struct {
	Text        string  `json:"text" yaml:"text"`
	Link        string  `json:"link,omitempty" yaml:"link,omitempty"`
	Source      string  `json:"source,omitempty" yaml:"source,omitempty"`
	External    bool    `json:"external,omitempty" yaml:"external,omitempty"`
	Collapsible bool    `json:"collapsible,omitempty" yaml:"collapsible,omitempty"`
	Children    []Entry `json:"children,omitempty" yaml:"children,omitempty"`
}
