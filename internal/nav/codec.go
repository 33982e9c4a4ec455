package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts the three spellings used in site configurations:
//
//	- /b-fundamentals/02-operators/                 # page
//	- [https://www.stroustrup.com/bs_faq2.html, FAQ] # external link
//	- {text: Operators, link: /b-fundamentals/02-operators/}
//	- {text: Fundamentals, children: [...]}         # nested group
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	*it = Item{}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return fmt.Errorf("line %d: empty navigation entry", node.Line)
		}
		if isAbsoluteURI(node.Value) {
			return fmt.Errorf("line %d: external link %q needs display text, write it as [url, text]", node.Line, node.Value)
		}
		*it = Page(node.Value)
		return nil

	case yaml.SequenceNode:
		if len(node.Content) != 2 || node.Content[0].Kind != yaml.ScalarNode || node.Content[1].Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: external link must be a [url, text] pair", node.Line)
		}
		*it = External(node.Content[0].Value, node.Content[1].Value)
		return nil

	case yaml.MappingNode:
		if err := checkEntryKeys(node); err != nil {
			return err
		}
		var raw Section
		if err := node.Decode(&raw); err != nil {
			return err
		}
		if hasKey(node, "children") {
			*it = Group(raw)
			return nil
		}
		if raw.Link == "" {
			return fmt.Errorf("line %d: navigation entry %q needs a link or children", node.Line, raw.Text)
		}
		if isAbsoluteURI(raw.Link) {
			*it = External(raw.Link, raw.Text)
			return nil
		}
		*it = Item{Page: &PageRef{Path: raw.Link, Text: raw.Text}}
		return nil

	default:
		return fmt.Errorf("line %d: unsupported navigation entry", node.Line)
	}
}

// MarshalYAML writes the shortest spelling UnmarshalYAML reads back.
func (it Item) MarshalYAML() (any, error) {
	switch {
	case it.Page != nil && it.Page.Text == "":
		return it.Page.Path, nil
	case it.Page != nil:
		return map[string]string{"text": it.Page.Text, "link": it.Page.Path}, nil
	case it.External != nil:
		return []string{it.External.URL, it.External.Text}, nil
	case it.Group != nil:
		return it.Group, nil
	default:
		return nil, nil
	}
}

// entryKeys are the fields a mapping entry may carry.
var entryKeys = map[string]bool{"text": true, "link": true, "collapsible": true, "children": true}

// checkEntryKeys rejects unknown fields. Custom unmarshalers do not inherit
// the decoder's KnownFields setting, so typos would otherwise be dropped.
func checkEntryKeys(node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !entryKeys[key.Value] {
			return fmt.Errorf("line %d: field %s not found in navigation entry", key.Line, key.Value)
		}
	}
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
