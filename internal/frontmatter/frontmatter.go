// Package frontmatter splits and decodes the metadata block at the top of a
// markdown document. Both YAML (`---`) and TOML (`+++`) blocks are supported.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the front matter syntax.
type Format int

const (
	FormatNone Format = iota
	FormatYAML
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "none"
	}
}

// ErrMissingClosingDelimiter indicates the document started with a front
// matter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

var delimiters = []struct {
	format Format
	marker string
}{
	{FormatYAML, "---"},
	{FormatTOML, "+++"},
}

// Split separates front matter from the markdown body.
//
// If the document does not start with a known delimiter, format is FormatNone
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, format Format, err error) {
	nl := detectNewline(content)
	for _, d := range delimiters {
		open := []byte(d.marker + nl)
		if !bytes.HasPrefix(content, open) {
			continue
		}
		start := len(open)
		if bytes.HasPrefix(content[start:], open) {
			return []byte{}, content[start+len(open):], d.format, nil
		}
		closeSeq := []byte(nl + d.marker + nl)
		idx := bytes.Index(content[start:], closeSeq)
		if idx < 0 {
			// A closing delimiter at EOF without a trailing newline.
			if bytes.HasSuffix(content, []byte(nl+d.marker)) {
				end := len(content) - len(d.marker)
				return content[start:end], []byte{}, d.format, nil
			}
			return nil, nil, FormatNone, ErrMissingClosingDelimiter
		}
		end := start + idx + len(nl)
		return content[start:end], content[start+idx+len(closeSeq):], d.format, nil
	}
	return nil, content, FormatNone, nil
}

// Parse decodes raw front matter (without delimiters) into a map.
func Parse(frontmatter []byte, format Format) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return fields, nil
	}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
			return nil, fmt.Errorf("parse yaml frontmatter: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(frontmatter, &fields); err != nil {
			return nil, fmt.Errorf("parse toml frontmatter: %w", err)
		}
	case FormatNone:
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Read splits and decodes a document in one step.
func Read(content []byte) (fields map[string]any, body []byte, err error) {
	fm, body, format, err := Split(content)
	if err != nil {
		return nil, nil, err
	}
	fields, err = Parse(fm, format)
	if err != nil {
		return nil, nil, err
	}
	return fields, body, nil
}

// Title returns the string "title" field, if present.
func Title(fields map[string]any) string {
	if s, ok := fields["title"].(string); ok {
		return s
	}
	return ""
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
