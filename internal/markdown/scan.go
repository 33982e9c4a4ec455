package markdown

import (
	"regexp"
	"strings"
)

// Container is a custom container block opened with `::: type [title]`.
type Container struct {
	Type  string
	Title string
	Line  int
}

// ComponentUse is a component tag such as `<CodeRunner>` found in prose.
type ComponentUse struct {
	Name string
	Line int
}

var (
	containerOpen = regexp.MustCompile(`^:::\s*([A-Za-z][\w-]*)\s*(.*)$`)
	componentTag  = regexp.MustCompile(`<([A-Z][A-Za-z0-9]*)[\s/>]`)
)

// Containers lists container blocks outside fenced and indented code.
// Closing `:::` lines are not reported.
func Containers(body []byte) []Container {
	var out []Container
	scanProse(body, func(line string, lineNo int) {
		m := containerOpen.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return
		}
		out = append(out, Container{Type: m[1], Title: strings.TrimSpace(m[2]), Line: lineNo})
	})
	return out
}

// Components lists PascalCase component tags outside code. A component used
// several times on one line is reported once per use.
func Components(body []byte) []ComponentUse {
	var out []ComponentUse
	scanProse(body, func(line string, lineNo int) {
		for _, m := range componentTag.FindAllStringSubmatch(stripInlineCodeSpans(line)+" ", -1) {
			out = append(out, ComponentUse{Name: m[1], Line: lineNo})
		}
	})
	return out
}

// scanProse calls fn for every line that is not inside a fenced or indented
// code block. Line numbers are 1-based.
func scanProse(body []byte, fn func(line string, lineNo int)) {
	inCodeBlock := false
	activeFence := ""
	for i, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if fence := fenceMarker(trimmed); fence != "" {
			inCodeBlock, activeFence = toggleFencedBlock(inCodeBlock, activeFence, fence)
			continue
		}
		if inCodeBlock || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			continue
		}
		fn(line, i+1)
	}
}

func fenceMarker(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	default:
		return ""
	}
}

func toggleFencedBlock(inCodeBlock bool, activeFence string, fence string) (bool, string) {
	if !inCodeBlock {
		return true, fence
	}
	if activeFence == fence {
		return false, ""
	}
	return inCodeBlock, activeFence
}

func stripInlineCodeSpans(s string) string {
	if !strings.Contains(s, "`") {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '`' {
			out.WriteByte(s[i])
			i++
			continue
		}
		run := 1
		for i+run < len(s) && s[i+run] == '`' {
			run++
		}
		marker := strings.Repeat("`", run)
		closeRel := strings.Index(s[i+run:], marker)
		if closeRel == -1 {
			out.WriteString(marker)
			i += run
			continue
		}
		i = i + run + closeRel + run
	}
	return out.String()
}
