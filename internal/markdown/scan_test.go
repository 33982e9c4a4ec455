package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainers(t *testing.T) {
	src := []byte("" +
		"# Loops\n" +
		"\n" +
		"::: codeoutput\n" +
		"```\n" +
		"0 1 2\n" +
		"```\n" +
		":::\n" +
		"\n" +
		"::: tip Key Insight\n" +
		"Prefer range-based for.\n" +
		":::\n" +
		"\n" +
		"```md\n" +
		"::: warning\n" +
		"```\n")

	got := Containers(src)
	require.Equal(t, []Container{
		{Type: "codeoutput", Line: 3},
		{Type: "tip", Title: "Key Insight", Line: 9},
	}, got)
}

func TestComponents(t *testing.T) {
	src := []byte("" +
		"<QuizBox id=\"1\"/>\n" +
		"Inline `<NotAComponent>` and <Badge text=\"new\"/>\n" +
		"<div>html</div>\n" +
		"    <Indented/>\n")

	got := Components(src)
	require.Equal(t, []ComponentUse{
		{Name: "QuizBox", Line: 1},
		{Name: "Badge", Line: 2},
	}, got)
}

func TestComponents_TagAtEndOfLine(t *testing.T) {
	got := Components([]byte("<ClientOnly>\n<Chart/>\n</ClientOnly>"))
	require.Equal(t, []ComponentUse{{Name: "ClientOnly", Line: 1}, {Name: "Chart", Line: 2}}, got)
}
