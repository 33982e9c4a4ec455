package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, format, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, FormatNone, format)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	fm, body, format, err := Split([]byte("---\ntitle: Loops\n---\n# Loops\n"))
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)
	require.Equal(t, []byte("title: Loops\n"), fm)
	require.Equal(t, []byte("# Loops\n"), body)
}

func TestSplit_TOMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	fm, body, format, err := Split([]byte("+++\ntitle = \"Enums\"\n+++\nbody\n"))
	require.NoError(t, err)
	require.Equal(t, FormatTOML, format)
	require.Equal(t, []byte("title = \"Enums\"\n"), fm)
	require.Equal(t, []byte("body\n"), body)
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, format, err := Split([]byte("---\r\ntitle: Arrays\r\n---\r\ntext\r\n"))
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)
	require.Equal(t, []byte("title: Arrays\r\n"), fm)
	require.Equal(t, []byte("text\r\n"), body)
}

func TestSplit_EmptyFrontmatter(t *testing.T) {
	fm, body, format, err := Split([]byte("---\n---\nbody"))
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)
	require.Empty(t, fm)
	require.Equal(t, []byte("body"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, format, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.Error(t, err)
	require.Equal(t, FormatNone, format)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestRead_Title(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"yaml", "---\ntitle: Pointers\n---\n", "Pointers"},
		{"toml", "+++\ntitle = \"Exceptions\"\n+++\n", "Exceptions"},
		{"none", "# Heading only\n", ""},
		{"non-string title", "---\ntitle: 42\n---\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, _, err := Read([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, Title(fields))
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("title: [unterminated\n"), FormatYAML)
	require.Error(t, err)
}
