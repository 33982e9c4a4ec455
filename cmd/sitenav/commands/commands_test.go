package commands

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitenav/internal/config"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/metrics"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// newProject lays out a two-chapter docs tree and returns the CLI pointing
// at a not yet written config file in the same directory.
func newProject(t *testing.T) (*CLI, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "README.md"), "# C++\n")
	writeFile(t, filepath.Join(root, "docs", "b-fundamentals", "01-variables-and-datatypes", "README.md"), "# Variables and Datatypes\n")
	writeFile(t, filepath.Join(root, "docs", "b-fundamentals", "02-operators", "README.md"), "---\ntitle: Operators\n---\n\n::: codeoutput\n3\n:::\n")
	return &CLI{Config: filepath.Join(root, "sitenav.yaml")}, root
}

func newGlobal() (*Global, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Global{Logger: slog.Default(), Out: out, Recorder: metrics.NoopRecorder{}}, out
}

func writeConfig(t *testing.T, cli *CLI, sidebar nav.Tree) {
	t.Helper()
	require.NoError(t, config.Init(cli.Config, true, sidebar))
}

var fundamentals = nav.Tree{
	{Text: "Fundamentals", Children: []nav.Item{
		nav.Page("/b-fundamentals/01-variables-and-datatypes/"),
		nav.Page("/b-fundamentals/02-operators/"),
	}},
}

func TestInitFromDocs(t *testing.T) {
	cli, root := newProject(t)
	g, out := newGlobal()

	cmd := &InitCmd{FromDocs: filepath.Join(root, "docs")}
	require.NoError(t, cmd.Run(g, cli))
	require.Contains(t, out.String(), "Wrote configuration")

	cfg, err := config.Load(cli.Config)
	require.NoError(t, err)
	require.Len(t, cfg.Theme.Sidebar, 1)
	require.Equal(t, "Fundamentals", cfg.Theme.Sidebar[0].Text)
	require.Len(t, cfg.Theme.Sidebar[0].Children, 2)
	require.Equal(t, "docs", cfg.Docs.Dir)

	err = cmd.Run(g, cli)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestInitFromDocsRecordsScannedDirectory(t *testing.T) {
	root := t.TempDir()
	content := filepath.Join(root, "content")
	writeFile(t, filepath.Join(content, "a-intro", "README.md"), "# Introduction\n")
	cli := &CLI{Config: filepath.Join(root, "site", "sitenav.yaml")}
	g, _ := newGlobal()

	require.NoError(t, (&InitCmd{FromDocs: content}).Run(g, cli))

	cfg, err := config.Load(cli.Config)
	require.NoError(t, err)
	require.Equal(t, "../content", cfg.Docs.Dir)
	require.Equal(t, content, cfg.DocsDir())

	g, out := newGlobal()
	require.NoError(t, (&ValidateCmd{}).Run(g, cli))
	require.Contains(t, out.String(), "is valid (1 documents)")
}

func TestInitFromDocsWithoutChapters(t *testing.T) {
	root := t.TempDir()
	content := filepath.Join(root, "content")
	writeFile(t, filepath.Join(content, "README.md"), "# Home\n")
	cli := &CLI{Config: filepath.Join(root, "sitenav.yaml")}
	g, _ := newGlobal()

	err := (&InitCmd{FromDocs: content}).Run(g, cli)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	require.NoFileExists(t, cli.Config)
}

func TestResolveJSON(t *testing.T) {
	cli, _ := newProject(t)
	writeConfig(t, cli, fundamentals)
	g, out := newGlobal()

	require.NoError(t, (&ResolveCmd{Format: "json"}).Run(g, cli))

	var menu nav.Menu
	require.NoError(t, json.Unmarshal(out.Bytes(), &menu))
	require.Len(t, menu.Sidebar, 1)
	require.Equal(t, "Fundamentals", menu.Sidebar[0].Text)
	require.Len(t, menu.Sidebar[0].Children, 2)
	require.Equal(t, "Operators", menu.Sidebar[0].Children[1].Text)
}

func TestResolveYAML(t *testing.T) {
	cli, _ := newProject(t)
	writeConfig(t, cli, fundamentals)
	g, out := newGlobal()

	require.NoError(t, (&ResolveCmd{Format: "yaml"}).Run(g, cli))
	require.Contains(t, out.String(), "text: Variables and Datatypes")
}

func TestValidate(t *testing.T) {
	cli, _ := newProject(t)
	writeConfig(t, cli, fundamentals)
	g, out := newGlobal()

	require.NoError(t, (&ValidateCmd{}).Run(g, cli))
	require.Contains(t, out.String(), "is valid (3 documents)")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cli, _ := newProject(t)
	writeConfig(t, cli, nav.Tree{
		{Text: "Fundamentals", Children: []nav.Item{
			nav.Page("/missing/page/"),
			nav.Page("/b-fundamentals/02-operators/"),
			nav.External("not a url", "Broken"),
		}},
	})
	g, out := newGlobal()

	err := (&ValidateCmd{}).Run(g, cli)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	require.Contains(t, err.Error(), "2 problem(s)")
	require.Contains(t, out.String(), "/missing/page/")
	require.Contains(t, out.String(), "not a url")
}

func TestBuildWritesMenuFiles(t *testing.T) {
	t.Setenv("SITENAV_RUN_BUNDLER", "")
	cli, root := newProject(t)
	writeConfig(t, cli, fundamentals)
	g, out := newGlobal()

	output := filepath.Join(root, "out")
	require.NoError(t, (&BuildCmd{Output: output}).Run(g, cli))
	require.Contains(t, out.String(), "for 3 documents")
	require.FileExists(t, filepath.Join(output, "sidebar.json"))
	require.FileExists(t, filepath.Join(output, "navbar.json"))
}

func TestLintReportsOrphans(t *testing.T) {
	cli, _ := newProject(t)
	writeConfig(t, cli, nav.Tree{
		{Text: "Fundamentals", Children: []nav.Item{
			nav.Page("/b-fundamentals/01-variables-and-datatypes/"),
		}},
	})
	g, out := newGlobal()

	err := (&LintCmd{Format: "json", NoColor: true}).Run(g, cli)
	require.NoError(t, err, "info issues do not change the exit code")

	var report struct {
		Issues []struct {
			Rule string `json:"rule"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	rules := make([]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		rules = append(rules, issue.Rule)
	}
	require.Contains(t, rules, "orphan-page")
}

func TestLintBrokenLinkExitCode(t *testing.T) {
	cli, _ := newProject(t)
	writeConfig(t, cli, nav.Tree{
		{Text: "Fundamentals", Children: []nav.Item{nav.Page("/missing/page/")}},
	})
	g, _ := newGlobal()

	err := (&LintCmd{Format: "text", NoColor: true}).Run(g, cli)
	require.Equal(t, ExitCode(2), err)
}

func TestDiff(t *testing.T) {
	cli, root := newProject(t)
	writeConfig(t, cli, fundamentals)

	same := filepath.Join(root, "copy.yaml")
	require.NoError(t, config.Init(same, false, fundamentals))
	g, out := newGlobal()
	require.NoError(t, (&DiffCmd{Other: same}).Run(g, cli))
	require.Contains(t, out.String(), "agree")

	other := filepath.Join(root, "other.yaml")
	require.NoError(t, config.Init(other, false, nav.Tree{
		{Text: "Fundamentals", Children: []nav.Item{
			nav.Page("/b-fundamentals/02-operators/"),
			nav.Page("/b-fundamentals/01-variables-and-datatypes/"),
		}},
	}))
	g, out = newGlobal()
	err := (&DiffCmd{Other: other}).Run(g, cli)
	require.Equal(t, ExitCode(1), err)
	require.Contains(t, out.String(), "Fundamentals")
	require.Contains(t, out.String(), "@@")
}

func TestParseLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warning")
	require.Equal(t, slog.LevelWarn, parseLogLevel(false))
	require.Equal(t, slog.LevelDebug, parseLogLevel(true))

	t.Setenv(EnvLogLevel, "nonsense")
	require.Equal(t, slog.LevelInfo, parseLogLevel(false))
}

func TestMetricsFile(t *testing.T) {
	cli, root := newProject(t)
	writeConfig(t, cli, fundamentals)
	cli.MetricsFile = filepath.Join(root, "sitenav.prom")

	g := NewGlobal(cli, &bytes.Buffer{})
	require.NotNil(t, g.Registry)
	require.NoError(t, (&ResolveCmd{Format: "yaml"}).Run(g, cli))
	require.NoError(t, g.Flush(cli))

	data, err := os.ReadFile(cli.MetricsFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "sitenav_documents 3")
}
