package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

func TestRunExitCodes(t *testing.T) {
	root := t.TempDir()
	page := filepath.Join(root, "docs", "a-intro", "README.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o750))
	require.NoError(t, os.WriteFile(page, []byte("# Introduction\n"), 0o600))

	valid := filepath.Join(root, "valid.yaml")
	require.NoError(t, config.Init(valid, false, nav.Tree{
		{Text: "Introduction", Children: []nav.Item{nav.Page("/a-intro/")}},
	}))
	broken := filepath.Join(root, "broken.yaml")
	require.NoError(t, config.Init(broken, false, nav.Tree{
		{Text: "Introduction", Children: []nav.Item{nav.Page("/missing/page/")}},
	}))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"valid config", []string{"--config", valid, "validate"}, 0},
		{"broken navigation", []string{"--config", broken, "validate"}, 7},
		{"missing config", []string{"--config", filepath.Join(root, "nope.yaml"), "resolve"}, 7},
		{"unknown command", []string{"frobnicate"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, run(tt.args))
		})
	}
}
