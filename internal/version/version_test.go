package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v0.3.0"
	require.Equal(t, "sitenav v0.3.0 (commit "+GitCommit+", built "+BuildTime+")", String())
}

func TestDefaultsAreSet(t *testing.T) {
	require.NotEmpty(t, Version)
	require.NotEmpty(t, BuildTime)
	require.NotEmpty(t, GitCommit)
}
