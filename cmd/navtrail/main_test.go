package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "themes")
	assert.Contains(t, names, "marks")

	for _, flag := range []string{"theme", "log-level", "no-panel"} {
		require.NotNil(t, rootCmd.Flags().Lookup(flag), flag)
	}
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.Equal(t, version, rootCmd.Version)
}
