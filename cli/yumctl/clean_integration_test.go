//go:build integration

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_InvokesCleanAll(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "clean")
	require.NoError(t, err)

	// clean all runs without the assume-yes or transient flags.
	assert.True(t, ft.invoked(t, "yum clean all"))
	assert.False(t, ft.invoked(t, "-y clean"))
}
