//go:build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_PrintsToolVersion(t *testing.T) {
	setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	output, err := runCommand(t, "--config", cfgPath, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "yumctl version 0.1.0")
	assert.Contains(t, output, "yum version: 4.14.3")
}

func TestVersion_ToolMissing(t *testing.T) {
	// The command still reports its own version when the configured tool
	// does not exist.
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `tool:
  command: yumctl-no-such-tool
settings:
  log_level: error
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	output, err := runCommand(t, "--config", cfgPath, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "yumctl version 0.1.0")
	assert.NotContains(t, output, "version: 4")
}
