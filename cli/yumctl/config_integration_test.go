//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ShowCustomFile(t *testing.T) {
	cfgPath, repoFile := writeTempConfig(t, t.TempDir(), false)

	output, err := runCommand(t, "--config", cfgPath, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, output, "SETTING")
	assert.Contains(t, output, "tool.command")
	assert.Contains(t, output, "yum")
	assert.Contains(t, output, repoFile)
}

func TestConfig_SetAndGet(t *testing.T) {
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "config", "set", "tool.command", "dnf")
	require.NoError(t, err)

	output, err := runCommand(t, "--config", cfgPath, "config", "get", "tool.command")
	require.NoError(t, err)
	assert.Equal(t, "dnf", strings.TrimSpace(output))

	// The change persists in the file, not just the process.
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command: dnf")
}

func TestConfig_SetUnknownKey(t *testing.T) {
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "config", "set", "no.such.key", "value")
	require.Error(t, err)
}

func TestConfig_Init(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fresh", "config.yaml")

	_, err := runCommand(t, "--config", cfgPath, "config", "init")
	require.NoError(t, err)
	require.FileExists(t, cfgPath)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command: yum")

	// A second init without --force refuses to overwrite.
	_, err = runCommand(t, "--config", cfgPath, "config", "init")
	require.Error(t, err)

	_, err = runCommand(t, "--config", cfgPath, "config", "init", "--force")
	require.NoError(t, err)
}
