//go:build integration

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgrade_AllPackages(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "upgrade")
	require.NoError(t, err)

	// No package argument updates the whole system.
	assert.True(t, ft.invoked(t, "yum -y update"))
	assert.False(t, ft.invoked(t, "yum -y update vim"))
}

func TestUpgrade_SinglePackage(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "upgrade", "vim")
	require.NoError(t, err)

	assert.True(t, ft.invoked(t, "yum -y update vim"))
}

func TestUpgrade_UpdateAlias(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "update", "vim")
	require.NoError(t, err)

	assert.True(t, ft.invoked(t, "yum -y update vim"))
}
