//go:build integration

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall_InvokesTool(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "install", "vim")
	require.NoError(t, err)

	assert.True(t, ft.invoked(t, "yum -y install vim"))
	assert.False(t, ft.invoked(t, "--transient"))
}

func TestInstall_TransientFromConfig(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), true)

	_, err := runCommand(t, "--config", cfgPath, "install", "vim")
	require.NoError(t, err)

	assert.True(t, ft.invoked(t, "yum -y install vim --transient"))
}

func TestInstall_MultiplePackages(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "install", "vim", "curl")
	require.NoError(t, err)

	// One transaction per package, in argument order.
	assert.True(t, ft.invoked(t, "yum -y install vim"))
	assert.True(t, ft.invoked(t, "yum -y install curl"))
}

func TestInstall_RequiresPackageArgument(t *testing.T) {
	setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "install")
	require.Error(t, err)
}
