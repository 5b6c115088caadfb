//go:build integration

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_AddWritesManagedFile(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, repoFile := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "repo", "add", "http://repo.example.com/os")
	require.NoError(t, err)

	data, err := os.ReadFile(repoFile)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "[yumctl_")
	assert.Contains(t, content, "baseurl=http://repo.example.com/os")
	assert.Contains(t, content, "name=yumctl managed repository")
	assert.Contains(t, content, "enabled=1")
	assert.Contains(t, content, "gpgcheck=0")

	// A new repository invalidates the tool cache.
	assert.True(t, ft.invoked(t, "yum clean all"))
}

func TestRepo_AddWithOptions(t *testing.T) {
	setupFakeTools(t)
	cfgPath, repoFile := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "repo", "add", "http://repo.example.com/os",
		"--option", "gpgcheck=1",
		"--option", "gpgkey=file:///etc/pki/rpm-gpg/RPM-GPG-KEY")
	require.NoError(t, err)

	data, err := os.ReadFile(repoFile)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "gpgcheck=1")
	assert.Contains(t, content, "gpgkey=file:///etc/pki/rpm-gpg/RPM-GPG-KEY")
	assert.NotContains(t, content, "gpgcheck=0")
}

func TestRepo_AddSameURLTwice(t *testing.T) {
	ft := setupFakeTools(t)
	cfgPath, repoFile := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "repo", "add", "http://repo.example.com/os")
	require.NoError(t, err)
	before, err := os.ReadFile(repoFile)
	require.NoError(t, err)

	_, err = runCommand(t, "--config", cfgPath, "repo", "add", "http://repo.example.com/os")
	require.NoError(t, err)
	after, err := os.ReadFile(repoFile)
	require.NoError(t, err)

	assert.Equal(t, string(before), string(after))

	// Only the first add cleans the cache.
	cleans := 0
	for _, line := range ft.invocations(t) {
		if line == "yum clean all" {
			cleans++
		}
	}
	assert.Equal(t, 1, cleans)
}

func TestRepo_AddRejectsMalformedOption(t *testing.T) {
	setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "repo", "add", "http://repo.example.com/os",
		"--option", "no-equals-sign")
	require.Error(t, err)
}

func TestRepo_List(t *testing.T) {
	setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "repo", "add", "http://repo.example.com/os")
	require.NoError(t, err)
	_, err = runCommand(t, "--config", cfgPath, "repo", "add", "http://mirror.example.com/extras")
	require.NoError(t, err)

	output, err := runCommand(t, "--config", cfgPath, "repo", "list")
	require.NoError(t, err)

	assert.Contains(t, output, "SECTION")
	assert.Contains(t, output, "http://repo.example.com/os")
	assert.Contains(t, output, "http://mirror.example.com/extras")
	assert.Contains(t, output, "yumctl managed repository")
}

func TestRepo_ListEmpty(t *testing.T) {
	setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	output, err := runCommand(t, "--config", cfgPath, "repo", "list")
	require.NoError(t, err)

	assert.Contains(t, output, "No repositories")
}

func TestRepo_Remove(t *testing.T) {
	setupFakeTools(t)
	cfgPath, repoFile := writeTempConfig(t, t.TempDir(), false)

	_, err := runCommand(t, "--config", cfgPath, "repo", "add", "http://repo.example.com/os")
	require.NoError(t, err)
	_, err = runCommand(t, "--config", cfgPath, "repo", "add", "http://mirror.example.com/extras")
	require.NoError(t, err)

	_, err = runCommand(t, "--config", cfgPath, "repo", "remove", "http://repo.example.com/os")
	require.NoError(t, err)

	data, err := os.ReadFile(repoFile)
	require.NoError(t, err)
	content := string(data)

	assert.NotContains(t, content, "http://repo.example.com/os")
	assert.Contains(t, content, "http://mirror.example.com/extras")
}

func TestRepo_RemoveUnknownURL(t *testing.T) {
	setupFakeTools(t)
	cfgPath, _ := writeTempConfig(t, t.TempDir(), false)

	// Removing a URL that was never added succeeds without error.
	_, err := runCommand(t, "--config", cfgPath, "repo", "remove", "http://unknown.example.com")
	require.NoError(t, err)
}
