//go:build integration

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeTools is a bin directory of stand-in package tools placed ahead of
// PATH. Every invocation is appended to the log file so tests can assert
// the exact command lines yumctl built.
type fakeTools struct {
	binDir  string
	logPath string
}

// setupFakeTools installs stand-ins for yum, sudo, rpm, rpmbuild,
// yumdownloader, yum-builddep, and repoquery.
func setupFakeTools(t *testing.T) *fakeTools {
	t.Helper()

	binDir := t.TempDir()
	logPath := filepath.Join(binDir, "invocations.log")
	ft := &fakeTools{binDir: binDir, logPath: logPath}

	// The tool answers the version probe and accepts everything else.
	ft.writeScript(t, "yum", `#!/bin/sh
echo "yum $@" >> `+logPath+`
for arg in "$@"; do
  if [ "$arg" = "--version" ]; then
    echo "4.14.3"
    exit 0
  fi
done
exit 0
`)

	// Privileged commands run unprivileged in tests.
	ft.writeScript(t, "sudo", `#!/bin/sh
exec "$@"
`)

	// rpm reports every package as installed and accepts installs.
	ft.writeScript(t, "rpm", `#!/bin/sh
echo "rpm $@" >> `+logPath+`
exit 0
`)

	// yumdownloader drops one source rpm into --destdir.
	ft.writeScript(t, "yumdownloader", `#!/bin/sh
echo "yumdownloader $@" >> `+logPath+`
dest=""
prev=""
for arg in "$@"; do
  if [ "$prev" = "--destdir" ]; then dest="$arg"; fi
  prev="$arg"
done
touch "$dest/testpkg-1.0-1.src.rpm"
exit 0
`)

	ft.writeScript(t, "yum-builddep", `#!/bin/sh
echo "yum-builddep $@" >> `+logPath+`
exit 0
`)

	// rpmbuild unpacks a source tree into the _builddir define.
	ft.writeScript(t, "rpmbuild", `#!/bin/sh
echo "rpmbuild $@" >> `+logPath+`
prev=""
for arg in "$@"; do
  if [ "$prev" = "--define" ]; then
    case "$arg" in
      "_builddir "*)
        mkdir -p "${arg#_builddir }/testpkg-1.0"
        echo "prepared" > "${arg#_builddir }/testpkg-1.0/README"
        ;;
    esac
  fi
  prev="$arg"
done
exit 0
`)

	ft.writeScript(t, "repoquery", `#!/bin/sh
echo "repoquery $@" >> `+logPath+`
echo "testpkg-1.0-1.x86_64"
exit 0
`)

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return ft
}

func (ft *fakeTools) writeScript(t *testing.T, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(ft.binDir, name), []byte(body), 0o755))
}

// invocations returns the logged command lines, one per invocation.
func (ft *fakeTools) invocations(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(ft.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// invoked reports whether any logged command line contains want.
func (ft *fakeTools) invoked(t *testing.T, want string) bool {
	t.Helper()
	for _, line := range ft.invocations(t) {
		if strings.Contains(line, want) {
			return true
		}
	}
	return false
}

// writeTempConfig writes a config pinning the tool, the managed repo file,
// and image-mode detection, and returns its path.
func writeTempConfig(t *testing.T, dir string, transient bool) (cfgPath, repoFile string) {
	t.Helper()

	cfgPath = filepath.Join(dir, "config.yaml")
	repoFile = filepath.Join(dir, "yumctl.repo")

	content := fmt.Sprintf(`tool:
  command: yum
  transient: %t
repo:
  file: %s
settings:
  log_level: error
`, transient, repoFile)

	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath, repoFile
}

// runCommand executes the root command with args and returns captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	cmd := newRootCmd()
	cmd.SetArgs(args)
	runErr := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), runErr
}
