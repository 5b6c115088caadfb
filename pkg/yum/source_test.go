package yum

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/rpm"
	"github.com/glorpus-work/yumctl/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBackend_GetSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	dest := t.TempDir()
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	specPath := filepath.Join(home, "rpmbuild", "SPECS", "vim.spec")

	m.rpm.EXPECT().CheckInstalled(gomock.Any(), "rpm-build").Return(true, nil)
	m.rpm.EXPECT().CheckInstalled(gomock.Any(), "yum-utils").Return(true, nil)

	var staging string
	m.run.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd runner.Command) (*runner.Result, error) {
			require.Equal(t, "yumdownloader", cmd.Path)
			require.Equal(t, []string{"--assumeyes", "--verbose", "--source", "vim", "--destdir", cmd.Args[5]}, cmd.Args)
			require.False(t, cmd.Sudo, "source downloads run unprivileged")
			staging = cmd.Args[5]
			return &runner.Result{}, os.WriteFile(filepath.Join(staging, "vim-9.0-1.el9.src.rpm"), []byte("srpm"), 0o644)
		},
	)

	m.rpm.EXPECT().InstallFile(gomock.Any(), gomock.Any(), rpm.InstallOptions{}).DoAndReturn(
		func(_ context.Context, path string, _ rpm.InstallOptions) error {
			require.True(t, strings.HasSuffix(path, "vim-9.0-1.el9.src.rpm"))
			return nil
		},
	)

	m.run.EXPECT().Run(gomock.Any(), runner.Command{
		Path: "yum-builddep",
		Args: []string{"-y", "--tolerant", specPath},
		Sudo: true,
	}).Return(&runner.Result{}, nil)

	m.rpm.EXPECT().PrepareSource(gomock.Any(), specPath, dest, "").Return(filepath.Join(dest, "vim-9.0"), nil)

	dir, err := b.GetSource(context.Background(), "vim", dest, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "vim-9.0"), dir)

	_, statErr := os.Stat(staging)
	assert.True(t, os.IsNotExist(statErr), "staging directory must be removed")
}

func TestBackend_GetSource_EmptyDest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _ := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	dir, err := b.GetSource(context.Background(), "vim", "", "")
	assert.ErrorIs(t, err, errors.ErrNoDestination)
	assert.Empty(t, dir)
}

func TestBackend_GetSource_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _ := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	dir, err := b.GetSource(context.Background(), "", t.TempDir(), "")
	assert.ErrorIs(t, err, errors.ErrEmptyPackage)
	assert.Empty(t, dir)
}

func TestBackend_GetSource_InstallsMissingHelpers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	m.rpm.EXPECT().CheckInstalled(gomock.Any(), "rpm-build").Return(false, nil)
	m.run.EXPECT().Run(gomock.Any(), runner.Command{
		Path: b.Tool(),
		Args: []string{"-y", "install", "rpm-build"},
		Sudo: true,
	}).Return(nil, &runner.CmdError{Cmd: "yum", ExitCode: 1, Stderr: "no mirror"})

	dir, err := b.GetSource(context.Background(), "vim", t.TempDir(), "")
	assert.ErrorIs(t, err, errors.ErrHelperInstall)
	assert.Empty(t, dir)
}

func TestBackend_GetSource_NoSourceRPM(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	m.rpm.EXPECT().CheckInstalled(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	m.run.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&runner.Result{}, nil)

	dir, err := b.GetSource(context.Background(), "vim", t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrSourceDownload)
	assert.Contains(t, err.Error(), "found 0")
	assert.Empty(t, dir)
}

func TestBackend_GetSource_MultipleSourceRPMs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	m.rpm.EXPECT().CheckInstalled(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	m.run.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd runner.Command) (*runner.Result, error) {
			dir := cmd.Args[5]
			require.NoError(t, os.WriteFile(filepath.Join(dir, "vim-9.0-1.src.rpm"), []byte("a"), 0o644))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "vim-9.0-2.src.rpm"), []byte("b"), 0o644))
			return &runner.Result{}, nil
		},
	)

	_, err := b.GetSource(context.Background(), "vim", t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrSourceDownload)
	assert.Contains(t, err.Error(), "found 2")
}

func TestBackend_BuildDep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	m.run.EXPECT().Run(gomock.Any(), runner.Command{
		Path: "yum-builddep",
		Args: []string{"-y", "--tolerant", "vim"},
		Sudo: true,
	}).Return(&runner.Result{}, nil)

	require.NoError(t, b.BuildDep(context.Background(), "vim"))
}

func TestBackend_BuildDep_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _ := newTestBackend(t, ctrl, "4.14.3\n", Options{})

	assert.ErrorIs(t, b.BuildDep(context.Background(), ""), errors.ErrEmptyPackage)
}
