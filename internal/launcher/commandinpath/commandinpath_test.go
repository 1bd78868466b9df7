// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandinpath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyFsWithFiles(t *testing.T, files map[string]os.FileMode, dirs ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}

	for name, mode := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fs, name, []byte("#!/bin/sh\n"), mode))
		require.NoError(t, fs.Chmod(name, mode))
	}

	return fs
}

func joinPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

func TestFindIn(t *testing.T) {
	binA := filepath.Join("/", "opt", "a", "bin")
	binB := filepath.Join("/", "opt", "b", "bin")

	testCases := []struct {
		name     string
		files    map[string]os.FileMode
		dirs     []string
		path     string
		command  string
		wantPath string
		wantErr  error
	}{
		{
			name:     "command found",
			files:    map[string]os.FileMode{filepath.Join(binA, "tool"): 0o755},
			path:     binA,
			command:  "tool",
			wantPath: filepath.Join(binA, "tool"),
		},
		{
			name: "first PATH entry wins",
			files: map[string]os.FileMode{
				filepath.Join(binA, "tool"): 0o755,
				filepath.Join(binB, "tool"): 0o755,
			},
			path:     joinPath(binB, binA),
			command:  "tool",
			wantPath: filepath.Join(binB, "tool"),
		},
		{
			name:     "missing directories are skipped",
			files:    map[string]os.FileMode{filepath.Join(binB, "tool"): 0o755},
			path:     joinPath("/non/existent", "", binB),
			command:  "tool",
			wantPath: filepath.Join(binB, "tool"),
		},
		{
			name: "non executable file is skipped",
			files: map[string]os.FileMode{
				filepath.Join(binA, "tool"): 0o644,
				filepath.Join(binB, "tool"): 0o755,
			},
			path:     joinPath(binA, binB),
			command:  "tool",
			wantPath: filepath.Join(binB, "tool"),
		},
		{
			name:    "directory with command name is skipped",
			dirs:    []string{filepath.Join(binA, "tool")},
			path:    binA,
			command: "tool",
			wantErr: ErrNotFound,
		},
		{
			name:    "command not found",
			files:   map[string]os.FileMode{filepath.Join(binA, "tool"): 0o755},
			path:    binA,
			command: "other",
			wantErr: ErrNotFound,
		},
		{
			name:    "empty PATH",
			files:   map[string]os.FileMode{filepath.Join(binA, "tool"): 0o755},
			path:    "",
			command: "tool",
			wantErr: ErrNotFound,
		},
		{
			name:    "empty command",
			path:    binA,
			command: "",
			wantErr: ErrEmptyCommand,
		},
		{
			name:     "explicit path is not searched for",
			files:    map[string]os.FileMode{"/work/run.sh": 0o755},
			path:     binA,
			command:  "/work/run.sh",
			wantPath: "/work/run.sh",
		},
		{
			name:    "explicit path that is not executable",
			files:   map[string]os.FileMode{"/work/run.sh": 0o600},
			path:    binA,
			command: "/work/run.sh",
			wantErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := dummyFsWithFiles(t, tc.files, tc.dirs...)
			stubs := gostub.Stub(&FsFactory, func() afero.Fs {
				return fs
			})
			defer stubs.Reset()

			stubs.Stub(&goos, "linux")

			got, err := FindIn(tc.command, tc.path, "")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, got)
		})
	}
}

func TestFindIn_WindowsPathExt(t *testing.T) {
	bin := filepath.Join("/", "tools")
	fs := dummyFsWithFiles(t, map[string]os.FileMode{
		filepath.Join(bin, "node.exe"):  0o644,
		filepath.Join(bin, "build.cmd"): 0o644,
		filepath.Join(bin, "plain"):     0o644,
	})

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	stubs.Stub(&goos, "windows")

	const pathExt = ".COM;.EXE;.BAT;.CMD"

	got, err := FindIn("node", bin, pathExt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bin, "node.exe"), got)

	got, err = FindIn("build", bin, pathExt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bin, "build.cmd"), got)

	got, err = FindIn("node.exe", bin, pathExt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bin, "node.exe"), got)

	_, err = FindIn("plain", bin, pathExt)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPathExts(t *testing.T) {
	assert.Equal(t, []string{".com", ".exe", ".bat", ".cmd"}, pathExts(""))
	assert.Equal(t, []string{".ps1", ".exe"}, pathExts(".PS1;;exe"))
}

func TestFindIn_UsesGivenPathList(t *testing.T) {
	binA := filepath.Join("/", "opt", "a", "bin")
	binB := filepath.Join("/", "opt", "b", "bin")
	fs := dummyFsWithFiles(t, map[string]os.FileMode{filepath.Join(binB, "tool"): 0o755})

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	stubs.Stub(&goos, "linux")

	_, err := FindIn("tool", binA, "")
	require.ErrorIs(t, err, ErrNotFound)

	got, err := FindIn("tool", joinPath(binA, binB), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(binB, "tool"), got)
}

func TestFindIn_RelativeEntry(t *testing.T) {
	fs := dummyFsWithFiles(t, map[string]os.FileMode{"tool": 0o755})

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	stubs.Stub(&goos, "linux")

	got, err := FindIn("tool", ".", "")
	require.NoError(t, err)
	assert.Equal(t, "tool", got, "filepath.Join cleans ./tool")
}

func TestFindIn_WindowsPathExtArgument(t *testing.T) {
	bin := filepath.Join("/", "tools")
	fs := dummyFsWithFiles(t, map[string]os.FileMode{filepath.Join(bin, "deploy.ps1"): 0o644})

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	stubs.Stub(&goos, "windows")

	_, err := FindIn("deploy", bin, ".EXE;.CMD")
	require.ErrorIs(t, err, ErrNotFound)

	got, err := FindIn("deploy", bin, ".EXE;.PS1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bin, "deploy.ps1"), got)
}

func TestHasPathSeparator(t *testing.T) {
	stubs := gostub.Stub(&goos, "linux")
	defer stubs.Reset()

	assert.True(t, hasPathSeparator("./run.sh"))
	assert.False(t, hasPathSeparator(`.\run.cmd`))
	assert.False(t, hasPathSeparator("echo"))

	stubs.Stub(&goos, "windows")
	assert.True(t, hasPathSeparator(`.\run.cmd`))
	assert.True(t, hasPathSeparator("bin/run.cmd"))
}
