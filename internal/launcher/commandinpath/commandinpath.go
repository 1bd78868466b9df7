// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandinpath resolves a command name to an executable on the PATH.
package commandinpath

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

var (
	// ErrNotFound is returned when no executable matches the command name.
	ErrNotFound = errors.New("executable not found")
	// ErrEmptyCommand is returned when the command name is empty.
	ErrEmptyCommand = errors.New("empty command name")
)

// FsFactory is a function that returns the filesystem used for lookups.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// goos is the operating system the lookup rules are chosen for.
var goos = runtime.GOOS

// FindIn resolves command to the path of an executable file.
// A command that contains a path separator is checked as given.
// A bare name is searched for in each directory of pathList, in order.
// On Windows the extensions listed in pathExt are tried when the name has none of them.
// Empty pathList entries are ignored. Relative entries yield relative paths.
func FindIn(command, pathList, pathExt string) (string, error) {
	if command == "" {
		return "", ErrEmptyCommand
	}

	afs := FsFactory()

	if hasPathSeparator(command) {
		for _, candidate := range candidates(command, pathExt) {
			if isExecutable(afs, candidate) {
				return candidate, nil
			}
		}

		return "", fmt.Errorf("%w: %s", ErrNotFound, command)
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}

		for _, candidate := range candidates(filepath.Join(dir, command), pathExt) {
			if isExecutable(afs, candidate) {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s in PATH", ErrNotFound, command)
}

func candidates(path, pathExt string) []string {
	if goos != "windows" {
		return []string{path}
	}

	exts := pathExts(pathExt)
	ext := strings.ToLower(filepath.Ext(path))

	for _, e := range exts {
		if ext == e {
			return []string{path}
		}
	}

	res := make([]string, 0, len(exts))
	for _, e := range exts {
		res = append(res, path+e)
	}

	return res
}

func pathExts(v string) []string {
	if v == "" {
		v = defaultPathExt
	}

	var exts []string

	for _, e := range strings.Split(strings.ToLower(v), ";") {
		if e == "" {
			continue
		}

		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}

		exts = append(exts, e)
	}

	return exts
}

func hasPathSeparator(command string) bool {
	if goos == "windows" {
		return strings.ContainsAny(command, `/\`)
	}

	return strings.Contains(command, "/")
}

func isExecutable(afs afero.Fs, path string) bool {
	info, err := afs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	if goos == "windows" {
		return true
	}

	return info.Mode()&fs.FileMode(0o111) != 0
}
