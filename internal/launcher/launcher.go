// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/crossenv/internal/ctxlog"
	"github.com/matt-FFFFFF/crossenv/internal/envargs"
	"github.com/matt-FFFFFF/crossenv/internal/launcher/commandinpath"
)

var (
	// ErrIO is the parent of every error caused by the operating system
	// while finding, starting or waiting for the child process.
	ErrIO = errors.New("io error")
	// ErrCommandNotFound is returned when the command cannot be resolved to an executable.
	ErrCommandNotFound = fmt.Errorf("%w: command not found", ErrIO)
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = fmt.Errorf("%w: could not start process", ErrIO)
	// ErrWaitFailed is returned when waiting for the process fails for a reason other than its exit status.
	ErrWaitFailed = fmt.Errorf("%w: could not wait for process", ErrIO)
	// ErrEmptyKey is returned when an environment variable has an empty name.
	ErrEmptyKey = errors.New("key is empty")
)

// waitFn blocks until cmd exits.
var waitFn = func(cmd *exec.Cmd) error {
	return cmd.Wait()
}

// Spec describes the child process to launch.
type Spec struct {
	Command string         // Command name or path. Bare names are searched for in PATH.
	Args    []string       // Arguments, not including the command itself.
	Env     []envargs.Pair // Variables added to the inherited environment. Later entries win.
	Stdin   io.Reader      // Defaults to os.Stdin.
	Stdout  io.Writer      // Defaults to os.Stdout.
	Stderr  io.Writer      // Defaults to os.Stderr.
}

// Result describes a child process that ran to completion.
type Result struct {
	Path     string // Resolved executable path.
	ExitCode int    // 128+signal when the process was terminated by a signal on Unix.
}

// Success reports whether the child exited with status zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Run starts the process described by spec and blocks until it exits.
// Every key in spec.Env is validated before anything is started.
// A non-zero exit status is reported in the Result, not as an error.
func Run(ctx context.Context, spec Spec) (*Result, error) {
	logger := ctxlog.Logger(ctx).With("command", spec.Command)

	for _, p := range spec.Env {
		if p.Key == "" {
			logger.Debug("rejecting environment variable with empty key", "value", p.Value)
			return nil, ErrEmptyKey
		}
	}

	path, err := commandinpath.FindIn(spec.Command, lookupVar(spec.Env, "PATH"), lookupVar(spec.Env, "PATHEXT"))
	if err != nil {
		return nil, errors.Join(ErrCommandNotFound, err)
	}

	extra := envargs.Environ(spec.Env)
	logger.Debug("adding environment variables", "vars", extra)

	env := append(os.Environ(), extra...)

	// Built directly so that os/exec does not search PATH a second time.
	cmd := &exec.Cmd{ //nolint:gosec
		Path:   path,
		Args:   append([]string{spec.Command}, spec.Args...),
		Env:    env,
		Stdin:  spec.Stdin,
		Stdout: spec.Stdout,
		Stderr: spec.Stderr,
	}

	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}

	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	logger.Debug("starting process", "path", path, "args", spec.Args)

	if err := cmd.Start(); err != nil {
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	res := &Result{Path: path}

	err = waitFn(cmd)

	var exitErr *exec.ExitError

	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		logger.Debug("process exited with non-zero status", "error", err)
	default:
		return nil, errors.Join(ErrWaitFailed, err)
	}

	res.ExitCode = exitCode(cmd.ProcessState)
	logger.Debug("process finished", "exitCode", res.ExitCode)

	return res, nil
}

// lookupVar returns the value the child will see for name: the last pair
// that sets it, or else the value inherited from this process.
// Names are case-insensitive on Windows.
func lookupVar(pairs []envargs.Pair, name string) string {
	for i := len(pairs) - 1; i >= 0; i-- {
		if pairs[i].Key == name || (runtime.GOOS == "windows" && strings.EqualFold(pairs[i].Key, name)) {
			return pairs[i].Value
		}
	}

	return os.Getenv(name)
}
