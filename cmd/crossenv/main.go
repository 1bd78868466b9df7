// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the crossenv command-line interface (CLI).
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/crossenv/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.FromEnv())
	os.Exit(run(ctx, os.Stdout, os.Stderr, os.Args))
}

// run executes the root command and maps its outcome to a process exit code.
// A launched command that exits non-zero passes its own status through.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	err := newRootCmd(stdout, stderr).Run(ctx, args)

	var exitCoder cli.ExitCoder

	switch {
	case err == nil:
		ctxlog.Info(ctx, "command completed successfully")
		return 0
	case errors.As(err, &exitCoder):
		ctxlog.Info(ctx, "command exited with non-zero status", "exitCode", exitCoder.ExitCode())
		return exitCoder.ExitCode()
	default:
		ctxlog.Error(ctx, "command execution failed", "error", err)
		return 1
	}
}
