// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/crossenv"
	"github.com/matt-FFFFFF/crossenv/internal/ctxlog"
	"github.com/matt-FFFFFF/crossenv/internal/envargs"
	"github.com/matt-FFFFFF/crossenv/internal/launcher"
	"github.com/urfave/cli/v3"
)

const usage = `Usage: crossenv [KEY=VALUE ...] <command> [args ...]
Run <command> with each KEY=VALUE added to its environment.
`

// ErrNoCommand is returned when every argument is a KEY=VALUE pair.
var ErrNoCommand = errors.New("no command provided")

// newRootCmd builds the root command. Flag parsing is disabled so that every
// argument, including ones that look like flags, reaches the splitter untouched.
func newRootCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "crossenv",
		Usage:           "run a command with extra environment variables",
		UsageText:       "crossenv [KEY=VALUE ...] <command> [args ...]",
		Version:         fmt.Sprintf("%s (commit: %s)", crossenv.Version, crossenv.Commit),
		Writer:          stdout,
		ErrWriter:       stderr,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideHelpCommand: true,
		HideVersion:     true,
		Copyright:       "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		// Exit codes are turned into os.Exit calls by main, not by the framework.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	tokens := cmd.Args().Slice()
	logger := ctxlog.Logger(ctx).With("version", cmd.Version)

	pairs, idx := envargs.Split(tokens)
	logger.Debug("split arguments", "pairs", len(pairs), "index", idx, "tokens", len(tokens))

	if len(pairs) == 0 {
		_, err := io.WriteString(cmd.Root().Writer, usage)
		return err
	}

	if idx >= len(tokens) {
		return ErrNoCommand
	}

	res, err := launcher.Run(ctx, launcher.Spec{
		Command: tokens[idx],
		Args:    tokens[idx+1:],
		Env:     pairs,
	})
	if err != nil {
		return err
	}

	if !res.Success() {
		code := res.ExitCode
		if code < 0 {
			code = 1
		}

		return cli.Exit("", code)
	}

	return nil
}
