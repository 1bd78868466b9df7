// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package launcher

import (
	"os"
	"syscall"
)

const signalExitBase = 128

// exitCode follows the shell convention of 128+signal for a signalled child.
func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return signalExitBase + int(ws.Signal())
	}

	return state.ExitCode()
}
