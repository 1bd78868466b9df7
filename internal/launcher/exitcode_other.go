// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !unix

package launcher

import "os"

func exitCode(state *os.ProcessState) int {
	return state.ExitCode()
}
