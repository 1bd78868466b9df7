// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color adds ANSI escape codes to diagnostic output.
// Color is decided once at startup from NO_COLOR, FORCE_COLOR and whether
// stderr is a terminal.
package color
