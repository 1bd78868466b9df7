// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger in a context.Context.
//
// All output goes to stderr, because stdout belongs to the launched command.
// The level is read once from <EXECUTABLE>_LOG_LEVEL (DEBUG, INFO, WARN or ERROR)
// and defaults to WARN, which keeps a normal launch silent.
// Setting <EXECUTABLE>_LOG_FORMAT=json selects JSON records instead of the pretty handler.
package ctxlog
