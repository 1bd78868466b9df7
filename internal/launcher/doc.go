// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package launcher starts a single child process with extra environment variables
// and waits for it to finish.
//
// The child inherits the parent's environment, with the supplied variables
// added on top, and by default it shares the parent's standard input, output
// and error. Nothing is captured, buffered or rewritten on the way.
//
// A child that exits with a non-zero status is not treated as a launcher
// failure. Run reports the status in the returned Result and leaves the
// decision to the caller. Only problems with finding, starting or waiting
// for the process are returned as errors, and all of those match ErrIO.
package launcher
