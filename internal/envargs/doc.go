// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package envargs separates the leading KEY=VALUE assignments on a command line
// from the command that follows them.
//
// Scanning stops at the first token that does not contain '='. Everything from
// that token onwards is left untouched, so a command argument such as
// "--define=x" is never mistaken for an assignment once the command has been found.
package envargs
