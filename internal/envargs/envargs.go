// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package envargs

import "strings"

const separator = "="

// Token is any string-like command line token.
type Token interface {
	~string | ~[]byte
}

// Pair is a single KEY=VALUE assignment split at the first '='.
type Pair struct {
	Key   string
	Value string
}

// String renders the pair in KEY=VALUE form.
func (p Pair) String() string {
	return p.Key + separator + p.Value
}

// Split scans tokens from the start and collects every KEY=VALUE assignment
// until it meets a token without '='.
// It returns the pairs and the index of the first token that is not a pair.
// The index equals len(tokens) when every token is a pair.
func Split[T Token](tokens []T) ([]Pair, int) {
	pairs := make([]Pair, 0, len(tokens))

	for _, tok := range tokens {
		key, value, ok := strings.Cut(string(tok), separator)
		if !ok {
			break
		}

		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs, len(pairs)
}

// Environ renders pairs as KEY=VALUE strings, preserving their order.
func Environ(pairs []Pair) []string {
	env := make([]string, len(pairs))
	for i, p := range pairs {
		env[i] = p.String()
	}

	return env
}
