// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import "strings"

// Resolution is the result of Resolve.
type Resolution struct {
	Command *Command
	// Args are the input tokens after the command name.
	Args []string
}

// Name returns the resolved command name.
func (r Resolution) Name() string {
	return r.Command.Name
}

// Resolve finds the command named by the leading tokens.
//
// The extracted name is the shortest token prefix that equals a command
// name exactly, or the first token when there is none. Every command
// whose name starts with the extracted name is then scored by the number
// of leading words it shares with the input and by the total length of
// its words. The highest score wins; on a tie the earlier command wins.
func Resolve(tokens []string, t *Table) (Resolution, error) {
	if len(tokens) == 0 {
		return Resolution{}, ErrNoCommand
	}
	name := extractName(tokens, t)

	var (
		best      *Command
		bestWords int
		bestChars int
	)
	for _, i := range t.withPrefix(name) {
		c := t.cmds[i]
		words := strings.Split(c.Name, " ")
		matched := matchedWords(words, tokens)
		if matched == 0 {
			continue
		}
		chars := len(strings.Join(words, ""))
		if best == nil || matched > bestWords || (matched == bestWords && chars > bestChars) {
			best, bestWords, bestChars = c, matched, chars
		}
	}
	if best == nil {
		return Resolution{}, &NotFoundError{Command: name}
	}
	return Resolution{
		Command: best,
		Args:    append([]string{}, tokens[bestWords:]...),
	}, nil
}

func extractName(tokens []string, t *Table) string {
	for n := 1; n <= len(tokens); n++ {
		joined := strings.Join(tokens[:n], " ")
		if _, ok := t.Lookup(joined); ok {
			return joined
		}
	}
	return tokens[0]
}

// matchedWords counts the leading words of a command name that equal the
// input tokens.
func matchedWords(words, tokens []string) int {
	n := 0
	for n < len(words) && n < len(tokens) && words[n] == tokens[n] {
		n++
	}
	return n
}
