// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import "strings"

// Stream is the token list of one invocation. Tokens are consumed at most
// once and keep their original index, so lookahead from a flag always
// refers to the token that followed it on the command line.
type Stream struct {
	tokens []string
	used   []bool
	left   int
}

// NewStream returns a Stream over a copy of tokens.
func NewStream(tokens []string) *Stream {
	return &Stream{
		tokens: append([]string(nil), tokens...),
		used:   make([]bool, len(tokens)),
		left:   len(tokens),
	}
}

// AllUsed reports whether every token has been consumed.
func (s *Stream) AllUsed() bool {
	return s.left == 0
}

// Remaining returns the unconsumed tokens in original order without
// consuming them.
func (s *Stream) Remaining() []string {
	out := make([]string, 0, s.left)
	for i, tok := range s.tokens {
		if !s.used[i] {
			out = append(out, tok)
		}
	}
	return out
}

func (s *Stream) available(i int) bool {
	return i >= 0 && i < len(s.tokens) && !s.used[i]
}

func (s *Stream) consume(i int) {
	if s.available(i) {
		s.used[i] = true
		s.left--
	}
}

// TakeFirst consumes and returns the token with the smallest remaining
// index.
func (s *Stream) TakeFirst() (string, bool) {
	for i, tok := range s.tokens {
		if !s.used[i] {
			s.consume(i)
			return tok, true
		}
	}
	return "", false
}

// TakeAll consumes every remaining token and returns them in order. The
// result is never nil.
func (s *Stream) TakeAll() []string {
	out := s.Remaining()
	for i := range s.used {
		s.used[i] = true
	}
	s.left = 0
	return out
}

// TakeArgument takes the positional value for p. It returns nil when the
// stream has nothing left for a scalar argument.
func (s *Stream) TakeArgument(p Param) (any, error) {
	switch p.Type {
	case Strings:
		return s.TakeAll(), nil
	case Bool:
		tok, ok := s.TakeFirst()
		if !ok {
			return nil, nil
		}
		switch tok {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, promptf(p.Name, "Bool argument accepts true or false.")
	default:
		tok, ok := s.TakeFirst()
		if !ok {
			return nil, nil
		}
		return tok, nil
	}
}

// TakeOption takes the flagged value for p. It returns nil when the flag
// does not occur, except for required booleans which are false. A bare
// boolean flag consumes only its last occurrence.
func (s *Stream) TakeOption(p Param) (any, error) {
	switch p.Type {
	case Strings:
		return s.takeOptionList(p), nil
	case Bool:
		return s.takeOptionBool(p)
	default:
		return s.takeOptionScalar(p)
	}
}

// flagForm is how a token refers to a parameter's flag.
type flagForm int

const (
	formNone flagForm = iota
	formLongBare
	formLongEquals
	formShortBare
	formShortEquals
)

func (f flagForm) equals() bool {
	return f == formLongEquals || f == formShortEquals
}

func (f flagForm) long() bool {
	return f == formLongBare || f == formLongEquals
}

// match classifies tok against the flags of p. Tokens starting with "--"
// are only compared to the long flag.
func match(p Param, tok string) flagForm {
	if strings.HasPrefix(tok, "--") {
		if p.Long == "" {
			return formNone
		}
		switch {
		case tok == "--"+p.Long:
			return formLongBare
		case strings.HasPrefix(tok, "--"+p.Long+"="):
			return formLongEquals
		}
		return formNone
	}
	if !strings.HasPrefix(tok, "-") || p.Short == "" {
		return formNone
	}
	switch {
	case tok == "-"+p.Short:
		return formShortBare
	case strings.HasPrefix(tok, "-"+p.Short+"="):
		return formShortEquals
	}
	return formNone
}

// equalsValue returns the part of tok after the flag and "=".
func equalsValue(p Param, tok string, f flagForm) string {
	if f.long() {
		return strings.TrimPrefix(tok, "--"+p.Long+"=")
	}
	return strings.TrimPrefix(tok, "-"+p.Short+"=")
}

type occurrence struct {
	index int
	form  flagForm
}

func (s *Stream) occurrences(p Param) []occurrence {
	var out []occurrence
	for i, tok := range s.tokens {
		if s.used[i] {
			continue
		}
		if f := match(p, tok); f != formNone {
			out = append(out, occurrence{index: i, form: f})
		}
	}
	return out
}

func (s *Stream) takeOptionList(p Param) any {
	var values []string
	for _, o := range s.occurrences(p) {
		if !o.form.equals() {
			continue
		}
		values = append(values, equalsValue(p, s.tokens[o.index], o.form))
		s.consume(o.index)
	}
	if values == nil {
		return nil
	}
	return values
}

func (s *Stream) takeOptionBool(p Param) (any, error) {
	occ := s.occurrences(p)
	if len(occ) == 0 {
		if p.optional() {
			return nil, nil
		}
		return false, nil
	}
	for _, o := range occ {
		switch o.form {
		case formLongEquals:
			return nil, promptf(p.Name, "Long option `%s` must be boolean and does not accept values.", p.Long)
		case formShortEquals:
			return nil, promptf(p.Name, "Short option `%s` must be boolean and does not accept values.", p.Short)
		}
	}
	s.consume(occ[len(occ)-1].index)
	return true, nil
}

func (s *Stream) takeOptionScalar(p Param) (any, error) {
	occ := s.occurrences(p)
	if len(occ) == 0 {
		return nil, nil
	}
	last := occ[len(occ)-1]
	var value string
	if last.form.equals() {
		value = equalsValue(p, s.tokens[last.index], last.form)
	} else {
		next := last.index + 1
		if !s.available(next) {
			return nil, promptf(p.Name, "Option needs value.")
		}
		value = s.tokens[next]
	}
	for _, o := range occ {
		s.consume(o.index)
		if !o.form.equals() {
			s.consume(o.index + 1)
		}
	}
	return value, nil
}
