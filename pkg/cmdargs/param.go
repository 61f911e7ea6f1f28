// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import (
	"strings"
	"unicode/utf8"
)

// Kind is the role a parameter plays when binding.
type Kind int

const (
	// NoKind is the zero value. Validation rejects it.
	NoKind Kind = iota
	// Argument is a positional argument. It may also carry flags, in which
	// case the flag is tried first.
	Argument
	// Option is a flag-only parameter.
	Option
	// Excess receives every token left over after binding.
	Excess
)

func (k Kind) String() string {
	switch k {
	case Argument:
		return "argument"
	case Option:
		return "option"
	case Excess:
		return "excess"
	default:
		return "none"
	}
}

// Type is the value type of a parameter.
type Type int

const (
	NoType Type = iota
	String
	Bool
	Int
	Strings
)

// Unsupported marks a declared type outside the builtin set.
const Unsupported Type = -1

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Strings:
		return "array"
	case NoType:
		return ""
	default:
		return "unsupported"
	}
}

func (t Type) builtin() bool {
	return t >= String && t <= Strings
}

// Param describes one command parameter.
type Param struct {
	Name string
	Kind Kind
	Type Type
	// Short is a single character flag, used as -s.
	Short string
	// Long is a multi-character flag, used as --long.
	Long string
	// Optional parameters may be left unset. A parameter with a Default
	// is optional too.
	Optional bool
	// Default is used when nothing was supplied. It must match Type:
	// string, bool, int or []string.
	Default     any
	Description string
}

// HasFlags reports whether the parameter has a short or long flag.
func (p Param) HasFlags() bool {
	return p.Short != "" || p.Long != ""
}

// IsOption reports whether the parameter is bound by flag.
func (p Param) IsOption() bool {
	return p.Kind != Excess && p.HasFlags()
}

// AcceptsArgument reports whether the parameter is bound by position.
func (p Param) AcceptsArgument() bool {
	return p.Kind == Argument
}

// IsExcess reports whether the parameter collects leftover tokens.
func (p Param) IsExcess() bool {
	return p.Kind == Excess
}

// OptionBound reports whether a positional argument can also be given
// by flag.
func (p Param) OptionBound() bool {
	return p.AcceptsArgument() && p.HasFlags()
}

// optional reports whether the parameter may be left unset, either
// explicitly or because it has a default.
func (p Param) optional() bool {
	return p.Optional || p.Default != nil
}

// hint returns the flags as "s|long", skipping missing ones.
func (p Param) hint() string {
	var parts []string
	if p.Short != "" {
		parts = append(parts, p.Short)
	}
	if p.Long != "" {
		parts = append(parts, p.Long)
	}
	return strings.Join(parts, "|")
}

// Validate checks the declaration and returns a *DefinitionError if it
// is malformed.
func (p Param) Validate() error {
	if p.Type == NoType {
		return definitionf(p.Name, "Command's parameter must have type.")
	}
	if !p.Type.builtin() {
		return definitionf(p.Name, "Command options must be builtin type (bool, string, int, array).")
	}
	if p.Kind <= NoKind || p.Kind > Excess {
		return definitionf(p.Name, "No option or argument has been defined.")
	}
	if p.Kind == Option && !p.HasFlags() {
		return definitionf(p.Name, "No option or argument has been defined.")
	}
	if p.Short != "" && utf8.RuneCountInString(p.Short) != 1 {
		return definitionf(p.Name, "Short options must have one character.")
	}
	if p.Long != "" && utf8.RuneCountInString(p.Long) < 2 {
		return definitionf(p.Name, "Long options must have more than one character.")
	}
	if p.Kind == Excess && p.Type != Strings {
		return definitionf(p.Name, "Excessive arguments must be array type.")
	}
	if !p.defaultMatches() {
		return definitionf(p.Name, "Default value of `%s` does not match its type.", p.Name)
	}
	return nil
}

func (p Param) defaultMatches() bool {
	if p.Default == nil {
		return true
	}
	switch p.Type {
	case String:
		_, ok := p.Default.(string)
		return ok
	case Bool:
		_, ok := p.Default.(bool)
		return ok
	case Int:
		_, ok := p.Default.(int)
		return ok
	case Strings:
		_, ok := p.Default.([]string)
		return ok
	}
	return false
}

// ValidateParams validates every parameter in order and checks that
// names are unique.
func ValidateParams(params []Param) error {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.Name]; ok {
			return definitionf(p.Name, "Parameter `%s` is defined more than once.", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
