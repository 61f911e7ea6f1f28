// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import "strings"

// FlagSpec describes a flag recognised by SplitLeadingFlags.
type FlagSpec struct {
	ConsumesValue bool
}

// HelpFlagSpecs are the console's own help flags.
func HelpFlagSpecs() map[string]FlagSpec {
	return map[string]FlagSpec{
		helpFlagLong:  {},
		helpFlagShort: {},
	}
}

// SplitLeadingFlags splits args into the known flags that precede the
// command name and everything from the first other token on. A "--"
// separator ends the flags and is dropped.
func SplitLeadingFlags(args []string, specs map[string]FlagSpec) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			return args[:i], args[i:]
		}
		name := arg
		if idx := strings.Index(name, "="); idx != -1 {
			name = name[:idx]
		}
		spec, ok := specs[name]
		if !ok {
			return args[:i], args[i:]
		}
		if spec.ConsumesValue && !strings.Contains(arg, "=") {
			i++
		}
	}
	return args, nil
}
