// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yeetrun/console/pkg/cmdargs"
)

// Prefix is prepended to every exported variable name.
const Prefix = "CONSOLE_"

// Key returns the variable name for a parameter, e.g. "dry-run" becomes
// CONSOLE_DRY_RUN.
func Key(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, name)
	return Prefix + name
}

// Environ returns KEY=value entries for the set values of in, in
// declaration order. Lists are joined with commas.
func Environ(in cmdargs.Values) []string {
	var out []string
	in.Each(func(name string, val any) {
		s, ok := format(val)
		if !ok {
			return
		}
		out = append(out, fmt.Sprintf("%s=%s", Key(name), s))
	})
	return out
}

func format(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case []string:
		return strings.Join(v, ","), true
	}
	return fmt.Sprint(val), true
}
