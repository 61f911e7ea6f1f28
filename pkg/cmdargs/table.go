// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import (
	"context"
	"slices"
	"strings"

	"github.com/tidwall/btree"
)

// Handler runs a command with its bound values.
type Handler func(ctx context.Context, in Values) error

// Command is a named command with its parameters.
type Command struct {
	// Name is one or more words separated by single spaces.
	Name        string
	Description string
	Params      []Param
	Run         Handler
	// Err, when set, is returned instead of running or describing the
	// command. Loaders use it for commands whose declaration is broken.
	Err error
}

// Summary returns the first line of the description, trimmed.
func (c *Command) Summary() string {
	first, _, _ := strings.Cut(strings.TrimLeft(c.Description, "\n"), "\n")
	return strings.TrimSpace(first)
}

// Validate returns the command's definition error, if any.
func (c *Command) Validate() error {
	if c.Err != nil {
		return c.Err
	}
	return ValidateParams(c.Params)
}

// Table is an ordered set of commands keyed by name.
type Table struct {
	cmds  []*Command
	index *btree.Map[string, int]
}

// NewTable returns a table holding cmds. Later duplicates of a name are
// ignored.
func NewTable(cmds ...*Command) *Table {
	t := &Table{index: btree.NewMap[string, int](0)}
	for _, c := range cmds {
		t.Add(c)
	}
	return t
}

// Add appends c. It reports false if a command with the same name already
// exists.
func (t *Table) Add(c *Command) bool {
	if _, ok := t.index.Get(c.Name); ok {
		return false
	}
	t.index.Set(c.Name, len(t.cmds))
	t.cmds = append(t.cmds, c)
	return true
}

// Lookup returns the command named exactly name.
func (t *Table) Lookup(name string) (*Command, bool) {
	i, ok := t.index.Get(name)
	if !ok {
		return nil, false
	}
	return t.cmds[i], true
}

// Len returns the number of commands.
func (t *Table) Len() int {
	return len(t.cmds)
}

// Commands returns the commands in insertion order.
func (t *Table) Commands() []*Command {
	return append([]*Command(nil), t.cmds...)
}

// withPrefix returns the insertion indexes of commands whose name starts
// with prefix, in insertion order.
func (t *Table) withPrefix(prefix string) []int {
	var out []int
	t.index.Ascend(prefix, func(name string, i int) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		out = append(out, i)
		return true
	})
	slices.Sort(out)
	return out
}
