// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	noDescription = "No description provided for the command."
	noArguments   = "This command does not accept any arguments."
	noOptions     = "This command does not accept any options."
	listHeading   = "Here you can see a list of available commands:"
)

// ListEntry is one line of the command listing.
type ListEntry struct {
	Name    string
	Summary string
}

// Entries returns the listing entries of the commands in t.
func (t *Table) Entries() []ListEntry {
	out := make([]ListEntry, 0, len(t.cmds))
	for _, c := range t.cmds {
		out = append(out, ListEntry{Name: c.Name, Summary: c.Summary()})
	}
	return out
}

// RenderUsage renders the help text of one command. The text has no
// trailing newline.
func RenderUsage(entry, name string, params []Param, description string) string {
	var b strings.Builder
	b.WriteString("Usage: " + entry + " " + name)
	if hasOptions(params) {
		b.WriteString(" [<options>]")
	}
	for _, p := range params {
		if p.AcceptsArgument() {
			b.WriteString(" " + argumentKey(p))
		}
	}

	b.WriteString("\n\nDescription:\n")
	if strings.TrimSpace(description) == "" {
		b.WriteString(noDescription)
	} else {
		b.WriteString(strings.Trim(description, "\n"))
	}

	b.WriteString("\n\nArguments:\n")
	var rows [][2]string
	for _, p := range params {
		if p.AcceptsArgument() {
			rows = append(rows, [2]string{argumentKey(p), p.Description})
		}
	}
	writeRows(&b, rows, noArguments)

	b.WriteString("\n\nOptions:\n")
	rows = rows[:0]
	for _, p := range params {
		if p.IsOption() {
			rows = append(rows, [2]string{optionKey(p), p.Description})
		}
	}
	writeRows(&b, rows, noOptions)
	return b.String()
}

// RenderCommandUsage renders the help text of c.
func RenderCommandUsage(entry string, c *Command) string {
	return RenderUsage(entry, c.Name, c.Params, c.Description)
}

// RenderConsoleUsage renders the usage header of the console itself.
// supported lists extra global options, e.g. "[--config=<file>] ".
func RenderConsoleUsage(entry, supported string) string {
	first := "Usage: " + entry + " "
	return first + supported + "[-h | --help]\n" +
		strings.Repeat(" ", runewidth.StringWidth(first)) + "<command> [<options>] [<args>]"
}

// RenderCommandList renders the console usage header followed by every
// command and its summary.
func RenderCommandList(entry string, entries []ListEntry) string {
	return RenderCommandListWith(entry, "", entries)
}

// RenderCommandListWith is RenderCommandList with extra global options in
// the header.
func RenderCommandListWith(entry, supported string, entries []ListEntry) string {
	var b strings.Builder
	b.WriteString(RenderConsoleUsage(entry, supported))
	b.WriteString("\n\n" + listHeading)
	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Name))
	}
	for _, e := range entries {
		b.WriteString("\n    ")
		if e.Summary == "" {
			b.WriteString(e.Name)
			continue
		}
		b.WriteString(runewidth.FillRight(e.Name, width+4) + e.Summary)
	}
	return b.String()
}

func hasOptions(params []Param) bool {
	for _, p := range params {
		if p.IsOption() {
			return true
		}
	}
	return false
}

func argumentKey(p Param) string {
	if p.optional() || p.OptionBound() {
		return "[<" + p.Name + ">]"
	}
	return "<" + p.Name + ">"
}

func optionKey(p Param) string {
	var flags []string
	if p.Short != "" {
		flags = append(flags, "-"+p.Short)
	}
	if p.Long != "" {
		flags = append(flags, "--"+p.Long)
	}
	key := strings.Join(flags, ", ")
	if p.Type == Bool {
		return key
	}
	if p.optional() {
		return key + " [<" + p.Name + ">]"
	}
	return key + " <" + p.Name + ">"
}

func writeRows(b *strings.Builder, rows [][2]string, empty string) {
	if len(rows) == 0 {
		b.WriteString(empty)
		return
	}
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  ")
		if r[1] == "" {
			b.WriteString(r[0])
			continue
		}
		b.WriteString(runewidth.FillRight(r[0], width) + " " + r[1])
	}
}
