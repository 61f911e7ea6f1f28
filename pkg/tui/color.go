// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color modes accepted by NewColorizer.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer decides whether output written to w gets colors. In auto
// mode colors need a terminal, a TERM other than dumb and no NO_COLOR.
func NewColorizer(mode string, w io.Writer) Colorizer {
	switch mode {
	case ColorNever:
		return Colorizer{}
	case ColorAlways:
		return Colorizer{Enabled: true}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attr)
	col.EnableColor()
	return col.Sprint(text)
}

// Error renders text in bright red.
func (c Colorizer) Error(text string) string {
	return c.wrap(color.FgHiRed, text)
}

// Errorln writes msg as a colored line.
func (c Colorizer) Errorln(w io.Writer, msg string) {
	fmt.Fprintln(w, c.Error(msg))
}

// Errorf writes "Error: <msg>" as a colored line.
func (c Colorizer) Errorf(w io.Writer, format string, args ...any) {
	c.Errorln(w, "Error: "+fmt.Sprintf(format, args...))
}
