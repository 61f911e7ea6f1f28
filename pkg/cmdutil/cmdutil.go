// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Stdio are the streams handed to a child process.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OSStdio returns the process's own streams.
func OSStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// OrOS returns s with nil streams replaced by the process's own.
func (s Stdio) OrOS() Stdio {
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	return s
}

// NewStdCmd returns a command bound to ctx that uses stdio for its streams
// and inherits the current environment plus env.
func NewStdCmd(ctx context.Context, stdio Stdio, env []string, name string, arg ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err
	cmd.Env = append(os.Environ(), env...)
	return cmd
}

// ExitCode returns the exit code carried by err and whether err came from
// a process that ran and exited.
func ExitCode(err error) (int, bool) {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), true
	}
	return 0, false
}
