// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/yeetrun/console/pkg/cmdargs"
	"github.com/yeetrun/console/pkg/tui"
)

const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
)

// App resolves, binds and runs commands from a table.
type App struct {
	// EntryPoint is the program name shown in usage lines.
	EntryPoint string
	// SupportedOptions lists extra global options in the console usage,
	// e.g. "[--config=<file>] ".
	SupportedOptions string
	// CommandsDir is named in the error shown when there are no commands.
	CommandsDir string
	Commands    *cmdargs.Table
	Observer    Observer
	Stdout      io.Writer
	Stderr      io.Writer
	Color       tui.Colorizer
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}

func (a *App) observer() Observer {
	if a.Observer == nil {
		return Nop{}
	}
	return a.Observer
}

func (a *App) entry() string {
	if a.EntryPoint == "" {
		return "console"
	}
	return a.EntryPoint
}

// Run runs the command named by args and returns the process exit code.
//
// Leading -h or --help flags show the command listing, or the usage of
// the named command. Help flags after the command name belong to the
// command.
func (a *App) Run(ctx context.Context, args []string) int {
	help := false
	for len(args) > 0 && (args[0] == helpFlagShort || args[0] == helpFlagLong) {
		help = true
		args = args[1:]
	}

	if a.Commands == nil || a.Commands.Len() == 0 {
		if help {
			fmt.Fprintln(a.stdout(), cmdargs.RenderConsoleUsage(a.entry(), a.SupportedOptions))
			return 0
		}
		a.Color.Errorln(a.stderr(), fmt.Sprintf("There is no command in %s path!", a.CommandsDir))
		return 1
	}
	if len(args) == 0 {
		fmt.Fprintln(a.stdout(), cmdargs.RenderCommandListWith(a.entry(), a.SupportedOptions, a.Commands.Entries()))
		return 0
	}

	res, err := cmdargs.Resolve(args, a.Commands)
	if err != nil {
		a.Color.Errorln(a.stderr(), err.Error())
		return 1
	}
	cmd := res.Command
	if help {
		if err := cmd.Validate(); err != nil {
			a.Color.Errorf(a.stderr(), "%s", err)
			return 1
		}
		fmt.Fprintln(a.stdout(), cmdargs.RenderCommandUsage(a.entry(), cmd))
		return 0
	}
	return a.run(ctx, cmd, res.Args)
}

func (a *App) run(ctx context.Context, cmd *cmdargs.Command, args []string) int {
	ev := Event{ID: uuid.New(), Command: cmd.Name, Args: args}
	obs := a.observer()
	obs.Notify(ctx, ev.with(EventRunning))

	fail := func(err error) {
		e := ev.with(EventFailed)
		e.Err = err
		e.ExitCode = 1
		obs.Notify(ctx, e)
	}

	if err := cmd.Validate(); err != nil {
		a.Color.Errorf(a.stderr(), "%s", err)
		fail(err)
		return 1
	}
	in, err := cmdargs.Bind(cmd.Params, cmdargs.NewStream(args))
	if err != nil {
		a.Color.Errorf(a.stderr(), "%s", err)
		var perr *cmdargs.PromptError
		if errors.As(err, &perr) {
			fmt.Fprintln(a.stderr(), cmdargs.RenderCommandUsage(a.entry(), cmd))
		}
		fail(err)
		return 1
	}

	if cmd.Run == nil {
		err = fmt.Errorf("command %q has no handler", cmd.Name)
	} else {
		err = cmd.Run(ctx, in)
	}
	code := 0
	var exit *cmdargs.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exit):
		code = exit.Code
	default:
		a.Color.Errorln(a.stderr(), "Failed to execute command: "+err.Error())
		fail(err)
		return 1
	}
	e := ev.with(EventCompleted)
	e.ExitCode = code
	obs.Notify(ctx, e)
	return code
}
