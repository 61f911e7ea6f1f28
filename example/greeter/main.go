// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greeter shows a console built from Go handlers instead of
// discovered manifests.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yeetrun/console/pkg/cli"
	"github.com/yeetrun/console/pkg/cmdargs"
	"github.com/yeetrun/console/pkg/tui"
)

func commands() *cmdargs.Table {
	return cmdargs.NewTable(
		&cmdargs.Command{
			Name:        "hello",
			Description: "Greets someone.\nRepeats the greeting when --times is given.",
			Params: []cmdargs.Param{
				{Name: "name", Kind: cmdargs.Argument, Type: cmdargs.String, Default: "World", Description: "Who to greet"},
				{Name: "times", Kind: cmdargs.Option, Type: cmdargs.Int, Short: "n", Long: "times", Default: 1, Description: "How many times"},
				{Name: "shout", Kind: cmdargs.Option, Type: cmdargs.Bool, Long: "shout", Description: "Upper-case the greeting"},
			},
			Run: func(ctx context.Context, in cmdargs.Values) error {
				msg := fmt.Sprintf("Hello, %s!", in.String("name"))
				if in.Bool("shout") {
					msg = strings.ToUpper(msg)
				}
				for range in.Int("times") {
					fmt.Println(msg)
				}
				return nil
			},
		},
		&cmdargs.Command{
			Name:        "greet-all",
			Description: "Greets everyone passed on the command line.",
			Params: []cmdargs.Param{
				{Name: "names", Kind: cmdargs.Excess, Type: cmdargs.Strings},
			},
			Run: func(ctx context.Context, in cmdargs.Values) error {
				names := in.Strings("names")
				if len(names) == 0 {
					return &cmdargs.ExitError{Code: 2}
				}
				fmt.Printf("Hello, %s!\n", strings.Join(names, ", "))
				return nil
			},
		},
	)
}

func main() {
	app := &cli.App{
		EntryPoint:  "greeter",
		CommandsDir: "greeter",
		Commands:    commands(),
		Color:       tui.NewColorizer(tui.ColorAuto, os.Stderr),
	}
	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
