// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command console runs the commands declared under a project's commands
// directory.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"reflect"
	"syscall"

	"github.com/shayne/yargs"
	"github.com/yeetrun/console/pkg/cli"
	"github.com/yeetrun/console/pkg/cmdutil"
	"github.com/yeetrun/console/pkg/config"
	"github.com/yeetrun/console/pkg/discover"
	"github.com/yeetrun/console/pkg/tui"
	"gopkg.in/natefinch/lumberjack.v2"
)

const version = "1.0.0"

type globalFlagsParsed struct {
	Config      string `flag:"config" help:"Path to console.toml (default: nearest in a parent directory)"`
	CommandsDir string `flag:"commands-dir" help:"Override the commands directory (CONSOLE_COMMANDS_DIR)"`
	NoColor     bool   `flag:"no-color" help:"Disable colored output"`
}

// parseGlobalFlags strips the console's own flags from the front of args.
// Help flags stay in the returned args for the runner.
func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	specs := globalFlagSpecs()
	help := cli.HelpFlagSpecs()
	for k, v := range help {
		specs[k] = v
	}
	leading, rest := cli.SplitLeadingFlags(args, specs)

	var flags, helpArgs []string
	for _, f := range leading {
		if _, ok := help[f]; ok {
			helpArgs = append(helpArgs, f)
			continue
		}
		flags = append(flags, f)
	}
	remaining := append(helpArgs, rest...)
	if len(flags) == 0 {
		return globalFlagsParsed{}, remaining, nil
	}
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](flags, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, remaining, nil
}

// globalFlagSpecs derives the leading flag set from the `flag` tags of
// globalFlagsParsed. Only bool flags stand alone.
func globalFlagSpecs() map[string]cli.FlagSpec {
	specs := make(map[string]cli.FlagSpec)
	t := reflect.TypeFor[globalFlagsParsed]()
	for i := range t.NumField() {
		f := t.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok {
			continue
		}
		specs["--"+name] = cli.FlagSpec{ConsumesValue: f.Type.Kind() != reflect.Bool}
	}
	return specs
}

func loadConfig(flags globalFlagsParsed) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.Config != "" {
		cfg, err = config.Load(flags.Config)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg, err = config.Find(wd)
	}
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	if flags.CommandsDir != "" {
		cfg.CommandsDir = flags.CommandsDir
	}
	if flags.NoColor {
		cfg.Color = tui.ColorNever
	}
	return cfg, nil
}

func eventLog(cfg config.LogConfig) (cli.Observer, io.Closer) {
	if cfg.File == "" {
		return cli.Nop{}, nil
	}
	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return cli.NewLogObserver(w), w
}

func run(ctx context.Context, args []string) int {
	flags, args, err := parseGlobalFlags(args)
	if err != nil {
		tui.NewColorizer(tui.ColorAuto, os.Stderr).Errorf(os.Stderr, "%v", err)
		return 1
	}
	cfg, err := loadConfig(flags)
	if err != nil {
		tui.NewColorizer(tui.ColorAuto, os.Stderr).Errorf(os.Stderr, "failed to load config: %v", err)
		return 1
	}
	colorizer := tui.NewColorizer(cfg.Color, os.Stderr)

	v := cfg.Version
	if v == "" {
		v = version
	}
	cmds, err := discover.Discover(ctx, cfg.CommandsDir, cfg.CommandsSuffix, discover.Options{
		Version: v,
		Stdio:   cmdutil.OSStdio(),
	})
	if err != nil {
		colorizer.Errorf(os.Stderr, "%v", err)
		return 1
	}

	obs, closer := eventLog(cfg.Log)
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("failed to close event log: %v", err)
			}
		}()
	}

	app := &cli.App{
		EntryPoint:       cfg.EntryPoint,
		SupportedOptions: cfg.SupportedOptions,
		CommandsDir:      cfg.CommandsDir,
		Commands:         cmds,
		Observer:         obs,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Color:            colorizer,
	}
	return app.Run(ctx, args)
}

func main() {
	log.SetFlags(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
