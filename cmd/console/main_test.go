// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/yeetrun/console/pkg/cli"
	"github.com/yeetrun/console/pkg/config"
)

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFlags globalFlagsParsed
		wantArgs  []string
	}{
		{
			name:     "no flags",
			args:     []string{"db", "migrate", "--force"},
			wantArgs: []string{"db", "migrate", "--force"},
		},
		{
			name:      "config and no-color",
			args:      []string{"--config", "x.toml", "--no-color", "db"},
			wantFlags: globalFlagsParsed{Config: "x.toml", NoColor: true},
			wantArgs:  []string{"db"},
		},
		{
			name:      "help kept for runner",
			args:      []string{"--commands-dir=cmds", "-h", "db"},
			wantFlags: globalFlagsParsed{CommandsDir: "cmds"},
			wantArgs:  []string{"-h", "db"},
		},
		{
			name:     "flags after command belong to it",
			args:     []string{"db", "--no-color"},
			wantArgs: []string{"db", "--no-color"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, args, err := parseGlobalFlags(tt.args)
			if err != nil {
				t.Fatalf("parseGlobalFlags error: %v", err)
			}
			if flags != tt.wantFlags {
				t.Fatalf("flags = %#v, want %#v", flags, tt.wantFlags)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestGlobalFlagSpecs(t *testing.T) {
	want := map[string]cli.FlagSpec{
		"--config":       {ConsumesValue: true},
		"--commands-dir": {ConsumesValue: true},
		"--no-color":     {},
	}
	if got := globalFlagSpecs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("globalFlagSpecs = %#v, want %#v", got, want)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.toml")
	if err := os.WriteFile(path, []byte("entry_point = \"tool\"\ncolor = \"always\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONSOLE_COMMANDS_DIR", "")
	cfg, err := loadConfig(globalFlagsParsed{Config: path, CommandsDir: "/cmds", NoColor: true})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.EntryPoint != "tool" || cfg.CommandsDir != "/cmds" || cfg.Color != "never" {
		t.Fatalf("loadConfig = %+v", cfg)
	}
}

func TestEventLog(t *testing.T) {
	obs, closer := eventLog(config.LogConfig{})
	if closer != nil {
		t.Fatalf("eventLog without file returned a closer")
	}
	if _, ok := obs.(cli.Nop); !ok {
		t.Fatalf("eventLog without file = %T, want cli.Nop", obs)
	}

	file := filepath.Join(t.TempDir(), "events.log")
	obs, closer = eventLog(config.LogConfig{File: file, MaxSizeMB: 1})
	obs.Notify(context.Background(), cli.Event{Kind: cli.EventCompleted, Command: "db"})
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `completed "db" exit=0`) {
		t.Fatalf("event log = %q", b)
	}
}
