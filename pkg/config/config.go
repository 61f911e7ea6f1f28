// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// FileName is the config file looked up from the working directory.
	FileName = "console.toml"

	DefaultEntryPoint  = "console"
	DefaultCommandsDir = "Commands"
	DefaultSuffix      = "Command.toml"
)

type Config struct {
	EntryPoint       string `toml:"entry_point,omitempty"`
	CommandsDir      string `toml:"commands_dir,omitempty"`
	CommandsSuffix   string `toml:"commands_suffix,omitempty"`
	SupportedOptions string `toml:"supported_options,omitempty"`
	Color            string `toml:"color,omitempty"`
	// Version is checked against manifest requires constraints. Empty
	// uses the binary's version.
	Version string    `toml:"version,omitempty"`
	Log     LogConfig `toml:"log,omitempty"`

	// Path is the file the config was read from, if any.
	Path string `toml:"-"`
}

// LogConfig configures the command event log.
type LogConfig struct {
	File       string `toml:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb,omitempty"`
	MaxBackups int    `toml:"max_backups,omitempty"`
	MaxAgeDays int    `toml:"max_age_days,omitempty"`
	Compress   bool   `toml:"compress,omitempty"`
}

// Default returns the config used when no file exists. Relative paths are
// resolved against dir.
func Default(dir string) *Config {
	c := &Config{}
	c.fill(dir)
	return c
}

func (c *Config) fill(dir string) {
	if c.EntryPoint == "" {
		c.EntryPoint = DefaultEntryPoint
	}
	if c.CommandsDir == "" {
		c.CommandsDir = DefaultCommandsDir
	}
	if c.CommandsSuffix == "" {
		c.CommandsSuffix = DefaultSuffix
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if !filepath.IsAbs(c.CommandsDir) {
		c.CommandsDir = filepath.Join(dir, c.CommandsDir)
	}
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		c.Log.File = filepath.Join(dir, c.Log.File)
	}
}

// Load reads the config file at path. Relative paths inside it are
// resolved against the file's directory.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	c.Path = abs
	c.fill(filepath.Dir(abs))
	return &c, nil
}

// Find looks for FileName in startDir and its parents and loads the first
// one found. Without a file it returns Default(startDir).
func Find(startDir string) (*Config, error) {
	path, err := findPath(startDir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(startDir), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func findPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// ApplyEnv overrides fields from CONSOLE_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("CONSOLE_COMMANDS_DIR"); v != "" {
		c.CommandsDir = v
	}
	if v := getenv("CONSOLE_COMMANDS_SUFFIX"); v != "" {
		c.CommandsSuffix = v
	}
	if v := getenv("CONSOLE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}
