// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/mattn/go-shellwords"
	"github.com/yeetrun/console/pkg/cmdargs"
	"github.com/yeetrun/console/pkg/cmdutil"
	"github.com/yeetrun/console/pkg/env"
	"gopkg.in/yaml.v3"
)

// Manifest is the file format of a discovered command.
type Manifest struct {
	Description string `toml:"description" yaml:"description"`
	// Run is the command line executed for the command. It is split with
	// shell word rules; no shell is involved.
	Run string `toml:"run" yaml:"run"`
	// Requires is a semver constraint on the console version.
	Requires string      `toml:"requires,omitempty" yaml:"requires,omitempty"`
	Params   []ParamSpec `toml:"params,omitempty" yaml:"params,omitempty"`

	path string
}

// ParamSpec is the manifest form of a cmdargs.Param.
type ParamSpec struct {
	Name        string `toml:"name" yaml:"name"`
	Kind        string `toml:"kind,omitempty" yaml:"kind,omitempty"`
	Type        string `toml:"type" yaml:"type"`
	Short       string `toml:"short,omitempty" yaml:"short,omitempty"`
	Long        string `toml:"long,omitempty" yaml:"long,omitempty"`
	Optional    bool   `toml:"optional,omitempty" yaml:"optional,omitempty"`
	Default     any    `toml:"default,omitempty" yaml:"default,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// LoadManifest decodes the manifest at path. The format is chosen by the
// file extension: .yaml and .yml are YAML, everything else is TOML.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	m.path = path
	return &m, nil
}

// Param converts the spec. Unknown kinds and types produce a Param that
// fails validation.
func (s ParamSpec) Param() cmdargs.Param {
	t := parseType(s.Type)
	return cmdargs.Param{
		Name:        s.Name,
		Kind:        parseKind(s.Kind),
		Type:        t,
		Short:       s.Short,
		Long:        s.Long,
		Optional:    s.Optional,
		Default:     normalizeDefault(t, s.Default),
		Description: s.Description,
	}
}

func parseKind(s string) cmdargs.Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "argument", "arg":
		return cmdargs.Argument
	case "option", "opt":
		return cmdargs.Option
	case "excess", "rest":
		return cmdargs.Excess
	}
	return cmdargs.NoKind
}

func parseType(s string) cmdargs.Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return cmdargs.NoType
	case "string":
		return cmdargs.String
	case "bool":
		return cmdargs.Bool
	case "int":
		return cmdargs.Int
	case "array":
		return cmdargs.Strings
	}
	return cmdargs.Unsupported
}

// normalizeDefault maps decoder types onto the Go types cmdargs expects.
// Values that do not fit are returned as is and rejected by validation.
func normalizeDefault(t cmdargs.Type, v any) any {
	switch x := v.(type) {
	case int64:
		if t == cmdargs.Int {
			return int(x)
		}
	case []any:
		if t != cmdargs.Strings {
			return v
		}
		out := make([]string, 0, len(x))
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return v
			}
			out = append(out, s)
		}
		return out
	}
	return v
}

// Command returns the command described by m.
func (m *Manifest) Command(name string, opts Options) *cmdargs.Command {
	params := make([]cmdargs.Param, 0, len(m.Params))
	for _, s := range m.Params {
		params = append(params, s.Param())
	}
	c := &cmdargs.Command{
		Name:        name,
		Description: m.Description,
		Params:      params,
		Run:         m.handler(opts.Stdio.OrOS()),
	}
	if err := m.checkRequires(opts.Version); err != nil {
		c.Err = err
	}
	return c
}

func (m *Manifest) checkRequires(version string) error {
	if m.Requires == "" || version == "" {
		return nil
	}
	unsatisfied := &cmdargs.DefinitionError{Msg: fmt.Sprintf("Command requires console version %s.", m.Requires)}
	c, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return unsatisfied
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return unsatisfied
	}
	if !c.Check(v) {
		return unsatisfied
	}
	return nil
}

func (m *Manifest) handler(stdio cmdutil.Stdio) cmdargs.Handler {
	return func(ctx context.Context, in cmdargs.Values) error {
		argv, err := shellwords.Parse(m.Run)
		if err != nil {
			return fmt.Errorf("invalid run line in %s: %w", m.path, err)
		}
		if len(argv) == 0 {
			return fmt.Errorf("%s has no run line", m.path)
		}
		for _, s := range m.Params {
			if parseKind(s.Kind) == cmdargs.Excess {
				argv = append(argv, in.Strings(s.Name)...)
			}
		}
		cmd := cmdutil.NewStdCmd(ctx, stdio, env.Environ(in), argv[0], argv[1:]...)
		if err := cmd.Run(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("%s interrupted: %w", argv[0], ctxErr)
			}
			if code, ok := cmdutil.ExitCode(err); ok {
				return &cmdargs.ExitError{Code: code}
			}
			return fmt.Errorf("failed to run %s: %w", argv[0], err)
		}
		return nil
	}
}
