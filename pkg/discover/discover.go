// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discover builds a command table from a directory of command
// manifests.
package discover

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"github.com/yeetrun/console/pkg/cmdargs"
	"github.com/yeetrun/console/pkg/cmdutil"
	"golang.org/x/sync/errgroup"
)

// Options control how manifests are loaded and run.
type Options struct {
	// Version is the console version checked against a manifest's
	// requires constraint. Empty skips the check.
	Version string
	// Stdio is used by manifest commands. Nil streams fall back to the
	// process's own.
	Stdio cmdutil.Stdio
	// Workers bounds concurrent manifest decoding. Zero uses GOMAXPROCS.
	Workers int
}

// Discover walks root and returns a table with one command per file whose
// name ends with suffix. Commands are ordered by relative path. A missing
// root yields an empty table.
func Discover(ctx context.Context, root, suffix string, opts Options) (*cmdargs.Table, error) {
	files, err := Files(root, suffix)
	if err != nil {
		return nil, err
	}
	opts.Stdio = opts.Stdio.OrOS()
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	cmds := make([]*cmdargs.Command, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rel := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(root, rel)
			m, err := LoadManifest(path)
			if err != nil {
				return err
			}
			cmds[i] = m.Command(CommandName(rel, suffix), opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cmdargs.NewTable(cmds...), nil
}

// Files returns the paths relative to root of every regular file whose
// name ends with suffix, sorted.
func Files(root, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// Exists reports whether root is an existing directory.
func Exists(root string) bool {
	fi, err := os.Stat(root)
	return err == nil && fi.IsDir()
}

// CommandName derives a command name from a file path relative to the
// commands root: the suffix is removed and every path component is
// kebab-cased. "Users/AddUserCommand.toml" with suffix "Command.toml"
// becomes "users add-user".
func CommandName(rel, suffix string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), suffix)
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = KebabCase(p)
	}
	return strings.Join(parts, " ")
}

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	separators    = regexp.MustCompile(`[ _]+`)
)

// KebabCase converts camelCase, snake_case and spaced words to
// kebab-case.
func KebabCase(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = separators.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}
