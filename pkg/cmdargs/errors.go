// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import (
	"errors"
	"fmt"
)

// ErrNoCommand is returned by Resolve when no token names a command.
var ErrNoCommand = errors.New("no command specified")

// PromptError is returned when the user's input does not satisfy the
// command's parameters. The runner shows it together with the command's
// usage.
type PromptError struct {
	Msg   string
	Param string // The parameter that failed (if any)
}

func (e *PromptError) Error() string {
	return e.Msg
}

// DefinitionError is returned when a command's own parameter declarations
// are malformed.
type DefinitionError struct {
	Msg   string
	Param string // The parameter that failed (if any)
}

func (e *DefinitionError) Error() string {
	return e.Msg
}

// NotFoundError is returned by Resolve when no command matches the input.
type NotFoundError struct {
	Command string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Command %s not found!", e.Command)
}

func promptf(param, format string, args ...any) *PromptError {
	return &PromptError{Msg: fmt.Sprintf(format, args...), Param: param}
}

func definitionf(param, format string, args ...any) *DefinitionError {
	return &DefinitionError{Msg: fmt.Sprintf(format, args...), Param: param}
}

// ExitError is returned by a Handler to end the process with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
