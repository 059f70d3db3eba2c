// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conzole

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is reported (wrapped) by Run when help was requested via --help,
// -h, or by naming a non-leaf node without a further command. Callers
// should treat it as success.
var ErrHelp = errors.New("help requested")

// SchemaError reports a structural inconsistency in an App tree: a flag
// name collision across scope levels, a handler record that does not match
// the visible field set, a malformed alias or default. Schema errors are
// programmer errors; the process must not parse any user input after one.
type SchemaError struct {
	Path   []string // node path from the App root, e.g. ["boxer", "container", "stop"]
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in %q: %s", strings.Join(e.Path, " "), e.Reason)
}

func schemaErrf(path []string, format string, args ...any) *SchemaError {
	return &SchemaError{Path: append([]string(nil), path...), Reason: fmt.Sprintf(format, args...)}
}

// UnknownFlagError is returned when a flag token matches no flag visible at
// the level where it appeared.
type UnknownFlagError struct {
	Flag    string // the token as typed, dashes included
	Command string // resolved command path so far, e.g. "container stop"
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %s", e.Flag)
}

// UnknownCommandError is returned when the first positional token at a
// non-leaf level names no child of that node.
type UnknownCommandError struct {
	Name   string
	Parent string // name of the node whose children were searched
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// MissingValueError is returned when a non-boolean flag is the last token
// and has no attached value.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("flag %s requires a value", e.Flag)
}

// ArgCountError is returned when a command receives the wrong number of
// positional arguments.
type ArgCountError struct {
	Command string
	Want    int
	Got     int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("'%s' requires %d argument(s), got %d", e.Command, e.Want, e.Got)
}

// ArgValueError is returned when a positional token cannot be decoded
// under the argument's declared Kind. Unlike flag values, positional
// values have no default to fall back to, so the failure is fatal.
type ArgValueError struct {
	Arg   string
	Value string
	Kind  Kind
}

func (e *ArgValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q for argument %s", e.Kind, e.Value, e.Arg)
}

// helpRequest carries rendered help text up to Main. It matches ErrHelp
// under errors.Is.
type helpRequest struct {
	text string
}

func (e *helpRequest) Error() string { return ErrHelp.Error() }

func (e *helpRequest) Is(target error) bool { return target == ErrHelp }

// usageError pairs a parse error with the help text of the node where it
// occurred, so Main can print contextual usage after the message.
type usageError struct {
	err  error
	help string
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }
