// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conzole

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"

	"github.com/castor-labs/conzole/pkg/tui"
)

// Flag is a named, optionally-aliased, typed, defaulted option. A Flag is
// owned by exactly one App, Group, or Command and is immutable once the
// tree has been validated.
type Flag struct {
	Name    string // long name, matched by --name
	Short   string // optional single-character alias, matched by -x
	Kind    Kind
	Default string // textual default, decoded by Kind; empty means the zero value
	Help    string
}

// Arg is a required positional argument. Its position is its index in the
// owning Command's Args slice.
type Arg struct {
	Name string
	Kind Kind
	Help string
}

// Node is a child of an App or Group: either a *Command or a *Group.
type Node interface {
	nodeName() string
	nodeHelp() string
}

// Command is a leaf schema node. Run receives one record per invocation;
// the record struct must carry one `arg:"name"` field per Arg and one
// `flag:"name"` field per flag visible to the command.
type Command struct {
	Name     string
	Help     string
	Extra    string // free-form help body, rendered after the generated sections
	Examples []string
	Args     []Arg
	Flags    []Flag
	Run      Handler
}

func (c *Command) nodeName() string { return c.Name }
func (c *Command) nodeHelp() string { return c.Help }

// Group organizes commands under a common prefix and contributes shared
// flags visible to every descendant command. Groups nest to arbitrary
// depth and have no handler of their own.
type Group struct {
	Name     string
	Help     string
	Extra    string
	Flags    []Flag // shared flags, visible to all descendants
	Children []Node
}

func (g *Group) nodeName() string { return g.Name }
func (g *Group) nodeHelp() string { return g.Help }

// App is the root of a command tree. Its Flags are global: visible to
// every command in the tree.
type App struct {
	Name     string
	Help     string
	Extra    string
	Examples []string
	Flags    []Flag // global flags
	Children []Node

	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	validateOnce sync.Once
	validateErr  error
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

// Handler runs a leaf command with its resolved record.
type Handler interface {
	record() reflect.Type
	invoke(ctx context.Context, rec reflect.Value) error
}

type handlerFunc[T any] struct {
	fn func(context.Context, T) error
}

func (h handlerFunc[T]) record() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

func (h handlerFunc[T]) invoke(ctx context.Context, rec reflect.Value) error {
	return h.fn(ctx, rec.Interface().(T))
}

// HandlerFor adapts a typed function into a Handler. T is the command's
// record struct; Validate checks its shape against the schema tree before
// any invocation.
func HandlerFor[T any](fn func(context.Context, T) error) Handler {
	return handlerFunc[T]{fn: fn}
}

// Validate checks the whole schema tree: local shape of every spec,
// cross-level flag name disjointness, and the record struct of every
// handler. It runs at most once per App; later calls return the same
// result. Any error is a *SchemaError and means the program must not
// proceed to parse user input.
func (a *App) Validate() error {
	a.validateOnce.Do(func() {
		a.validateErr = a.validate()
	})
	return a.validateErr
}

// Run parses argv (the process arguments without the program name) and
// invokes the matched command's handler exactly once. It returns ErrHelp
// (wrapped) when help was requested, a *SchemaError when the tree is
// invalid, or a parse error for bad user input.
func (a *App) Run(ctx context.Context, argv []string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return a.dispatch(ctx, argv)
}

// Main runs the App against os.Args[1:], prints diagnostics and help to
// the App's writers, and returns the process exit status: 0 on success or
// help, 1 on a parse or handler error, 2 on a schema error.
func (a *App) Main(ctx context.Context) int {
	col := tui.NewColorizer(a.stderr())
	if err := a.Validate(); err != nil {
		fmt.Fprintln(a.stderr(), col.Red(fmt.Sprintf("%s: %v", a.Name, err)))
		return 2
	}
	err := a.dispatch(ctx, os.Args[1:])
	if err == nil {
		return 0
	}
	var hr *helpRequest
	if errors.As(err, &hr) {
		fmt.Fprint(a.stdout(), hr.text)
		return 0
	}
	fmt.Fprintln(a.stderr(), col.Red("Error: "+err.Error()))
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprint(a.stderr(), "\n"+ue.help)
	}
	return 1
}
