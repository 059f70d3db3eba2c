// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command boxer is a small container-management CLI built on the conzole
// schema engine. Container operations are simulated; the command exists to
// exercise the full schema surface: global, group-shared, and command-local
// flags, typed positionals, and prefs-backed configuration.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/castor-labs/conzole/pkg/conzole"
	"github.com/castor-labs/conzole/pkg/tui"
)

var version = "dev"

// out is swapped for a buffer in tests.
var out io.Writer = os.Stdout

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	os.Exit(newApp().Main(ctx))
}

func newApp() *conzole.App {
	return &conzole.App{
		Name: "boxer",
		Help: "Manage a small fleet of local containers",
		Flags: []conzole.Flag{
			{Name: "verbose", Short: "v", Kind: conzole.Bool, Default: "false", Help: "Enable verbose output"},
		},
		Examples: []string{
			"boxer ps",
			"boxer container stop --force web",
			"boxer prefs set --compose ./docker-compose.yml",
		},
		Children: []conzole.Node{
			&conzole.Command{
				Name:  "ps",
				Help:  "List services from the compose file",
				Flags: []conzole.Flag{{Name: "format", Kind: conzole.String, Default: "table", Help: "Output format: table, names, or yaml"}},
				Run:   conzole.HandlerFor(runPS),
			},
			&conzole.Command{
				Name: "version",
				Help: "Print the boxer version",
				Run:  conzole.HandlerFor(runVersion),
			},
			&conzole.Group{
				Name: "container",
				Help: "Container lifecycle management",
				Flags: []conzole.Flag{
					{Name: "dry-run", Kind: conzole.Bool, Default: "false", Help: "Print actions without applying them"},
				},
				Children: []conzole.Node{
					&conzole.Command{
						Name: "stop",
						Help: "Stop a running container",
						Args: []conzole.Arg{{Name: "container", Kind: conzole.String, Help: "Container name"}},
						Flags: []conzole.Flag{
							{Name: "force", Short: "f", Kind: conzole.Bool, Default: "false", Help: "Kill without waiting for the grace period"},
							{Name: "timeout", Short: "t", Kind: conzole.Duration, Default: "10s", Help: "Grace period before killing"},
						},
						Run: conzole.HandlerFor(runStop),
					},
					&conzole.Command{
						Name: "start",
						Help: "Start a stopped container",
						Args: []conzole.Arg{{Name: "container", Kind: conzole.String, Help: "Container name"}},
						Run:  conzole.HandlerFor(runStart),
					},
					&conzole.Command{
						Name: "restart",
						Help: "Restart a container",
						Args: []conzole.Arg{{Name: "container", Kind: conzole.String, Help: "Container name"}},
						Flags: []conzole.Flag{
							{Name: "timeout", Short: "t", Kind: conzole.Duration, Default: "10s", Help: "Grace period before killing"},
						},
						Run: conzole.HandlerFor(runRestart),
					},
				},
			},
			&conzole.Group{
				Name: "prefs",
				Help: "Manage boxer preferences",
				Children: []conzole.Node{
					&conzole.Command{
						Name: "show",
						Help: "Print the current preferences",
						Run:  conzole.HandlerFor(runPrefsShow),
					},
					&conzole.Command{
						Name: "set",
						Help: "Update preferences and save them",
						Flags: []conzole.Flag{
							{Name: "compose", Kind: conzole.String, Help: "Path to the compose file"},
							{Name: "color", Kind: conzole.String, Help: "Color mode: auto, always, or never"},
						},
						Run: conzole.HandlerFor(runPrefsSet),
					},
				},
			},
		},
	}
}

// newSpinner returns a progress spinner when output goes to an interactive
// terminal, nil otherwise.
func newSpinner() *tui.Spinner {
	c := tui.NewColorizer(out)
	if !c.Enabled {
		return nil
	}
	return tui.NewSpinner(out, tui.WithColorize(c.Green))
}

type stopArgs struct {
	Verbose   bool          `flag:"verbose"`
	DryRun    bool          `flag:"dry-run"`
	Force     bool          `flag:"force"`
	Timeout   time.Duration `flag:"timeout"`
	Container string        `arg:"container"`
}

func runStop(ctx context.Context, a stopArgs) error {
	if a.Verbose {
		fmt.Fprintf(out, "resolving container %q\n", a.Container)
	}
	action := fmt.Sprintf("stop %s (grace period %s)", a.Container, a.Timeout)
	if a.Force {
		action = fmt.Sprintf("kill %s", a.Container)
	}
	if a.DryRun {
		fmt.Fprintf(out, "would %s\n", action)
		return nil
	}
	if sp := newSpinner(); sp != nil && !a.Force {
		sp.Start(fmt.Sprintf("stopping %s", a.Container))
		time.Sleep(300 * time.Millisecond) // simulated grace period
		sp.Stop(true)
	}
	fmt.Fprintf(out, "%s\n", action)
	return nil
}

type startArgs struct {
	Verbose   bool   `flag:"verbose"`
	DryRun    bool   `flag:"dry-run"`
	Container string `arg:"container"`
}

func runStart(ctx context.Context, a startArgs) error {
	if a.DryRun {
		fmt.Fprintf(out, "would start %s\n", a.Container)
		return nil
	}
	fmt.Fprintf(out, "start %s\n", a.Container)
	return nil
}

type restartArgs struct {
	Verbose   bool          `flag:"verbose"`
	DryRun    bool          `flag:"dry-run"`
	Timeout   time.Duration `flag:"timeout"`
	Container string        `arg:"container"`
}

func runRestart(ctx context.Context, a restartArgs) error {
	if a.DryRun {
		fmt.Fprintf(out, "would restart %s (grace period %s)\n", a.Container, a.Timeout)
		return nil
	}
	fmt.Fprintf(out, "restart %s (grace period %s)\n", a.Container, a.Timeout)
	return nil
}

type versionArgs struct {
	Verbose bool `flag:"verbose"`
}

func runVersion(ctx context.Context, a versionArgs) error {
	fmt.Fprintf(out, "boxer %s\n", version)
	return nil
}
