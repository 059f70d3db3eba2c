// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conzole declares and dispatches hierarchical command-line
// interfaces: an App holds global flags and a tree of Commands and Groups,
// each Command holds typed positional arguments and flags, and a handler
// receives one strongly-typed record per invocation.
//
// The package is designed around two guarantees:
//   - The whole schema tree is validated before any argument is parsed. A
//     handler's record struct must match exactly the union of the command's
//     arguments and every flag visible to it (global, group-shared, and
//     command-local), with no flag name shared between scope levels.
//   - Parsing is deterministic: flags may appear anywhere at their level,
//     the first positional token at a non-leaf level names the child to
//     descend into, and the remaining tokens pass down unconsumed.
//
// # Declaring an App
//
//	type stopRecord struct {
//	    Verbose   bool   `flag:"verbose"`
//	    DryRun    bool   `flag:"dry-run"`
//	    Force     bool   `flag:"force"`
//	    Container string `arg:"container"`
//	}
//
//	app := &conzole.App{
//	    Name: "boxer",
//	    Flags: []conzole.Flag{
//	        {Name: "verbose", Short: "v", Kind: conzole.Bool, Help: "Enable verbose output"},
//	    },
//	    Children: []conzole.Node{
//	        &conzole.Group{
//	            Name:  "container",
//	            Flags: []conzole.Flag{{Name: "dry-run", Kind: conzole.Bool}},
//	            Children: []conzole.Node{
//	                &conzole.Command{
//	                    Name: "stop",
//	                    Args: []conzole.Arg{{Name: "container", Kind: conzole.String}},
//	                    Flags: []conzole.Flag{{Name: "force", Short: "f", Kind: conzole.Bool}},
//	                    Run: conzole.HandlerFor(func(ctx context.Context, rec stopRecord) error {
//	                        // rec.Verbose, rec.DryRun, rec.Force, rec.Container
//	                        return nil
//	                    }),
//	                },
//	            },
//	        },
//	    },
//	}
//	os.Exit(app.Main(context.Background()))
//
// # Record structs
//
// Record fields carry a `flag:"name"` or `arg:"name"` tag. The Go type of
// each field must match the declared Kind: string, bool, int, float64, or
// time.Duration. Validate rejects a record with a missing, extra, or
// mistyped field before any input is parsed.
//
// # Flag syntax
//
// Flags support long and short forms:
//   - Boolean flags: -f, --force (presence means true)
//   - Attached values: -t=30s, --timeout=30s, --verbose=false
//   - Spaced values: -t 30s, --timeout 30s (non-boolean flags only)
//
// Short flags do not bundle (-abc is not -a -b -c) and there is no "--"
// end-of-options marker.
//
// A malformed value for a flag falls back to the flag's declared default
// and parsing continues; a malformed value for a positional argument is a
// fatal parse error.
package conzole
