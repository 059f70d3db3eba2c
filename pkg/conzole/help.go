// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conzole

import (
	"fmt"
	"strings"
)

// Help rendering is pure presentation: every function here is a
// deterministic function of the schema tree, independent of parse state.
// The parser calls these only on error paths and explicit help requests.

// renderAppHelp renders the root help: usage, child listing, global
// options, examples, and the custom body.
func renderAppHelp(a *App) string {
	var b strings.Builder

	b.WriteString(a.Name)
	if a.Help != "" {
		b.WriteString(" - ")
		b.WriteString(a.Help)
	}
	b.WriteString("\n\n")

	b.WriteString("USAGE:\n")
	fmt.Fprintf(&b, "    %s [OPTIONS] COMMAND [ARGS...]\n\n", a.Name)

	writeChildSections(&b, a.Children)
	writeFlagSection(&b, "GLOBAL OPTIONS", a.Flags, true)
	writeExamples(&b, a.Examples)
	writeExtra(&b, a.Extra)

	if hasGroup(a.Children) {
		fmt.Fprintf(&b, "Run '%s <group>' to see commands in a group.\n", a.Name)
	}
	fmt.Fprintf(&b, "Run '%s COMMAND --help' for more information on a specific command.\n", a.Name)
	return b.String()
}

// renderGroupHelp renders help for the last group of a descent chain,
// with shared options of every level on the path grouped by scope.
func renderGroupHelp(a *App, groups []*Group) string {
	g := groups[len(groups)-1]
	var b strings.Builder

	if g.Help != "" {
		b.WriteString(g.Help)
		b.WriteString("\n\n")
	}

	b.WriteString("USAGE:\n")
	fmt.Fprintf(&b, "    %s [GLOBAL OPTIONS] %s COMMAND [ARGS...]\n\n", a.Name, groupPath(groups))

	writeChildSections(&b, g.Children)
	writeFlagSection(&b, "OPTIONS", g.Flags, false)
	for i := len(groups) - 2; i >= 0; i-- {
		writeFlagSection(&b, scopeTitle(groups[i].Name), groups[i].Flags, false)
	}
	writeFlagSection(&b, "GLOBAL OPTIONS", a.Flags, false)
	writeExtra(&b, g.Extra)

	fmt.Fprintf(&b, "Run '%s %s COMMAND --help' for more information on a command.\n", a.Name, groupPath(groups))
	return b.String()
}

// renderCommandHelp renders help for a leaf command: usage with argument
// placeholders, arguments, then options grouped by scope level from the
// command outward to the global flags.
func renderCommandHelp(a *App, groups []*Group, c *Command) string {
	var b strings.Builder

	if c.Help != "" {
		b.WriteString(c.Help)
		b.WriteString("\n\n")
	}

	b.WriteString("USAGE:\n")
	usage := "    " + a.Name
	if len(groups) > 0 {
		usage += " " + groupPath(groups)
	}
	usage += " " + c.Name + " [OPTIONS]"
	for _, arg := range c.Args {
		usage += fmt.Sprintf(" <%s>", strings.ToUpper(arg.Name))
	}
	b.WriteString(usage)
	b.WriteString("\n\n")

	if len(c.Args) > 0 {
		b.WriteString("ARGUMENTS:\n")
		for _, arg := range c.Args {
			if arg.Help != "" {
				fmt.Fprintf(&b, "    %-20s %s\n", strings.ToUpper(arg.Name), arg.Help)
			} else {
				fmt.Fprintf(&b, "    %s\n", strings.ToUpper(arg.Name))
			}
		}
		b.WriteString("\n")
	}

	writeFlagSection(&b, "OPTIONS", c.Flags, true)
	for i := len(groups) - 1; i >= 0; i-- {
		writeFlagSection(&b, scopeTitle(groups[i].Name), groups[i].Flags, false)
	}
	writeFlagSection(&b, "GLOBAL OPTIONS", a.Flags, false)
	writeExamples(&b, c.Examples)
	writeExtra(&b, c.Extra)

	return b.String()
}

// writeChildSections lists commands and groups in declaration order.
func writeChildSections(b *strings.Builder, children []Node) {
	var wroteCommands bool
	for _, child := range children {
		if _, ok := child.(*Command); !ok {
			continue
		}
		if !wroteCommands {
			b.WriteString("COMMANDS:\n")
			wroteCommands = true
		}
		fmt.Fprintf(b, "    %-12s %s\n", child.nodeName(), child.nodeHelp())
	}
	if wroteCommands {
		b.WriteString("\n")
	}

	var wroteGroups bool
	for _, child := range children {
		if _, ok := child.(*Group); !ok {
			continue
		}
		if !wroteGroups {
			b.WriteString("GROUPS:\n")
			wroteGroups = true
		}
		fmt.Fprintf(b, "    %-12s %s\n", child.nodeName(), child.nodeHelp())
	}
	if wroteGroups {
		b.WriteString("\n")
	}
}

// writeFlagSection renders one scope level's flags under a title. When
// withHelp is set the built-in help flags are appended.
func writeFlagSection(b *strings.Builder, title string, flags []Flag, withHelp bool) {
	if len(flags) == 0 && !withHelp {
		return
	}
	b.WriteString(title + ":\n")
	for _, f := range flags {
		var flagStr string
		if f.Short != "" {
			flagStr = fmt.Sprintf("    -%s, --%s", f.Short, f.Name)
		} else {
			flagStr = fmt.Sprintf("    --%s", f.Name)
		}
		if f.Kind != Bool {
			flagStr += " " + strings.ToUpper(f.Kind.String())
		}
		if f.Help != "" {
			fmt.Fprintf(b, "%-32s %s", flagStr, f.Help)
		} else {
			b.WriteString(flagStr)
		}
		if f.Default != "" {
			fmt.Fprintf(b, " (default: %s)", f.Default)
		}
		b.WriteString("\n")
	}
	if withHelp {
		fmt.Fprintf(b, "%-32s %s\n", fmt.Sprintf("    %s, %s", helpFlagShort, helpFlagLong), "Show help")
	}
	b.WriteString("\n")
}

func writeExamples(b *strings.Builder, examples []string) {
	if len(examples) == 0 {
		return
	}
	b.WriteString("EXAMPLES:\n")
	for _, example := range examples {
		fmt.Fprintf(b, "    %s\n", example)
	}
	b.WriteString("\n")
}

func writeExtra(b *strings.Builder, extra string) {
	if extra == "" {
		return
	}
	b.WriteString(strings.TrimRight(extra, "\n"))
	b.WriteString("\n\n")
}

func scopeTitle(group string) string {
	return strings.ToUpper(group) + " OPTIONS"
}

func groupPath(groups []*Group) string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return strings.Join(names, " ")
}

func hasGroup(children []Node) bool {
	for _, child := range children {
		if _, ok := child.(*Group); ok {
			return true
		}
	}
	return false
}
