// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conzole

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Scope labels used in collision diagnostics and help sections.
const (
	scopeGlobal  = "global"
	scopeCommand = "command"
)

func groupScope(name string) string {
	return fmt.Sprintf("group %q", name)
}

// scopedFlag is a Flag annotated with the level it was declared at.
type scopedFlag struct {
	flag  Flag
	scope string
}

func scoped(flags []Flag, scope string) []scopedFlag {
	out := make([]scopedFlag, len(flags))
	for i, f := range flags {
		out[i] = scopedFlag{flag: f, scope: scope}
	}
	return out
}

func (a *App) validate() error {
	if a.Name == "" {
		return &SchemaError{Path: []string{"(app)"}, Reason: "application name is required"}
	}
	path := []string{a.Name}
	if err := validateFlags(path, a.Flags); err != nil {
		return err
	}
	if err := validateChildren(path, a.Children); err != nil {
		return err
	}
	inherited := scoped(a.Flags, scopeGlobal)
	for _, child := range a.Children {
		if err := validateNode(path, child, inherited); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(parent []string, n Node, inherited []scopedFlag) error {
	switch n := n.(type) {
	case *Group:
		path := append(append([]string(nil), parent...), n.Name)
		if err := validateFlags(path, n.Flags); err != nil {
			return err
		}
		if err := validateChildren(path, n.Children); err != nil {
			return err
		}
		visible := append(append([]scopedFlag(nil), inherited...), scoped(n.Flags, groupScope(n.Name))...)
		for _, child := range n.Children {
			if err := validateNode(path, child, visible); err != nil {
				return err
			}
		}
		return nil
	case *Command:
		path := append(append([]string(nil), parent...), n.Name)
		if err := validateFlags(path, n.Flags); err != nil {
			return err
		}
		if err := validateArgs(path, n.Args); err != nil {
			return err
		}
		if n.Run == nil {
			return schemaErrf(path, "command has no handler")
		}
		visible := append(append([]scopedFlag(nil), inherited...), scoped(n.Flags, scopeCommand)...)
		if err := checkCollisions(path, visible); err != nil {
			return err
		}
		return checkRecord(path, n, visible)
	default:
		return schemaErrf(parent, "unsupported node type %T", n)
	}
}

// validateChildren checks that child names are present and unique within
// one node. Duplicate names would make dispatch ambiguous.
func validateChildren(path []string, children []Node) error {
	seen := make(map[string]bool, len(children))
	for _, child := range children {
		name := child.nodeName()
		if name == "" {
			return schemaErrf(path, "child with empty name")
		}
		if seen[name] {
			return schemaErrf(path, "duplicate child name %q", name)
		}
		seen[name] = true
	}
	return nil
}

// validateFlags checks the local shape of one level's flag list: names
// present and unique at that level, aliases exactly one character, Kinds
// in range, textual defaults decodable.
func validateFlags(path []string, flags []Flag) error {
	names := make(map[string]bool, len(flags))
	shorts := make(map[string]bool, len(flags))
	for _, f := range flags {
		if f.Name == "" {
			return schemaErrf(path, "flag with empty name")
		}
		if f.Name[0] == '-' {
			return schemaErrf(path, "flag name %q must not start with a dash", f.Name)
		}
		if names[f.Name] {
			return schemaErrf(path, "duplicate flag name %q", f.Name)
		}
		names[f.Name] = true
		if f.Short != "" {
			if utf8.RuneCountInString(f.Short) != 1 {
				return schemaErrf(path, "flag %q: alias %q must be exactly one character", f.Name, f.Short)
			}
			if shorts[f.Short] {
				return schemaErrf(path, "duplicate flag alias %q", f.Short)
			}
			shorts[f.Short] = true
		}
		if f.Kind.goType() == nil {
			return schemaErrf(path, "flag %q has unknown kind %v", f.Name, f.Kind)
		}
		if f.Default != "" {
			if _, err := decode(f.Default, f.Kind); err != nil {
				return schemaErrf(path, "flag %q: default %q is not a valid %s", f.Name, f.Default, f.Kind)
			}
		}
	}
	return nil
}

func validateArgs(path []string, args []Arg) error {
	seen := make(map[string]bool, len(args))
	for _, a := range args {
		if a.Name == "" {
			return schemaErrf(path, "argument with empty name")
		}
		if seen[a.Name] {
			return schemaErrf(path, "duplicate argument name %q", a.Name)
		}
		seen[a.Name] = true
		if a.Kind.goType() == nil {
			return schemaErrf(path, "argument %q has unknown kind %v", a.Name, a.Kind)
		}
	}
	return nil
}

// checkCollisions verifies pairwise disjointness of flag names, and of
// flag aliases, across every scope level visible to one command. The
// diagnostic names the flag and both levels.
func checkCollisions(path []string, visible []scopedFlag) error {
	byName := make(map[string]string, len(visible))
	byShort := make(map[string]string)
	for _, sf := range visible {
		if prev, ok := byName[sf.flag.Name]; ok {
			return schemaErrf(path, "flag name %q collides across %s and %s", sf.flag.Name, prev, sf.scope)
		}
		byName[sf.flag.Name] = sf.scope
		if sf.flag.Short == "" {
			continue
		}
		if prev, ok := byShort[sf.flag.Short]; ok {
			return schemaErrf(path, "flag alias %q collides across %s and %s", sf.flag.Short, prev, sf.scope)
		}
		byShort[sf.flag.Short] = sf.scope
	}
	return nil
}

// checkRecord verifies that the handler's record struct is exactly the
// union of the command's arguments and its visible flags: one `flag` or
// `arg` tagged field per schema entry with the matching Go type, and no
// fields beyond those.
func checkRecord(path []string, c *Command, visible []scopedFlag) error {
	t := c.Run.record()
	if t == nil || t.Kind() != reflect.Struct {
		return schemaErrf(path, "handler record type must be a struct, got %v", t)
	}

	flagFields := make(map[string]reflect.StructField)
	argFields := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		flagTag := field.Tag.Get("flag")
		argTag := field.Tag.Get("arg")
		if flagTag == "" && argTag == "" {
			if field.IsExported() {
				return schemaErrf(path, "record field %s has neither a flag nor an arg tag", field.Name)
			}
			continue
		}
		if !field.IsExported() {
			return schemaErrf(path, "record field %s is tagged but unexported", field.Name)
		}
		if flagTag != "" && argTag != "" {
			return schemaErrf(path, "record field %s has both flag and arg tags", field.Name)
		}
		if flagTag != "" {
			if _, dup := flagFields[flagTag]; dup {
				return schemaErrf(path, "record has two fields for flag %q", flagTag)
			}
			flagFields[flagTag] = field
		} else {
			if _, dup := argFields[argTag]; dup {
				return schemaErrf(path, "record has two fields for argument %q", argTag)
			}
			argFields[argTag] = field
		}
	}

	seenFlags := make(map[string]bool, len(visible))
	for _, sf := range visible {
		field, ok := flagFields[sf.flag.Name]
		if !ok {
			return schemaErrf(path, "record has no field for %s flag %q", sf.scope, sf.flag.Name)
		}
		if field.Type != sf.flag.Kind.goType() {
			return schemaErrf(path, "record field %s has type %s, but flag %q is %s",
				field.Name, field.Type, sf.flag.Name, sf.flag.Kind)
		}
		seenFlags[sf.flag.Name] = true
	}
	for name := range flagFields {
		if !seenFlags[name] {
			return schemaErrf(path, "record field for flag %q matches no flag visible to the command", name)
		}
	}

	seenArgs := make(map[string]bool, len(c.Args))
	for _, arg := range c.Args {
		field, ok := argFields[arg.Name]
		if !ok {
			return schemaErrf(path, "record has no field for argument %q", arg.Name)
		}
		if field.Type != arg.Kind.goType() {
			return schemaErrf(path, "record field %s has type %s, but argument %q is %s",
				field.Name, field.Type, arg.Name, arg.Kind)
		}
		seenArgs[arg.Name] = true
	}
	for name := range argFields {
		if !seenArgs[name] {
			return schemaErrf(path, "record field for argument %q matches no declared argument", name)
		}
	}
	return nil
}
