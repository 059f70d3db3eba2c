// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conzole

import (
	"context"
	"reflect"
	"strings"
)

const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
)

func isHelpToken(tok string) bool {
	return tok == helpFlagLong || tok == helpFlagShort
}

// splitFlagToken classifies one token. A token starting with two dashes is
// a long flag, one dash with length > 1 is a short flag, anything else is
// positional (ok=false). An optional "=value" suffix is split off both
// forms. Short flags do not bundle.
func splitFlagToken(tok string) (name, value string, hasValue, short, ok bool) {
	var body string
	switch {
	case strings.HasPrefix(tok, "--"):
		body = tok[2:]
	case strings.HasPrefix(tok, "-") && len(tok) > 1:
		body = tok[1:]
		short = true
	default:
		return "", "", false, false, false
	}
	if idx := strings.Index(body, "="); idx != -1 {
		return body[:idx], body[idx+1:], true, short, true
	}
	return body, "", false, short, true
}

// findFlag resolves a flag token against a set of scoped flags: long
// tokens match Name, short tokens match Short. First match wins.
func findFlag(name string, short bool, set []scopedFlag) (Flag, bool) {
	for _, sf := range set {
		if short {
			if sf.flag.Short == name {
				return sf.flag, true
			}
		} else if sf.flag.Name == name {
			return sf.flag, true
		}
	}
	return Flag{}, false
}

func findChild(children []Node, name string) Node {
	for _, c := range children {
		if c.nodeName() == name {
			return c
		}
	}
	return nil
}

// walker threads one invocation's tokens down the schema tree, one level
// at a time.
type walker struct {
	app    *App
	groups []*Group // descent chain, outermost first
	path   []string // command path for diagnostics, excludes the app name
}

func (a *App) dispatch(ctx context.Context, argv []string) error {
	w := &walker{app: a}
	return w.descend(ctx, a.Children, scoped(a.Flags, scopeGlobal), nil, argv, make(map[string]string))
}

// descend processes one non-leaf level. Only flags declared at this level
// are matched here; their raw values go into raw keyed by long name, where
// the leaf picks them up (the validator guarantees the leaf sees them).
// The first positional token names the child to descend into, and every
// later token passes down unconsumed.
func (w *walker) descend(ctx context.Context, children []Node, level, inherited []scopedFlag, tokens []string, raw map[string]string) error {
	help := func() string { return w.nodeHelp() }
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if isHelpToken(tok) {
			return &helpRequest{text: help()}
		}
		name, val, hasVal, short, isFlag := splitFlagToken(tok)
		if !isFlag {
			child := findChild(children, tok)
			if child == nil {
				return w.fail(&UnknownCommandError{Name: tok, Parent: w.currentName()}, help)
			}
			rest := tokens[i+1:]
			next := append(append([]scopedFlag(nil), inherited...), level...)
			switch c := child.(type) {
			case *Group:
				w.groups = append(w.groups, c)
				w.path = append(w.path, c.Name)
				return w.descend(ctx, c.Children, scoped(c.Flags, groupScope(c.Name)), next, rest, raw)
			case *Command:
				w.path = append(w.path, c.Name)
				return w.leaf(ctx, c, next, rest, raw)
			default:
				return schemaErrf(append([]string{w.app.Name}, w.path...), "unsupported node type %T", child)
			}
		}
		f, ok := findFlag(name, short, level)
		if !ok {
			return w.fail(&UnknownFlagError{Flag: tok, Command: w.commandPath()}, help)
		}
		switch {
		case hasVal:
			raw[f.Name] = val
		case f.Kind == Bool:
			// Presence implies assertion.
			raw[f.Name] = "true"
		case i+1 >= len(tokens):
			return w.fail(&MissingValueError{Flag: tok}, help)
		default:
			i++
			raw[f.Name] = tokens[i]
		}
	}
	// Tokens ran out before a child was named.
	return &helpRequest{text: help()}
}

// leaf processes the terminal command level: resolves flags against the
// full visible set (command first, then shared innermost-out, then
// global), collects positional tokens in declaration order, and invokes
// the handler with the completed record.
func (w *walker) leaf(ctx context.Context, c *Command, inherited []scopedFlag, tokens []string, raw map[string]string) error {
	// Disjointness is already guaranteed, so precedence order affects only
	// lookup cost, never which flag is chosen.
	lookup := append([]scopedFlag(nil), scoped(c.Flags, scopeCommand)...)
	for i := len(inherited) - 1; i >= 0; i-- {
		lookup = append(lookup, inherited[i])
	}
	help := func() string { return renderCommandHelp(w.app, w.groups, c) }

	var pos []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if isHelpToken(tok) {
			return &helpRequest{text: help()}
		}
		name, val, hasVal, short, isFlag := splitFlagToken(tok)
		if !isFlag {
			pos = append(pos, tok)
			continue
		}
		f, ok := findFlag(name, short, lookup)
		if !ok {
			return w.fail(&UnknownFlagError{Flag: tok, Command: w.commandPath()}, help)
		}
		switch {
		case hasVal:
			raw[f.Name] = val
		case f.Kind == Bool:
			raw[f.Name] = "true"
		case i+1 >= len(tokens):
			return w.fail(&MissingValueError{Flag: tok}, help)
		default:
			i++
			raw[f.Name] = tokens[i]
		}
	}
	if len(pos) != len(c.Args) {
		return w.fail(&ArgCountError{Command: w.commandPath(), Want: len(c.Args), Got: len(pos)}, help)
	}

	visible := append(append([]scopedFlag(nil), inherited...), scoped(c.Flags, scopeCommand)...)
	rec, err := buildRecord(c, visible, raw, pos)
	if err != nil {
		return w.fail(err, help)
	}
	return c.Run.invoke(ctx, rec)
}

// buildRecord populates a fresh record: every visible flag starts at its
// decoded default and is overwritten by its parsed value when one decodes
// cleanly, then positional tokens fill argument fields. A malformed flag
// value keeps the default; a malformed positional value is fatal.
func buildRecord(c *Command, visible []scopedFlag, raw map[string]string, pos []string) (reflect.Value, error) {
	t := c.Run.record()
	rec := reflect.New(t).Elem()

	flagIdx := make(map[string]int)
	argIdx := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("flag"); tag != "" {
			flagIdx[tag] = i
		} else if tag := field.Tag.Get("arg"); tag != "" {
			argIdx[tag] = i
		}
	}

	for _, sf := range visible {
		field := rec.Field(flagIdx[sf.flag.Name])
		def, err := defaultValue(sf.flag)
		if err != nil {
			return reflect.Value{}, err
		}
		field.Set(reflect.ValueOf(def))
		text, ok := raw[sf.flag.Name]
		if !ok {
			continue
		}
		v, err := decode(text, sf.flag.Kind)
		if err != nil {
			continue
		}
		field.Set(reflect.ValueOf(v))
	}

	for i, arg := range c.Args {
		v, err := decode(pos[i], arg.Kind)
		if err != nil {
			return reflect.Value{}, &ArgValueError{Arg: arg.Name, Value: pos[i], Kind: arg.Kind}
		}
		rec.Field(argIdx[arg.Name]).Set(reflect.ValueOf(v))
	}
	return rec, nil
}

func (w *walker) fail(err error, help func() string) error {
	return &usageError{err: err, help: help()}
}

func (w *walker) commandPath() string {
	return strings.Join(w.path, " ")
}

func (w *walker) currentName() string {
	if len(w.groups) > 0 {
		return w.groups[len(w.groups)-1].Name
	}
	return w.app.Name
}

func (w *walker) nodeHelp() string {
	if len(w.groups) == 0 {
		return renderAppHelp(w.app)
	}
	return renderGroupHelp(w.app, w.groups)
}
