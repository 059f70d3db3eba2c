// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// prefsFile is a variable so tests can point it at a temp dir.
var prefsFile = filepath.Join(os.Getenv("HOME"), ".boxer", "prefs.toml")

const (
	defaultCompose = "docker-compose.yml"
	defaultColor   = "auto"
)

type prefs struct {
	Compose string `toml:"compose"`
	Color   string `toml:"color"`
}

// loadPrefs reads the prefs file and applies the environment and default
// cascade: file values first, then BOXER_COMPOSE, then built-in defaults.
// A missing or malformed file is not fatal; a malformed one is logged and
// the cascade continues from defaults.
func loadPrefs() prefs {
	var p prefs
	if _, err := toml.DecodeFile(prefsFile, &p); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load preferences: %v", err)
		p = prefs{}
	}
	if compose := os.Getenv("BOXER_COMPOSE"); compose != "" {
		p.Compose = compose
	}
	if p.Compose == "" {
		p.Compose = defaultCompose
	}
	if p.Color == "" {
		p.Color = defaultColor
	}
	return p
}

func (p prefs) save() error {
	if err := os.MkdirAll(filepath.Dir(prefsFile), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(prefsFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}

type prefsShowArgs struct {
	Verbose bool `flag:"verbose"`
}

func runPrefsShow(ctx context.Context, a prefsShowArgs) error {
	p := loadPrefs()
	if a.Verbose {
		fmt.Fprintf(out, "prefs file: %s\n", prefsFile)
	}
	fmt.Fprintf(out, "compose = %q\n", p.Compose)
	fmt.Fprintf(out, "color = %q\n", p.Color)
	return nil
}

type prefsSetArgs struct {
	Verbose bool   `flag:"verbose"`
	Compose string `flag:"compose"`
	Color   string `flag:"color"`
}

func runPrefsSet(ctx context.Context, a prefsSetArgs) error {
	p := loadPrefs()
	changed := false
	if a.Compose != "" && a.Compose != p.Compose {
		p.Compose = a.Compose
		changed = true
	}
	if a.Color != "" {
		switch a.Color {
		case "auto", "always", "never":
		default:
			return fmt.Errorf("invalid color mode %q (want auto, always, or never)", a.Color)
		}
		if a.Color != p.Color {
			p.Color = a.Color
			changed = true
		}
	}
	if !changed {
		fmt.Fprintln(out, "No changes to save")
		return nil
	}
	if err := p.save(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	fmt.Fprintln(out, "Prefs saved")
	return nil
}
