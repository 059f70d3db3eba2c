// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"strings"
	"testing"
)

func TestPrefsCascade(t *testing.T) {
	usePrefsDir(t)

	// No file, no env: built-in defaults.
	p := loadPrefs()
	if p.Compose != defaultCompose || p.Color != defaultColor {
		t.Errorf("defaults = %+v, want compose %q color %q", p, defaultCompose, defaultColor)
	}

	// Saved file wins over defaults.
	p.Compose = "/srv/stack/compose.yml"
	p.Color = "never"
	if err := p.save(); err != nil {
		t.Fatalf("save() error = %v", err)
	}
	p = loadPrefs()
	if p.Compose != "/srv/stack/compose.yml" || p.Color != "never" {
		t.Errorf("loaded = %+v, want saved values", p)
	}

	// Env override wins over the file.
	t.Setenv("BOXER_COMPOSE", "/tmp/other.yml")
	p = loadPrefs()
	if p.Compose != "/tmp/other.yml" {
		t.Errorf("Compose = %q, want env override", p.Compose)
	}
	if p.Color != "never" {
		t.Errorf("Color = %q, want file value to survive env override", p.Color)
	}
}

func TestPrefsSetCommand(t *testing.T) {
	usePrefsDir(t)
	buf := captureOutput(t)

	args := []string{"prefs", "set", "--compose", "/srv/compose.yml", "--color", "always"}
	if err := newApp().Run(context.Background(), args); err != nil {
		t.Fatalf("Run(%v) error = %v", args, err)
	}
	if !strings.Contains(buf.String(), "Prefs saved") {
		t.Errorf("output = %q, want save confirmation", buf.String())
	}

	p := loadPrefs()
	if p.Compose != "/srv/compose.yml" || p.Color != "always" {
		t.Errorf("prefs = %+v, want set values", p)
	}

	// Setting the same values again is a no-op.
	buf.Reset()
	if err := newApp().Run(context.Background(), args); err != nil {
		t.Fatalf("Run(%v) error = %v", args, err)
	}
	if !strings.Contains(buf.String(), "No changes to save") {
		t.Errorf("output = %q, want no-op message", buf.String())
	}
}

func TestPrefsSetRejectsBadColorMode(t *testing.T) {
	usePrefsDir(t)
	captureOutput(t)
	err := newApp().Run(context.Background(), []string{"prefs", "set", "--color", "sometimes"})
	if err == nil || !strings.Contains(err.Error(), "invalid color mode") {
		t.Fatalf("Run() error = %v, want invalid color mode", err)
	}
}

func TestPrefsShowCommand(t *testing.T) {
	usePrefsDir(t)
	buf := captureOutput(t)
	if err := newApp().Run(context.Background(), []string{"prefs", "show"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := buf.String()
	for _, want := range []string{`compose = "docker-compose.yml"`, `color = "auto"`} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, missing %q", got, want)
		}
	}
}
