// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestColorizerDisabledPassthrough(t *testing.T) {
	var c Colorizer
	for _, fn := range []func(string) string{c.Red, c.Yellow, c.Green, c.Dim} {
		if got := fn("plain"); got != "plain" {
			t.Errorf("disabled colorizer returned %q, want passthrough", got)
		}
	}
}

func TestNewColorizerNonTerminal(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	if c := NewColorizer(&bytes.Buffer{}); c.Enabled {
		t.Error("colorizer enabled for a non-terminal writer")
	}
}

func TestNewColorizerHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if c := NewColorizer(&bytes.Buffer{}); c.Enabled {
		t.Error("colorizer enabled despite NO_COLOR")
	}
}

func TestSpinnerRendersAndStops(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf,
		WithFrames([]string{"-", "\\", "|", "/"}),
		WithInterval(time.Hour)) // animate only via explicit calls

	s.Start("stopping web")
	if got := buf.String(); !strings.Contains(got, "- stopping web") {
		t.Errorf("start rendered %q, want first frame with message", got)
	}

	s.Update("almost done")
	if got := buf.String(); !strings.Contains(got, "almost done") {
		t.Errorf("update rendered %q, want new message", got)
	}

	s.Stop(true)
	if got := buf.String(); !strings.HasSuffix(got, "\r\033[K") {
		t.Errorf("stop did not clear the line: %q", got)
	}

	// Stop is idempotent.
	s.Stop(true)
}

func TestSpinnerColorize(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf,
		WithFrames([]string{"*"}),
		WithInterval(time.Hour),
		WithColorize(func(text string) string { return "<" + text + ">" }))
	s.Start("")
	s.Stop(false)
	if got := buf.String(); !strings.Contains(got, "<*>") {
		t.Errorf("frame not colorized: %q", got)
	}
}
