// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colorizer wraps text in ANSI colors when the destination supports them.
// Color is disabled for non-terminal writers, NO_COLOR environments, and
// dumb terminals.
type Colorizer struct {
	Enabled bool
}

func NewColorizer(w io.Writer) Colorizer {
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Red(text string) string {
	if !c.Enabled {
		return text
	}
	return color.RedString("%s", text)
}

func (c Colorizer) Yellow(text string) string {
	if !c.Enabled {
		return text
	}
	return color.YellowString("%s", text)
}

func (c Colorizer) Green(text string) string {
	if !c.Enabled {
		return text
	}
	return color.GreenString("%s", text)
}

func (c Colorizer) Dim(text string) string {
	if !c.Enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}
