// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureOutput redirects handler output to a buffer for the duration of
// the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

// usePrefsDir points the prefs file into a temp dir and clears the env
// override so tests see a clean cascade.
func usePrefsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := prefsFile
	prefsFile = filepath.Join(dir, "prefs.toml")
	t.Cleanup(func() { prefsFile = prev })
	t.Setenv("BOXER_COMPOSE", "")
	return dir
}

func TestAppSchemaIsValid(t *testing.T) {
	if err := newApp().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestStopCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "graceful stop",
			args: []string{"container", "stop", "web"},
			want: "stop web (grace period 10s)\n",
		},
		{
			name: "forced stop",
			args: []string{"container", "stop", "--force", "web"},
			want: "kill web\n",
		},
		{
			name: "dry run",
			args: []string{"container", "--dry-run", "stop", "--force", "web"},
			want: "would kill web\n",
		},
		{
			name: "custom timeout",
			args: []string{"container", "stop", "-t", "30s", "web"},
			want: "stop web (grace period 30s)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			if err := newApp().Run(context.Background(), tt.args); err != nil {
				t.Fatalf("Run(%v) error = %v", tt.args, err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStartAndRestart(t *testing.T) {
	buf := captureOutput(t)
	if err := newApp().Run(context.Background(), []string{"container", "start", "db"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := newApp().Run(context.Background(), []string{"container", "--dry-run", "restart", "db"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "start db\nwould restart db (grace period 10s)\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPSFormats(t *testing.T) {
	dir := usePrefsDir(t)
	compose := filepath.Join(dir, "docker-compose.yml")
	content := `services:
  web:
    image: nginx:latest
    ports:
      - "8080:80"
    restart: always
  db:
    image: postgres:16
    restart: unless-stopped
`
	if err := os.WriteFile(compose, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write compose file: %v", err)
	}
	t.Setenv("BOXER_COMPOSE", compose)

	t.Run("names", func(t *testing.T) {
		buf := captureOutput(t)
		if err := newApp().Run(context.Background(), []string{"ps", "--format", "names"}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got, want := buf.String(), "db\nweb\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("table", func(t *testing.T) {
		buf := captureOutput(t)
		if err := newApp().Run(context.Background(), []string{"ps"}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		got := buf.String()
		for _, want := range []string{"NAME", "IMAGE", "nginx:latest", "postgres:16", "8080:80", "unless-stopped"} {
			if !strings.Contains(got, want) {
				t.Errorf("table output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("yaml", func(t *testing.T) {
		buf := captureOutput(t)
		if err := newApp().Run(context.Background(), []string{"ps", "--format=yaml"}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		got := buf.String()
		for _, want := range []string{"services:", "image: nginx:latest"} {
			if !strings.Contains(got, want) {
				t.Errorf("yaml output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		captureOutput(t)
		if err := newApp().Run(context.Background(), []string{"ps", "--format", "csv"}); err == nil {
			t.Fatal("Run() = nil, want unknown format error")
		}
	})
}

func TestLoadComposeErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadCompose(filepath.Join(dir, "missing.yml")); !os.IsNotExist(err) {
		t.Errorf("loadCompose(missing) error = %v, want not-exist", err)
	}

	empty := filepath.Join(dir, "empty.yml")
	if err := os.WriteFile(empty, []byte("services: {}\n"), 0o644); err != nil {
		t.Fatalf("failed to write compose file: %v", err)
	}
	if _, err := loadCompose(empty); err == nil {
		t.Error("loadCompose(empty) = nil, want no-services error")
	}
}

func TestVersionCommand(t *testing.T) {
	buf := captureOutput(t)
	if err := newApp().Run(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := buf.String(), "boxer dev\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
