// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
}

type composeService struct {
	Image   string   `yaml:"image"`
	Ports   []string `yaml:"ports"`
	Restart string   `yaml:"restart"`
}

func loadCompose(path string) (*composeFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf composeFile
	if err := yaml.Unmarshal(content, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse compose file %s: %w", path, err)
	}
	if len(cf.Services) == 0 {
		return nil, fmt.Errorf("compose file %s has no services", path)
	}
	return &cf, nil
}

// serviceNames returns the service names in sorted order so output is
// stable across runs.
func (cf *composeFile) serviceNames() []string {
	names := make([]string, 0, len(cf.Services))
	for name := range cf.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type psArgs struct {
	Verbose bool   `flag:"verbose"`
	Format  string `flag:"format"`
}

func runPS(ctx context.Context, a psArgs) error {
	p := loadPrefs()
	if a.Verbose {
		fmt.Fprintf(out, "reading compose file %s\n", p.Compose)
	}
	cf, err := loadCompose(p.Compose)
	if err != nil {
		return err
	}
	switch a.Format {
	case "table":
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tIMAGE\tPORTS\tRESTART")
		for _, name := range cf.serviceNames() {
			svc := cf.Services[name]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, svc.Image, strings.Join(svc.Ports, ","), svc.Restart)
		}
		return tw.Flush()
	case "names":
		for _, name := range cf.serviceNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cf); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, names, or yaml)", a.Format)
	}
}
