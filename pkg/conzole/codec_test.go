// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conzole

import (
	"reflect"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		text    string
		kind    Kind
		want    any
		wantErr bool
	}{
		{text: "hello", kind: String, want: "hello"},
		{text: "", kind: String, want: ""},

		// Bool never fails: only "true" and "1" assert, everything
		// else is false.
		{text: "true", kind: Bool, want: true},
		{text: "1", kind: Bool, want: true},
		{text: "false", kind: Bool, want: false},
		{text: "0", kind: Bool, want: false},
		{text: "yes", kind: Bool, want: false},
		{text: "TRUE", kind: Bool, want: false},

		{text: "42", kind: Int, want: 42},
		{text: "-7", kind: Int, want: -7},
		{text: "0x10", kind: Int, wantErr: true},
		{text: "nope", kind: Int, wantErr: true},
		{text: "3.5", kind: Int, wantErr: true},

		{text: "2.5", kind: Float, want: 2.5},
		{text: "-0.25", kind: Float, want: -0.25},
		{text: "1e3", kind: Float, want: 1000.0},
		{text: "wide", kind: Float, wantErr: true},

		{text: "10s", kind: Duration, want: 10 * time.Second},
		{text: "1h30m", kind: Duration, want: 90 * time.Minute},
		{text: "banana", kind: Duration, wantErr: true},
	}
	for _, tt := range tests {
		got, err := decode(tt.text, tt.kind)
		if tt.wantErr {
			if err == nil {
				t.Errorf("decode(%q, %v) = %v, want error", tt.text, tt.kind, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("decode(%q, %v) error = %v", tt.text, tt.kind, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("decode(%q, %v) = %v (%T), want %v (%T)", tt.text, tt.kind, got, got, tt.want, tt.want)
		}
	}
}

func TestDefaultValue(t *testing.T) {
	tests := []struct {
		flag Flag
		want any
	}{
		{flag: Flag{Name: "name", Kind: String, Default: "web"}, want: "web"},
		{flag: Flag{Name: "name", Kind: String}, want: ""},
		{flag: Flag{Name: "force", Kind: Bool, Default: "true"}, want: true},
		{flag: Flag{Name: "force", Kind: Bool}, want: false},
		{flag: Flag{Name: "count", Kind: Int, Default: "3"}, want: 3},
		{flag: Flag{Name: "count", Kind: Int}, want: 0},
		{flag: Flag{Name: "ratio", Kind: Float, Default: "1.5"}, want: 1.5},
		{flag: Flag{Name: "timeout", Kind: Duration, Default: "10s"}, want: 10 * time.Second},
		{flag: Flag{Name: "timeout", Kind: Duration}, want: time.Duration(0)},
	}
	for _, tt := range tests {
		got, err := defaultValue(tt.flag)
		if err != nil {
			t.Errorf("defaultValue(%+v) error = %v", tt.flag, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("defaultValue(%+v) = %v (%T), want %v (%T)", tt.flag, got, got, tt.want, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{String, "string"},
		{Bool, "bool"},
		{Int, "int"},
		{Float, "float"},
		{Duration, "duration"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
