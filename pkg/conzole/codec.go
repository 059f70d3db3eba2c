// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conzole

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Kind is the value type of a Flag or Arg.
type Kind int

const (
	String Kind = iota
	Bool
	Int
	Float
	Duration
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Duration:
		return "duration"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var kindTypes = map[Kind]reflect.Type{
	String:   reflect.TypeOf(""),
	Bool:     reflect.TypeOf(false),
	Int:      reflect.TypeOf(int(0)),
	Float:    reflect.TypeOf(float64(0)),
	Duration: reflect.TypeOf(time.Duration(0)),
}

// goType returns the Go type a record field must have for k, or nil for an
// out-of-range Kind.
func (k Kind) goType() reflect.Type {
	return kindTypes[k]
}

// decode converts one textual token to a typed value. Bool decoding never
// fails: "true" and "1" are true, anything else is false. Int and Float
// use base-10 parsing; Duration uses time.ParseDuration.
func decode(text string, k Kind) (any, error) {
	switch k {
	case String:
		return text, nil
	case Bool:
		return text == "true" || text == "1", nil
	case Int:
		n, err := strconv.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("invalid int value %q", text)
		}
		return int(n), nil
	case Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value %q", text)
		}
		return f, nil
	case Duration:
		d, err := time.ParseDuration(text)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q", text)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown kind %v", k)
	}
}

// zeroValue returns the zero value for k.
func zeroValue(k Kind) any {
	switch k {
	case String:
		return ""
	case Bool:
		return false
	case Int:
		return 0
	case Float:
		return float64(0)
	case Duration:
		return time.Duration(0)
	default:
		return nil
	}
}

// defaultValue decodes a flag's textual default. An empty default is the
// zero value of the flag's Kind. Validate has already checked that a
// non-empty default decodes cleanly.
func defaultValue(f Flag) (any, error) {
	if f.Default == "" {
		return zeroValue(f.Kind), nil
	}
	return decode(f.Default, f.Kind)
}
